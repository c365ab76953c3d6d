package core

import (
	"errors"
	"fmt"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/utils"
	"gorm.io/gorm"
)

var ErrConflictNotFound = errors.New("conflict not found")

// ResolveConflict marks one conflict globally resolved. Detection re-runs
// never flip it back.
func ResolveConflict(db *gorm.DB, id string, resolvedBy int32) (*model.Conflict, error) {
	var conflict model.Conflict
	err := db.First(&conflict, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConflictNotFound
	}
	if err != nil {
		return nil, err
	}

	now := utils.ManilaNow()
	updates := map[string]interface{}{
		"is_resolved": true,
		"resolved_at": now,
		"resolved_by": resolvedBy,
	}
	if err := db.Model(&conflict).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve conflict %s: %w", id, err)
	}

	conflict.IsResolved = true
	conflict.ResolvedAt = &now
	conflict.ResolvedBy = &resolvedBy
	return &conflict, nil
}

// ResolveConflictsForDate bulk-clears every still-open conflict for an
// employee-day, optionally narrowed to specific kinds. Used when an upstream
// correction makes the conflicts moot without waiting for re-detection.
// Returns the number of conflicts it closed.
func ResolveConflictsForDate(db *gorm.DB, accountID int32, dateString string, resolvedBy *int32, types ...model.ConflictType) (int64, error) {
	query := db.Model(&model.Conflict{}).
		Where("account_id = ? AND date_string = ? AND is_resolved = ?", accountID, dateString, false)
	if len(types) > 0 {
		query = query.Where("conflict_type IN ?", types)
	}

	updates := map[string]interface{}{
		"is_resolved": true,
		"resolved_at": utils.ManilaNow(),
	}
	if resolvedBy != nil {
		updates["resolved_by"] = *resolvedBy
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to resolve conflicts for %d/%s: %w", accountID, dateString, result.Error)
	}
	return result.RowsAffected, nil
}

// ReviewConflict records an actor's personal decision on a conflict. The
// ledger is keyed by (conflict, actor); acting again replaces the earlier
// decision. The conflict row itself is never touched, so other reviewers and
// the aggregate stats are unaffected.
func ReviewConflict(db *gorm.DB, conflictID string, actorID int32, action model.ReviewAction) (*model.ConflictReview, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("invalid review action %q", action)
	}

	var conflict model.Conflict
	err := db.First(&conflict, "id = ?", conflictID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConflictNotFound
	}
	if err != nil {
		return nil, err
	}

	var review model.ConflictReview
	err = db.Where("conflict_id = ? AND actor_id = ?", conflictID, actorID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		review = model.ConflictReview{
			ConflictID: conflictID,
			ActorID:    actorID,
			Action:     action,
		}
		createErr := db.Create(&review).Error
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			// Lost the insert race to a concurrent review by the same actor.
			// The unique index guarantees the row now exists, so replace its
			// action instead of surfacing the error.
			return replaceReviewAction(db, conflictID, actorID, action)
		}
		if createErr != nil {
			return nil, fmt.Errorf("failed to create review: %w", createErr)
		}
		return &review, nil
	}
	if err != nil {
		return nil, err
	}

	if review.Action != action {
		if err := db.Model(&review).Update("action", action).Error; err != nil {
			return nil, fmt.Errorf("failed to update review %d: %w", review.ID, err)
		}
		review.Action = action
	}
	return &review, nil
}

// replaceReviewAction re-reads the actor's ledger row and overwrites its
// recorded action.
func replaceReviewAction(db *gorm.DB, conflictID string, actorID int32, action model.ReviewAction) (*model.ConflictReview, error) {
	var review model.ConflictReview
	err := db.Where("conflict_id = ? AND actor_id = ?", conflictID, actorID).First(&review).Error
	if err != nil {
		return nil, fmt.Errorf("review vanished after duplicate key for %s/%d: %w", conflictID, actorID, err)
	}

	if review.Action != action {
		if err := db.Model(&review).Update("action", action).Error; err != nil {
			return nil, fmt.Errorf("failed to update review %d: %w", review.ID, err)
		}
		review.Action = action
	}
	return &review, nil
}
