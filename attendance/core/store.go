package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"gorm.io/gorm"
)

// findByNaturalKey looks up the one logical conflict for an employee-day-kind.
func findByNaturalKey(db *gorm.DB, accountID int32, dateString string, kind model.ConflictType) (*model.Conflict, error) {
	var existing model.Conflict
	err := db.Where("account_id = ? AND date_string = ? AND conflict_type = ?",
		accountID, dateString, kind).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// UpsertConflict persists a candidate under the natural key
// (accountId, dateString, conflictType). Repeated detection runs are safe:
// an absent row is inserted, a row with changed content is updated in place,
// and an unchanged row is left untouched. Resolution fields are never reset.
func UpsertConflict(db *gorm.DB, cand Candidate) (*model.Conflict, error) {
	existing, err := findByNaturalKey(db, cand.AccountID, cand.DateString, cand.ConflictType)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		conflict := model.Conflict{
			ID:            uuid.NewString(),
			AccountID:     cand.AccountID,
			TimekeepingID: cand.TimekeepingID,
			ConflictType:  cand.ConflictType,
			ConflictDate:  cand.ConflictDate,
			DateString:    cand.DateString,
			Description:   cand.Description,
			Shift:         cand.Shift,
			IsResolved:    false,
		}
		err := db.Create(&conflict).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race to a concurrent detection run. The unique
			// index guarantees the row now exists, so fall back to the update
			// path against the winner's row.
			existing, err = findByNaturalKey(db, cand.AccountID, cand.DateString, cand.ConflictType)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, fmt.Errorf("conflict vanished after duplicate key for %d/%s/%s",
					cand.AccountID, cand.DateString, cand.ConflictType)
			}
			return refreshConflict(db, existing, cand)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create conflict: %w", err)
		}
		return &conflict, nil
	}

	return refreshConflict(db, existing, cand)
}

// refreshConflict updates only the content fields when the candidate differs
// from the stored row. ID, CreatedAt and the resolution fields are preserved.
func refreshConflict(db *gorm.DB, existing *model.Conflict, cand Candidate) (*model.Conflict, error) {
	if !conflictContentChanged(existing, cand) {
		return existing, nil
	}

	updates := map[string]interface{}{
		"description":    cand.Description,
		"timekeeping_id": cand.TimekeepingID,
		"shift_id":       cand.Shift.ID,
		"shift_name":     cand.Shift.Name,
		"shift_type":     cand.Shift.Type,
		"shift_start":    cand.Shift.Start,
		"shift_end":      cand.Shift.End,
	}
	if err := db.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to refresh conflict %s: %w", existing.ID, err)
	}

	existing.Description = cand.Description
	existing.TimekeepingID = cand.TimekeepingID
	existing.Shift = cand.Shift
	return existing, nil
}

func conflictContentChanged(existing *model.Conflict, cand Candidate) bool {
	if existing.Description != cand.Description {
		return true
	}
	if existing.Shift != cand.Shift {
		return true
	}
	return !equalStringPtr(existing.TimekeepingID, cand.TimekeepingID)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
