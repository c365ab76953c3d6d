package model

import "time"

// ReviewAction is a reviewer's personal decision on a conflict.
type ReviewAction string

const (
	ReviewActionIgnore  ReviewAction = "IGNORE"
	ReviewActionResolve ReviewAction = "RESOLVE"
)

func (a ReviewAction) Valid() bool {
	return a == ReviewActionIgnore || a == ReviewActionResolve
}

// ConflictReview is the per-actor suppression ledger. A row hides the conflict
// from that actor's listing only; the conflict itself stays open for everyone
// else and keeps counting in aggregate stats. Re-acting replaces the prior
// decision.
type ConflictReview struct {
	ID         int32        `gorm:"primaryKey;autoIncrement" json:"id"`
	ConflictID string       `gorm:"size:36;uniqueIndex:idx_reviews_conflict_actor;not null" json:"conflictId"`
	ActorID    int32        `gorm:"uniqueIndex:idx_reviews_conflict_actor;not null" json:"actorId"`
	Action     ReviewAction `gorm:"type:varchar(10);not null" json:"action"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (ConflictReview) TableName() string {
	return "attendance_conflict_reviews"
}
