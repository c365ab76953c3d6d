package model

import (
	"time"

	"github.com/gtplusnet/ante-official-sub012/core/models"
)

// ConflictType is the closed set of attendance discrepancies the engine
// detects. Adding a kind means touching the classifier's switch as well.
type ConflictType string

const (
	ConflictMissingLog     ConflictType = "MISSING_LOG"
	ConflictNoAttendance   ConflictType = "NO_ATTENDANCE"
	ConflictMissingTimeOut ConflictType = "MISSING_TIME_OUT"
)

// ConflictTypes lists every known kind, in reporting order.
var ConflictTypes = []ConflictType{
	ConflictMissingLog,
	ConflictNoAttendance,
	ConflictMissingTimeOut,
}

func (t ConflictType) Valid() bool {
	switch t {
	case ConflictMissingLog, ConflictNoAttendance, ConflictMissingTimeOut:
		return true
	}
	return false
}

// ShiftSnapshot is the shift as it looked at classification time. Later shift
// edits must not retroactively alter historical conflicts.
type ShiftSnapshot struct {
	ID    int32            `json:"id"`
	Name  string           `json:"name"`
	Type  models.ShiftType `gorm:"type:varchar(20)" json:"type"`
	Start string           `gorm:"size:8" json:"start"`
	End   string           `gorm:"size:8" json:"end"`
}

// Conflict is one persisted discrepancy between a scheduled shift and observed
// attendance for a single employee-day. At most one open logical conflict
// exists per (account, date, kind).
type Conflict struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	AccountID     int32        `gorm:"uniqueIndex:idx_conflicts_natural_key;not null" json:"accountId"`
	TimekeepingID *string      `gorm:"size:36" json:"timekeepingId"`
	ConflictType  ConflictType `gorm:"type:varchar(30);uniqueIndex:idx_conflicts_natural_key;not null" json:"conflictType"`
	ConflictDate  time.Time    `gorm:"type:date" json:"conflictDate"`
	DateString    string       `gorm:"size:10;uniqueIndex:idx_conflicts_natural_key;not null" json:"dateString"`
	Description   string       `gorm:"type:text" json:"description"`

	Shift ShiftSnapshot `gorm:"embedded;embeddedPrefix:shift_" json:"shift"`

	IsResolved bool       `gorm:"not null;default:false" json:"isResolved"`
	ResolvedAt *time.Time `json:"resolvedAt"`
	ResolvedBy *int32     `json:"resolvedBy"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Conflict) TableName() string {
	return "attendance_conflicts"
}
