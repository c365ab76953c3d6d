package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Cutoff is a payroll cutoff period. The timekeeping table view is keyed by
// employee + cutoff.
type Cutoff struct {
	CutoffID  int32     `gorm:"primaryKey;autoIncrement" json:"cutoffId"`
	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`
	Status    string    `gorm:"size:20;default:open" json:"status"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Cutoff) TableName() string {
	return "cutoffs"
}

func FindCutoffByID(db *gorm.DB, id int32) (*Cutoff, error) {
	var cutoff Cutoff
	result := db.First(&cutoff, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &cutoff, nil
}
