package models

import "time"

// ShiftType is the closed set of shift categories used by scheduling.
type ShiftType string

const (
	ShiftTypeRegular  ShiftType = "REGULAR"
	ShiftTypeRestDay  ShiftType = "REST_DAY"
	ShiftTypeExtraDay ShiftType = "EXTRA_DAY"
	ShiftTypeSplit    ShiftType = "SPLIT"
)

// IsWorkingShift reports whether attendance is expected for the shift type.
// Rest days and extra days carry no attendance obligation.
func (t ShiftType) IsWorkingShift() bool {
	switch t {
	case ShiftTypeRegular, ShiftTypeSplit:
		return true
	case ShiftTypeRestDay, ShiftTypeExtraDay:
		return false
	}
	return false
}

type Shift struct {
	ShiftID   int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"size:20;uniqueIndex" json:"code"`
	Name      string    `json:"name"`
	Type      ShiftType `gorm:"type:varchar(20);not null;default:REGULAR" json:"type"`
	StartTime string    `gorm:"size:8" json:"startTime"` // "08:00"
	EndTime   string    `gorm:"size:8" json:"endTime"`   // "17:00"

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Shift) TableName() string {
	return "shifts"
}
