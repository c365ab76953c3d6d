package models

import "time"

// ScheduleAssignment maps an employee to one shift slot per weekday.
// An empty slot means no shift is scheduled for that day.
type ScheduleAssignment struct {
	ID         int32 `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int32 `gorm:"uniqueIndex;not null" json:"employeeId"`

	SundayShiftID    *int32 `json:"sundayShiftId"`
	MondayShiftID    *int32 `json:"mondayShiftId"`
	TuesdayShiftID   *int32 `json:"tuesdayShiftId"`
	WednesdayShiftID *int32 `json:"wednesdayShiftId"`
	ThursdayShiftID  *int32 `json:"thursdayShiftId"`
	FridayShiftID    *int32 `json:"fridayShiftId"`
	SaturdayShiftID  *int32 `json:"saturdayShiftId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (ScheduleAssignment) TableName() string {
	return "schedule_assignments"
}

// ShiftIDOn returns the shift slot for the given weekday (0=Sunday..6=Saturday).
func (s *ScheduleAssignment) ShiftIDOn(weekday time.Weekday) *int32 {
	slots := [7]*int32{
		s.SundayShiftID,
		s.MondayShiftID,
		s.TuesdayShiftID,
		s.WednesdayShiftID,
		s.ThursdayShiftID,
		s.FridayShiftID,
		s.SaturdayShiftID,
	}
	return slots[int(weekday)%7]
}
