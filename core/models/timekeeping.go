package models

import "time"

// TimekeepingRecord is the per-employee-per-day aggregate produced by the
// timer subsystem. Its absence for a scheduled day is itself meaningful.
type TimekeepingRecord struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID int32   `gorm:"uniqueIndex:idx_timekeeping_employee_date;not null" json:"employeeId"`
	Date       string  `gorm:"uniqueIndex:idx_timekeeping_employee_date;size:10;not null" json:"date"` // YYYY-MM-DD
	TotalHours float64 `gorm:"type:decimal(10,2);default:0" json:"totalHours"`
	Status     string  `gorm:"size:20" json:"status"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (TimekeepingRecord) TableName() string {
	return "timekeeping_records"
}

// RawLogEntry is an unprocessed clock scan pair as the devices report it.
type RawLogEntry struct {
	ID            string  `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID    int32   `gorm:"index" json:"employeeId"`
	Date          string  `gorm:"size:10;index" json:"date"`
	TimeIn        string  `gorm:"size:8" json:"timeIn"`
	TimeOut       string  `gorm:"size:8" json:"timeOut"`
	TimekeepingID *string `gorm:"size:36" json:"timekeepingId"`
	DeviceID      string  `gorm:"size:40" json:"deviceId"`
	ProcessStatus string  `gorm:"size:20;default:raw" json:"processStatus"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (RawLogEntry) TableName() string {
	return "raw_log_entries"
}

// HasTimeOut reports whether the entry carries a real clock-out. Devices write
// "00:00" or "00:00:00" when the employee never scanned out.
func (e *RawLogEntry) HasTimeOut() bool {
	switch e.TimeOut {
	case "", "00:00", "00:00:00":
		return false
	}
	return true
}
