package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Employee struct {
	EmployeeID    int32          `gorm:"primaryKey;autoIncrement" json:"employeeId"`
	Code          string         `gorm:"uniqueIndex" json:"code"`
	FirstName     string         `json:"firstName"`
	Surname       string         `json:"surname"`
	MiddleNames   string         `json:"middleNames"`
	PreferredName string         `json:"preferredName"`
	Email         *string        `gorm:"index" json:"email"`
	Status        string         `gorm:"size:20;default:active" json:"status"`
	StartDate     *time.Time     `json:"startDate"`
	EndDate       *time.Time     `json:"endDate"`
	ReportsToID   *int32         `json:"reportsToId"`
	DepartmentID  *int32         `json:"departmentId"`
	Attributes    datatypes.JSON `json:"attributes"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsActive reports whether the employee should be scheduled at all.
func (e *Employee) IsActive() bool {
	return e.Status == "active"
}

func FindEmployeeByID(db *gorm.DB, id int32) (*Employee, error) {
	var emp Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}
