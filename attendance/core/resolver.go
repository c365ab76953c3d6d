package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/gtplusnet/ante-official-sub012/core/models"
	"gorm.io/gorm"
)

// RefData holds the lookups a batch sweep needs so each employee-day pair
// resolves without extra queries.
type RefData struct {
	Employees []models.Employee
	EmpMap    map[int32]models.Employee
	SchedMap  map[int32]models.ScheduleAssignment
	ShiftMap  map[int32]models.Shift
}

func FetchRefData(db *gorm.DB) (*RefData, error) {
	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	empMap := make(map[int32]models.Employee)
	for _, e := range employees {
		empMap[e.EmployeeID] = e
	}

	var assignments []models.ScheduleAssignment
	if err := db.Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch schedule assignments: %w", err)
	}
	schedMap := make(map[int32]models.ScheduleAssignment)
	for _, a := range assignments {
		schedMap[a.EmployeeID] = a
	}

	var shifts []models.Shift
	if err := db.Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	shiftMap := make(map[int32]models.Shift)
	for _, s := range shifts {
		shiftMap[s.ShiftID] = s
	}

	return &RefData{
		Employees: employees,
		EmpMap:    empMap,
		SchedMap:  schedMap,
		ShiftMap:  shiftMap,
	}, nil
}

// ResolveShift maps an employee-day to the effective scheduled shift. Nil
// means nothing was scheduled: inactive employee, no assignment, or an empty
// weekday slot. Rest-day and extra-day shifts are returned as-is; the
// classifier treats them as "no shift".
func (rd *RefData) ResolveShift(employeeID int32, date time.Time) *models.Shift {
	emp, ok := rd.EmpMap[employeeID]
	if !ok || !emp.IsActive() {
		return nil
	}

	assignment, ok := rd.SchedMap[employeeID]
	if !ok {
		return nil
	}

	shiftID := assignment.ShiftIDOn(date.Weekday())
	if shiftID == nil {
		return nil
	}

	shift, ok := rd.ShiftMap[*shiftID]
	if !ok {
		return nil
	}
	return &shift
}

// ResolveShift is the single-pair variant used by interactive detection.
func ResolveShift(db *gorm.DB, employeeID int32, date time.Time) (*models.Shift, error) {
	emp, err := models.FindEmployeeByID(db, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || !emp.IsActive() {
		return nil, nil
	}

	var assignment models.ScheduleAssignment
	err = db.Where("employee_id = ?", employeeID).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	shiftID := assignment.ShiftIDOn(date.Weekday())
	if shiftID == nil {
		return nil, nil
	}

	var shift models.Shift
	err = db.First(&shift, *shiftID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}
