package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Shift{},
		&models.ScheduleAssignment{},
		&models.TimekeepingRecord{},
		&models.RawLogEntry{},
		&models.Cutoff{},
		&model.Conflict{},
		&model.ConflictReview{},
	))
	return db
}

func seedShift(t *testing.T, db *gorm.DB, shiftType models.ShiftType, start, end string) models.Shift {
	t.Helper()
	shift := models.Shift{
		Code:      uuid.NewString()[:8],
		Name:      "Day Shift",
		Type:      shiftType,
		StartTime: start,
		EndTime:   end,
	}
	require.NoError(t, db.Create(&shift).Error)
	return shift
}

func seedEmployee(t *testing.T, db *gorm.DB, status string) models.Employee {
	t.Helper()
	emp := models.Employee{
		Code:      uuid.NewString()[:8],
		FirstName: "Juan",
		Surname:   "Dela Cruz",
		Status:    status,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

// seedSchedule assigns the same shift to every weekday.
func seedSchedule(t *testing.T, db *gorm.DB, employeeID, shiftID int32) models.ScheduleAssignment {
	t.Helper()
	assignment := models.ScheduleAssignment{
		EmployeeID:       employeeID,
		SundayShiftID:    &shiftID,
		MondayShiftID:    &shiftID,
		TuesdayShiftID:   &shiftID,
		WednesdayShiftID: &shiftID,
		ThursdayShiftID:  &shiftID,
		FridayShiftID:    &shiftID,
		SaturdayShiftID:  &shiftID,
	}
	require.NoError(t, db.Create(&assignment).Error)
	return assignment
}

func seedRecord(t *testing.T, db *gorm.DB, employeeID int32, date string) models.TimekeepingRecord {
	t.Helper()
	rec := models.TimekeepingRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func seedEntry(t *testing.T, db *gorm.DB, employeeID int32, date, timeIn, timeOut string) models.RawLogEntry {
	t.Helper()
	entry := models.RawLogEntry{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}
