package core

import (
	"testing"
	"time"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/gtplusnet/ante-official-sub012/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflictsRestDay(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRestDay, "", "")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)

	conflicts := DetectConflicts(db, emp.EmployeeID, utils.MustParseDate("2024-01-01"), nil)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsInactiveEmployee(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "terminated")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)

	conflicts := DetectConflicts(db, emp.EmployeeID, utils.MustParseDate("2024-01-01"), nil)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsMissingLog(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)

	conflicts := DetectConflicts(db, emp.EmployeeID, utils.MustParseDate("2024-01-01"), nil)
	require.Len(t, conflicts, 1)
	assert.Equal(t, model.ConflictMissingLog, conflicts[0].ConflictType)
	assert.Equal(t, "2024-01-01", conflicts[0].DateString)
}

func TestDetectConflictsNoAttendance(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)
	rec := seedRecord(t, db, emp.EmployeeID, "2024-01-01")

	conflicts := DetectConflicts(db, emp.EmployeeID, utils.MustParseDate("2024-01-01"), nil)
	require.Len(t, conflicts, 1)
	assert.Equal(t, model.ConflictNoAttendance, conflicts[0].ConflictType)
	require.NotNil(t, conflicts[0].TimekeepingID)
	assert.Equal(t, rec.ID, *conflicts[0].TimekeepingID)

	// No MISSING_LOG alongside it.
	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).
		Where("conflict_type = ?", model.ConflictMissingLog).Count(&count).Error)
	assert.Zero(t, count)
}

// Full walkthrough: regular shift on Monday 2024-01-01, a single raw entry
// clocked in at 08:05 and never out, detected twice, then bulk-resolved.
func TestDetectConflictsMissingTimeOutScenario(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)
	seedRecord(t, db, emp.EmployeeID, "2024-01-01")
	seedEntry(t, db, emp.EmployeeID, "2024-01-01", "08:05", "00:00")

	date := utils.MustParseDate("2024-01-01")

	conflicts := DetectConflicts(db, emp.EmployeeID, date, nil)
	require.Len(t, conflicts, 1)
	first := conflicts[0]
	assert.Equal(t, model.ConflictMissingTimeOut, first.ConflictType)
	assert.Contains(t, first.Description, "08:05")
	assert.Equal(t, shift.ShiftID, first.Shift.ID)

	// Unchanged data: same row, same id, no duplicates.
	again := DetectConflicts(db, emp.EmployeeID, date, nil)
	require.Len(t, again, 1)
	assert.Equal(t, first.ID, again[0].ID)

	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Bulk-resolving the day closes it for everyone.
	resolved, err := ResolveConflictsForDate(db, emp.EmployeeID, "2024-01-01", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved)

	open := false
	result, err := SearchConflicts(db, SearchParams{IsResolved: &open}, 999)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
}

func TestBatchDetectConflictsOmitsCleanEmployees(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")

	// missing log for this one
	flagged := seedEmployee(t, db, "active")
	seedSchedule(t, db, flagged.EmployeeID, shift.ShiftID)

	// complete attendance for this one
	clean := seedEmployee(t, db, "active")
	seedSchedule(t, db, clean.EmployeeID, shift.ShiftID)
	seedRecord(t, db, clean.EmployeeID, "2024-01-01")
	seedEntry(t, db, clean.EmployeeID, "2024-01-01", "08:00", "17:00")

	// no schedule at all for this one
	unscheduled := seedEmployee(t, db, "active")

	dates := []time.Time{utils.MustParseDate("2024-01-01")}
	results := BatchDetectConflicts(db,
		[]int32{flagged.EmployeeID, clean.EmployeeID, unscheduled.EmployeeID}, dates)

	require.Len(t, results, 1)
	require.Contains(t, results, flagged.EmployeeID)
	assert.Equal(t, model.ConflictMissingLog, results[flagged.EmployeeID][0].ConflictType)
}

func TestBatchDetectConflictsDefaultsToAllEmployees(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)

	dates := []time.Time{utils.MustParseDate("2024-01-01")}
	results := BatchDetectConflicts(db, nil, dates)

	require.Contains(t, results, emp.EmployeeID)
}

func TestDetectConflictsMultiDayIdempotence(t *testing.T) {
	db := newTestDB(t)
	shift := seedShift(t, db, models.ShiftTypeRegular, "08:00", "17:00")
	emp := seedEmployee(t, db, "active")
	seedSchedule(t, db, emp.EmployeeID, shift.ShiftID)

	dates := []time.Time{
		utils.MustParseDate("2024-01-01"),
		utils.MustParseDate("2024-01-02"),
		utils.MustParseDate("2024-01-03"),
	}

	for i := 0; i < 3; i++ {
		BatchDetectConflicts(db, []int32{emp.EmployeeID}, dates)
	}

	var count int64
	require.NoError(t, db.Model(&model.Conflict{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
