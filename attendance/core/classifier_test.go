package core

import (
	"testing"
	"time"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularShift() *models.Shift {
	return &models.Shift{
		ShiftID:   7,
		Code:      "DAY",
		Name:      "Day Shift",
		Type:      models.ShiftTypeRegular,
		StartTime: "08:00",
		EndTime:   "17:00",
	}
}

func TestClassifyNoShift(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		shift *models.Shift
	}{
		{name: "nil shift"},
		{name: "rest day", shift: &models.Shift{ShiftID: 1, Type: models.ShiftTypeRestDay}},
		{name: "extra day", shift: &models.Shift{ShiftID: 2, Type: models.ShiftTypeExtraDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := Classify(tt.shift, nil, nil, 100, date)
			assert.Empty(t, cands)
		})
	}
}

func TestClassifyMissingLog(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cands := Classify(regularShift(), nil, nil, 100, date)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, model.ConflictMissingLog, c.ConflictType)
	assert.Equal(t, int32(100), c.AccountID)
	assert.Equal(t, "2024-01-01", c.DateString)
	assert.Nil(t, c.TimekeepingID)
	assert.Contains(t, c.Description, "2024-01-01")
}

func TestClassifyNoAttendance(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &models.TimekeepingRecord{ID: "tk-1", EmployeeID: 100, Date: "2024-01-01"}

	cands := Classify(regularShift(), rec, nil, 100, date)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, model.ConflictNoAttendance, c.ConflictType)
	require.NotNil(t, c.TimekeepingID)
	assert.Equal(t, "tk-1", *c.TimekeepingID)
}

func TestClassifyMissingTimeOut(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &models.TimekeepingRecord{ID: "tk-1", EmployeeID: 100, Date: "2024-01-01"}

	tests := []struct {
		name        string
		entries     []models.RawLogEntry
		wantCount   int
		wantMention string
	}{
		{
			name: "single entry without time out",
			entries: []models.RawLogEntry{
				{TimeIn: "08:05", TimeOut: "00:00"},
			},
			wantCount:   1,
			wantMention: "08:05",
		},
		{
			name: "earliest malformed entry wins even when listed last",
			entries: []models.RawLogEntry{
				{TimeIn: "13:00", TimeOut: ""},
				{TimeIn: "08:05", TimeOut: "00:00:00"},
			},
			wantCount:   1,
			wantMention: "08:05",
		},
		{
			name: "clean earlier entry, malformed later entry",
			entries: []models.RawLogEntry{
				{TimeIn: "08:00", TimeOut: "12:00"},
				{TimeIn: "13:00", TimeOut: "00:00"},
			},
			wantCount:   1,
			wantMention: "13:00",
		},
		{
			name: "all entries complete",
			entries: []models.RawLogEntry{
				{TimeIn: "08:00", TimeOut: "12:00"},
				{TimeIn: "13:00", TimeOut: "17:00"},
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := Classify(regularShift(), rec, tt.entries, 100, date)
			require.Len(t, cands, tt.wantCount)
			if tt.wantCount == 0 {
				return
			}
			assert.Equal(t, model.ConflictMissingTimeOut, cands[0].ConflictType)
			assert.Contains(t, cands[0].Description, tt.wantMention)
		})
	}
}

func TestClassifySnapshotCapturesShift(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	shift := regularShift()

	cands := Classify(shift, nil, nil, 100, date)
	require.Len(t, cands, 1)

	want := model.ShiftSnapshot{
		ID:    7,
		Name:  "Day Shift",
		Type:  models.ShiftTypeRegular,
		Start: "08:00",
		End:   "17:00",
	}
	assert.Equal(t, want, cands[0].Shift)

	// Mutating the source shift afterwards must not leak into the snapshot.
	shift.StartTime = "09:00"
	assert.Equal(t, "08:00", cands[0].Shift.Start)
}
