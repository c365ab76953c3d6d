package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/gtplusnet/ante-official-sub012/utils"
)

// Candidate is a conflict the classifier wants persisted. The store decides
// whether it becomes a new row, an in-place update, or a no-op.
type Candidate struct {
	AccountID     int32
	ConflictType  model.ConflictType
	ConflictDate  time.Time
	DateString    string
	Description   string
	TimekeepingID *string
	Shift         model.ShiftSnapshot
}

// Classify reconciles one employee-day: scheduled shift versus the day's
// timekeeping record and raw entries. It is a pure function; callers own all
// lookups. Order of checks matters:
//
//	no shift or non-working shift  -> nothing
//	no timekeeping record          -> MISSING_LOG
//	record with zero raw entries   -> NO_ATTENDANCE
//	first entry without a time-out -> one MISSING_TIME_OUT, scan stops
func Classify(shift *models.Shift, rec *models.TimekeepingRecord, entries []models.RawLogEntry, accountID int32, date time.Time) []Candidate {
	if shift == nil || !shift.Type.IsWorkingShift() {
		return nil
	}

	dateStr := utils.DateKey(date)
	snapshot := model.ShiftSnapshot{
		ID:    shift.ShiftID,
		Name:  shift.Name,
		Type:  shift.Type,
		Start: shift.StartTime,
		End:   shift.EndTime,
	}

	base := Candidate{
		AccountID:    accountID,
		ConflictDate: date,
		DateString:   dateStr,
		Shift:        snapshot,
	}

	if rec == nil {
		c := base
		c.ConflictType = model.ConflictMissingLog
		c.Description = fmt.Sprintf("No timekeeping record for %s (scheduled %s %s-%s)",
			dateStr, shift.Name, shift.StartTime, shift.EndTime)
		return []Candidate{c}
	}

	base.TimekeepingID = &rec.ID

	if len(entries) == 0 {
		c := base
		c.ConflictType = model.ConflictNoAttendance
		c.Description = fmt.Sprintf("Timekeeping record exists but no clock entries were logged for %s (scheduled %s %s-%s)",
			dateStr, shift.Name, shift.StartTime, shift.EndTime)
		return []Candidate{c}
	}

	ordered := make([]models.RawLogEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TimeIn < ordered[j].TimeIn
	})

	// Only the earliest malformed entry is reported, so re-runs stay stable
	// even when several entries on the same day are missing a time-out.
	if e := utils.Find(ordered, func(e *models.RawLogEntry) bool { return !e.HasTimeOut() }); e != nil {
		c := base
		c.ConflictType = model.ConflictMissingTimeOut
		c.Description = fmt.Sprintf("Clock-in at %s on %s has no matching clock-out", e.TimeIn, dateStr)
		return []Candidate{c}
	}

	return nil
}
