package core

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/gtplusnet/ante-official-sub012/utils"
	"gorm.io/gorm"
)

// DetectConflicts reconciles one employee-day and persists whatever the
// classifier finds. Detection is best-effort: any lookup or classification
// failure is logged and yields an empty result, never an error, so a batch
// sweep cannot be aborted by one bad pair. Pass rec when the caller already
// holds the day's timekeeping record; otherwise it is looked up.
func DetectConflicts(db *gorm.DB, accountID int32, date time.Time, rec *models.TimekeepingRecord) []model.Conflict {
	dateStr := utils.DateKey(date)

	shift, err := ResolveShift(db, accountID, date)
	if err != nil {
		log.Warn().Err(err).Int32("employee", accountID).Str("date", dateStr).
			Msg("schedule lookup failed, skipping detection")
		return nil
	}
	if shift == nil || !shift.Type.IsWorkingShift() {
		return nil
	}

	if rec == nil {
		rec, err = findTimekeepingRecord(db, accountID, dateStr)
		if err != nil {
			log.Warn().Err(err).Int32("employee", accountID).Str("date", dateStr).
				Msg("timekeeping lookup failed, skipping detection")
			return nil
		}
	}

	var entries []models.RawLogEntry
	if rec != nil {
		if err := db.Where("employee_id = ? AND date = ?", accountID, dateStr).
			Order("time_in ASC").Find(&entries).Error; err != nil {
			log.Warn().Err(err).Int32("employee", accountID).Str("date", dateStr).
				Msg("raw log lookup failed, skipping detection")
			return nil
		}
	}

	return persistCandidates(db, Classify(shift, rec, entries, accountID, date))
}

// BatchDetectConflicts drives the employee x date cross product with one
// reference-data load. An empty employee list means every known employee.
// Employees that produce no conflicts are omitted from the result. Each pair
// is independently fault-isolated.
func BatchDetectConflicts(db *gorm.DB, employees []int32, dates []time.Time) map[int32][]model.Conflict {
	rd, err := FetchRefData(db)
	if err != nil {
		log.Error().Err(err).Msg("reference data load failed, aborting sweep")
		return nil
	}

	if len(employees) == 0 {
		// Inactive employees never resolve to a shift; skip them up front.
		active := utils.Filter(rd.Employees, func(e models.Employee) bool { return e.IsActive() })
		employees = utils.Map(active, func(e models.Employee) int32 { return e.EmployeeID })
	}

	results := make(map[int32][]model.Conflict)
	for _, employeeID := range employees {
		for _, date := range dates {
			conflicts := detectPair(db, rd, employeeID, date)
			if len(conflicts) > 0 {
				results[employeeID] = append(results[employeeID], conflicts...)
			}
		}
	}
	return results
}

func detectPair(db *gorm.DB, rd *RefData, accountID int32, date time.Time) []model.Conflict {
	dateStr := utils.DateKey(date)

	shift := rd.ResolveShift(accountID, date)
	if shift == nil || !shift.Type.IsWorkingShift() {
		return nil
	}

	rec, err := findTimekeepingRecord(db, accountID, dateStr)
	if err != nil {
		log.Warn().Err(err).Int32("employee", accountID).Str("date", dateStr).
			Msg("timekeeping lookup failed, skipping pair")
		return nil
	}

	var entries []models.RawLogEntry
	if rec != nil {
		if err := db.Where("employee_id = ? AND date = ?", accountID, dateStr).
			Order("time_in ASC").Find(&entries).Error; err != nil {
			log.Warn().Err(err).Int32("employee", accountID).Str("date", dateStr).
				Msg("raw log lookup failed, skipping pair")
			return nil
		}
	}

	return persistCandidates(db, Classify(shift, rec, entries, accountID, date))
}

func persistCandidates(db *gorm.DB, cands []Candidate) []model.Conflict {
	var conflicts []model.Conflict
	for _, cand := range cands {
		conflict, err := UpsertConflict(db, cand)
		if err != nil {
			log.Warn().Err(err).Int32("employee", cand.AccountID).Str("date", cand.DateString).
				Str("kind", string(cand.ConflictType)).Msg("conflict upsert failed")
			continue
		}
		conflicts = append(conflicts, *conflict)
	}
	return conflicts
}

func findTimekeepingRecord(db *gorm.DB, employeeID int32, dateStr string) (*models.TimekeepingRecord, error) {
	var rec models.TimekeepingRecord
	err := db.Where("employee_id = ? AND date = ?", employeeID, dateStr).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
