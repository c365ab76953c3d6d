package core

import (
	"errors"
	"fmt"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/gtplusnet/ante-official-sub012/utils"
	"gorm.io/gorm"
)

var ErrCutoffNotFound = errors.New("cutoff not found")

type SearchParams struct {
	AccountID    *int32              `json:"accountId"`
	StartDate    string              `json:"startDate"` // inclusive, YYYY-MM-DD
	EndDate      string              `json:"endDate"`   // inclusive, YYYY-MM-DD
	ConflictType *model.ConflictType `json:"conflictType"`
	IsResolved   *bool               `json:"isResolved"`
	Page         int                 `json:"page"`
	Limit        int                 `json:"limit"`
}

type SearchResult struct {
	Data      []model.Conflict `json:"data"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageCount int              `json:"pageCount"`
}

// SearchConflicts lists conflicts for one viewer. Anything the viewer has a
// ledger row for is excluded regardless of the recorded action; other viewers
// and the stats are not affected by that ledger.
func SearchConflicts(db *gorm.DB, params SearchParams, viewerID int32) (*SearchResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 50
	}

	query := db.Model(&model.Conflict{})
	if params.AccountID != nil {
		query = query.Where("account_id = ?", *params.AccountID)
	}
	if params.StartDate != "" {
		query = query.Where("date_string >= ?", params.StartDate)
	}
	if params.EndDate != "" {
		query = query.Where("date_string <= ?", params.EndDate)
	}
	if params.ConflictType != nil {
		query = query.Where("conflict_type = ?", *params.ConflictType)
	}
	if params.IsResolved != nil {
		query = query.Where("is_resolved = ?", *params.IsResolved)
	}

	reviewed := db.Model(&model.ConflictReview{}).
		Select("conflict_id").
		Where("actor_id = ?", viewerID)
	query = query.Where("id NOT IN (?)", reviewed)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count conflicts: %w", err)
	}

	var conflicts []model.Conflict
	err := query.
		Order("date_string DESC, created_at DESC").
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Find(&conflicts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search conflicts: %w", err)
	}

	pageCount := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return &SearchResult{
		Data:      conflicts,
		Total:     total,
		Page:      params.Page,
		PageCount: pageCount,
	}, nil
}

type Stats struct {
	Total      int64                        `json:"total"`
	Resolved   int64                        `json:"resolved"`
	Unresolved int64                        `json:"unresolved"`
	ByType     map[model.ConflictType]int64 `json:"byType"`
}

// ConflictStats aggregates conflicts over an inclusive date-string range.
// Every known kind appears in ByType, zero-filled when absent, so consumers
// get a stable shape as kinds are added.
func ConflictStats(db *gorm.DB, startDate, endDate string) (*Stats, error) {
	query := db.Model(&model.Conflict{})
	if startDate != "" {
		query = query.Where("date_string >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date_string <= ?", endDate)
	}

	stats := &Stats{ByType: make(map[model.ConflictType]int64)}
	for _, kind := range model.ConflictTypes {
		stats.ByType[kind] = 0
	}

	if err := query.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count conflicts: %w", err)
	}
	if err := query.Session(&gorm.Session{}).Where("is_resolved = ?", true).Count(&stats.Resolved).Error; err != nil {
		return nil, fmt.Errorf("failed to count resolved conflicts: %w", err)
	}
	stats.Unresolved = stats.Total - stats.Resolved

	var rows []struct {
		ConflictType model.ConflictType
		Count        int64
	}
	err := query.Session(&gorm.Session{}).
		Select("conflict_type, COUNT(*) as count").
		Group("conflict_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group conflicts by type: %w", err)
	}
	for _, row := range rows {
		stats.ByType[row.ConflictType] = row.Count
	}

	return stats, nil
}

// TableRow is one calendar day of the per-employee-per-cutoff view.
type TableRow struct {
	Date      string                    `json:"date"`
	Record    *models.TimekeepingRecord `json:"record"`
	Entries   []models.RawLogEntry      `json:"entries"`
	Conflicts []model.Conflict          `json:"conflicts"`
}

// TimekeepingTable builds the employee's timekeeping view for one cutoff
// period, newest day first.
func TimekeepingTable(db *gorm.DB, employeeID, cutoffID int32) ([]TableRow, error) {
	cutoff, err := models.FindCutoffByID(db, cutoffID)
	if err != nil {
		return nil, err
	}
	if cutoff == nil {
		return nil, ErrCutoffNotFound
	}

	start := utils.DateKey(cutoff.StartDate)
	end := utils.DateKey(cutoff.EndDate)

	var records []models.TimekeepingRecord
	if err := db.Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, start, end).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch timekeeping records: %w", err)
	}
	recordMap := make(map[string]*models.TimekeepingRecord)
	for i := range records {
		recordMap[records[i].Date] = &records[i]
	}

	var entries []models.RawLogEntry
	if err := db.Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, start, end).
		Order("time_in ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch raw log entries: %w", err)
	}
	entryMap := utils.GroupBy(entries, func(e models.RawLogEntry) string { return e.Date })

	var conflicts []model.Conflict
	if err := db.Where("account_id = ? AND date_string BETWEEN ? AND ?", employeeID, start, end).
		Find(&conflicts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch conflicts: %w", err)
	}
	conflictMap := utils.GroupBy(conflicts, func(c model.Conflict) string { return c.DateString })

	var rows []TableRow
	for d := cutoff.EndDate; !d.Before(cutoff.StartDate); d = d.AddDate(0, 0, -1) {
		dateStr := utils.DateKey(d)
		rows = append(rows, TableRow{
			Date:      dateStr,
			Record:    recordMap[dateStr],
			Entries:   entryMap[dateStr],
			Conflicts: conflictMap[dateStr],
		})
	}
	return rows, nil
}
