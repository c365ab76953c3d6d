package core

import (
	"fmt"

	"github.com/gtplusnet/ante-official-sub012/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportConflicts renders the filtered conflict list to an xlsx workbook for
// payroll review. The viewer's ignore ledger applies, same as the listing.
func ExportConflicts(db *gorm.DB, params SearchParams, viewerID int32) (*excelize.File, error) {
	// Export is unpaginated; pull everything the filters match.
	params.Page = 1
	params.Limit = 100000

	result, err := SearchConflicts(db, params, viewerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Conflicts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Employee ID", "Type", "Shift", "Start", "End", "Description", "Resolved", "Resolved At", "Resolved By"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, c := range result.Data {
		row := i + 2
		resolvedAt := ""
		if c.ResolvedAt != nil {
			resolvedAt = c.ResolvedAt.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			c.DateString,
			c.AccountID,
			string(c.ConflictType),
			c.Shift.Name,
			c.Shift.Start,
			c.Shift.End,
			c.Description,
			utils.FormatBoolean(c.IsResolved, "Yes", "No"),
			resolvedAt,
			utils.Format(c.ResolvedBy),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	_ = f.SetColWidth(sheet, "G", "G", 60)

	return f, nil
}
