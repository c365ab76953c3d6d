package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/gtplusnet/ante-official-sub012/core"
	"github.com/gtplusnet/ante-official-sub012/core/models"
	"github.com/gtplusnet/ante-official-sub012/utils"
)

// Imports raw clock scans from a CSV export of the timer devices:
// employeeId,date,timeIn,timeOut,deviceId (header row expected).
func main() {
	file := flag.String("file", "", "CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("usage: importlogs -file <logs.csv>")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		panic(fmt.Sprintf("failed to parse CSV: %v", err))
	}
	if len(rows) < 2 {
		fmt.Println("Nothing to import.")
		return
	}

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/ante?parseTime=true"
	}
	db := core.ConnectDB(dsn)

	entries, skipped := entriesFromRows(rows[1:])

	if len(entries) > 0 {
		if err := db.CreateInBatches(entries, 500).Error; err != nil {
			panic(fmt.Sprintf("failed to insert entries: %v", err))
		}
	}

	fmt.Printf("Imported %d entries, skipped %d rows.\n", len(entries), skipped)
}

// entriesFromRows converts CSV data rows into raw log entries. The date column
// is re-keyed to the canonical YYYY-MM-DD form so detection lookups match
// regardless of how the device export formatted it. Malformed rows are skipped.
func entriesFromRows(rows [][]string) (entries []models.RawLogEntry, skipped int) {
	for i, row := range rows {
		if len(row) < 4 {
			fmt.Printf("Warning: row %d has %d columns, skipping\n", i+2, len(row))
			skipped++
			continue
		}

		employeeID, err := strconv.Atoi(row[0])
		if err != nil {
			fmt.Printf("Warning: row %d has invalid employee id %q, skipping\n", i+2, row[0])
			skipped++
			continue
		}

		t, err := utils.ParseISOTime(row[1])
		if err != nil {
			fmt.Printf("Warning: row %d has invalid date %q, skipping\n", i+2, row[1])
			skipped++
			continue
		}

		entry := models.RawLogEntry{
			ID:            uuid.NewString(),
			EmployeeID:    int32(employeeID),
			Date:          utils.DateKey(*t),
			TimeIn:        row[2],
			TimeOut:       row[3],
			ProcessStatus: "raw",
		}
		if len(row) > 4 {
			entry.DeviceID = row[4]
		}
		entries = append(entries, entry)
	}
	return entries, skipped
}
