package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	attendance "github.com/gtplusnet/ante-official-sub012/attendance/core"
	"github.com/gtplusnet/ante-official-sub012/core"
	"gorm.io/gorm"
)

func main() {
	dateStr := flag.String("date", "", "First date to sweep (YYYY-MM-DD). Defaults to yesterday.")
	endStr := flag.String("end", "", "Last date to sweep (YYYY-MM-DD). Defaults to -date.")
	employeesStr := flag.String("employees", "", "Comma-separated employee ids. Empty means everyone.")
	databasesStr := flag.String("databases", "", "Comma-separated tenant schemas. Empty means every schema on the server.")
	flag.Parse()

	start := time.Now().AddDate(0, 0, -1)
	if *dateStr != "" {
		var err error
		start, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			panic(fmt.Sprintf("Invalid date format: %v", err))
		}
	}

	end := start
	if *endStr != "" {
		var err error
		end, err = time.Parse("2006-01-02", *endStr)
		if err != nil {
			panic(fmt.Sprintf("Invalid end date format: %v", err))
		}
	}

	var employees []int32
	if *employeesStr != "" {
		for _, part := range strings.Split(*employeesStr, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				panic(fmt.Sprintf("Invalid employee id %q: %v", part, err))
			}
			employees = append(employees, int32(id))
		}
	}

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/?parseTime=true"
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		panic(err)
	}
	dm.LogLevel = core.LogLevelError
	defer dm.Close()

	ctx := context.Background()

	var databases []string
	if *databasesStr != "" {
		for _, part := range strings.Split(*databasesStr, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				databases = append(databases, trimmed)
			}
		}
	} else {
		databases, err = dm.GetAllDatabases(ctx)
		if err != nil {
			panic(fmt.Sprintf("Failed to list databases: %v", err))
		}
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	fmt.Printf("Sweeping conflicts from %s to %s across %d schema(s)\n",
		start.Format("2006-01-02"), end.Format("2006-01-02"), len(databases))

	for _, dbName := range databases {
		fmt.Printf("Schema %s:\n", dbName)
		err := dm.Exec(ctx, dbName, func(db *gorm.DB) error {
			results := attendance.BatchDetectConflicts(db, employees, dates)
			total := 0
			for employeeID, conflicts := range results {
				fmt.Printf("  Employee %d: %d conflict(s)\n", employeeID, len(conflicts))
				for _, c := range conflicts {
					fmt.Printf("    %s %s: %s\n", c.DateString, c.ConflictType, c.Description)
				}
				total += len(conflicts)
			}
			fmt.Printf("  %d conflict(s) across %d employee(s).\n", total, len(results))
			return nil
		})
		if err != nil {
			fmt.Printf("  Failed to sweep %s: %v\n", dbName, err)
		}
	}
}
