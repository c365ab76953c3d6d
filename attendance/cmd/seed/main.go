package main

import (
	"log"
	"os"

	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	"github.com/gtplusnet/ante-official-sub012/core"
	"github.com/gtplusnet/ante-official-sub012/core/models"
)

func main() {
	dsn := os.Getenv("DSN") //"root:development@tcp(localhost:3306)/ante?parseTime=true"
	db := core.ConnectDB(dsn)

	tables := []interface{}{
		&models.Employee{},
		&models.Shift{},
		&models.ScheduleAssignment{},
		&models.TimekeepingRecord{},
		&models.RawLogEntry{},
		&models.Cutoff{},
		&model.Conflict{},
		&model.ConflictReview{},
	}

	for _, m := range tables {
		if !db.Migrator().HasTable(m) {
			err := db.Migrator().CreateTable(m)
			if err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}
}
