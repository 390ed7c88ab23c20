// Command fixStudentCount recomputes Course.students_count from the enrollment ledger.
//
//	go run ./scripts/fixStudentCount.go [course_id]
package main

import (
	"fmt"
	"os"
	"strconv"

	"learnhub/config"
	"learnhub/database"
	"learnhub/services"
	"learnhub/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	log := utils.InitLogger(config.AppConfig.Environment)
	defer log.Sync()

	database.ConnectDb(config.AppConfig.DBDriver, config.AppConfig.DSN(), log)

	var courseID *uint
	if len(os.Args) > 1 {
		id, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil || id == 0 {
			log.Fatal("Invalid course id", zap.String("arg", os.Args[1]))
		}
		cid := uint(id)
		courseID = &cid
	}

	report, err := services.ReconcileStudentsCount(database.Database.Db, courseID)
	if err != nil {
		log.Fatal("Reconciliation failed", zap.Error(err))
	}

	fmt.Printf("Checked %d course(s), fixed %d\n", report.Checked, len(report.Fixed))
	for _, fix := range report.Fixed {
		fmt.Printf("  #%d %-40s %d -> %d\n", fix.CourseID, fix.Title, fix.Previous, fix.Actual)
	}
}
