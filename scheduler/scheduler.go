// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"fmt"

	"learnhub/services"
	"learnhub/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Specs are the cron expressions of the maintenance jobs. An empty spec disables its job.
type Specs struct {
	Reconcile  string
	EventSweep string
}

// panicLogger routes recovered job panics into the application logger.
func panicLogger() cron.Logger {
	named := utils.Logger.Named("cron")
	std, err := zap.NewStdLogAt(named, zap.ErrorLevel)
	if err != nil {
		std = zap.NewStdLog(named)
	}
	return cron.PrintfLogger(std)
}

// Start registers the jobs on a new cron and starts it. The caller stops it on shutdown.
func Start(db *gorm.DB, specs Specs) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(panicLogger())))

	if specs.Reconcile != "" {
		if _, err := c.AddFunc(specs.Reconcile, func() { ReconcileJob(db) }); err != nil {
			return nil, fmt.Errorf("schedule reconcile %q: %w", specs.Reconcile, err)
		}
	}

	if specs.EventSweep != "" {
		if _, err := c.AddFunc(specs.EventSweep, func() { EventSweepJob(db) }); err != nil {
			return nil, fmt.Errorf("schedule event sweep %q: %w", specs.EventSweep, err)
		}
	}

	c.Start()
	utils.Logger.Info("Scheduler started",
		zap.String("reconcile", specs.Reconcile),
		zap.String("event_sweep", specs.EventSweep),
	)
	return c, nil
}

// ReconcileJob repairs students_count drift on every course.
func ReconcileJob(db *gorm.DB) {
	report, err := services.ReconcileStudentsCount(db, nil)
	if err != nil {
		utils.Logger.Error("Scheduled reconciliation failed", zap.Error(err))
		return
	}
	if len(report.Fixed) > 0 {
		utils.Notifications.Notify("courses.students_count_repaired", report)
	}
}

// EventSweepJob closes events whose end date has passed.
func EventSweepJob(db *gorm.DB) {
	if _, err := services.SweepFinishedEvents(db); err != nil {
		utils.Logger.Error("Scheduled event sweep failed", zap.Error(err))
	}
}
