package database

import (
	"fmt"
	"time"

	"learnhub/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// Open connects to the given driver, configures the pool and runs migrations.
func Open(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	if driver == "sqlite" {
		// SQLite allows a single writer; one connection keeps transactions serialized.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := RunMigrations(db, log); err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectDb establishes the global connection or terminates the process.
func ConnectDb(driver, dsn string, log *zap.Logger) {
	db, err := Open(driver, dsn, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.String("driver", driver), zap.Error(err))
	}

	log.Info("Connected to database", zap.String("driver", driver))

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Debug("Running migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.LoginTracking{},
		&models.Course{},
		&models.Enrollment{},
		&models.Event{},
		&models.EventRegistration{},
		&models.MentorshipProgram{},
		&models.MentorshipApplication{},
		&models.MentorshipSession{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Debug("Migrations completed")
	return nil
}
