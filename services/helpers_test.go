package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"learnhub/database"
	"learnhub/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var userSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name), zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, role string) Actor {
	t.Helper()

	n := userSeq.Add(1)
	user := models.User{
		Name:     fmt.Sprintf("%s %d", role, n),
		Email:    fmt.Sprintf("%s-%d@example.com", strings.ToLower(role), n),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return Actor{UserID: user.ID, Role: user.Role}
}

func createCourse(t *testing.T, db *gorm.DB, instructor Actor, status models.CourseStatus) *models.Course {
	t.Helper()

	course := models.Course{
		InstructorID: instructor.UserID,
		Title:        "Go in Practice",
		Status:       status,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createEvent(t *testing.T, db *gorm.DB, capacity *int) *models.Event {
	t.Helper()

	start := Now().Add(48 * time.Hour)
	event := models.Event{
		Title:     "Gopher Meetup",
		StartDate: start,
		EndDate:   start.Add(3 * time.Hour),
		Capacity:  capacity,
		Status:    models.EventUpcoming,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func createProgram(t *testing.T, db *gorm.DB, mentor Actor, capacity *int) *models.MentorshipProgram {
	t.Helper()

	program := models.MentorshipProgram{
		MentorID: mentor.UserID,
		Title:    "Backend Mentorship",
		Capacity: capacity,
		Status:   models.ProgramOpen,
	}
	require.NoError(t, db.Create(&program).Error)
	return &program
}

func studentsCount(t *testing.T, db *gorm.DB, courseID uint) int64 {
	t.Helper()

	var course models.Course
	require.NoError(t, db.Unscoped().First(&course, courseID).Error)
	return course.StudentsCount
}

func intPtr(n int) *int { return &n }
