// Package services holds the membership lifecycle operations shared by the
// HTTP controllers, the scheduler and the maintenance scripts.
//
// Every mutating operation runs in one transaction that covers the ledger
// write, any counter update and any capacity check. Parent rows (course,
// event, program) are locked FOR UPDATE before capacity is counted, so two
// concurrent admissions cannot both observe a free seat.
package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Now is the clock used for registration windows and completion stamps.
var Now = time.Now

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleSuperAdmin
}

func (a Actor) IsInstructorOrAdmin() bool {
	return a.Role == models.RoleInstructor || a.IsAdmin()
}

// forUpdate locks the selected rows until the surrounding transaction ends.
// Dialects without row locks (SQLite) drop the clause; they serialize writers instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// first loads one row by primary key, translating a missing row into notFound.
func first[T any](tx *gorm.DB, id uint, notFound error) (*T, error) {
	var row T
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, storageError("load row", err)
	}
	return &row, nil
}

func lockCourse(tx *gorm.DB, id uint) (*models.Course, error) {
	return first[models.Course](forUpdate(tx), id, ErrCourseNotFound)
}

func lockEvent(tx *gorm.DB, id uint) (*models.Event, error) {
	return first[models.Event](forUpdate(tx), id, ErrEventNotFound)
}

func lockProgram(tx *gorm.DB, id uint) (*models.MentorshipProgram, error) {
	return first[models.MentorshipProgram](forUpdate(tx), id, ErrProgramNotFound)
}

// isDuplicate reports a unique-index violation; it needs gorm.Config.TranslateError.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func capacityReached(capacity *int, taken int64) bool {
	return capacity != nil && taken >= int64(*capacity)
}
