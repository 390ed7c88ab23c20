package services

import (
	"errors"
	"time"

	"learnhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionInput carries the mutable fields of a mentorship session.
type SessionInput struct {
	ProgramID   uint
	MenteeID    uint
	Title       string
	Description string
	ScheduledAt time.Time
	Duration    int
	MeetingLink string
	Notes       string
}

// CreateSession schedules a meeting between the program mentor and an accepted mentee.
func CreateSession(db *gorm.DB, actor Actor, in SessionInput) (*models.MentorshipSession, error) {
	var session *models.MentorshipSession

	err := db.Transaction(func(tx *gorm.DB) error {
		program, err := first[models.MentorshipProgram](tx, in.ProgramID, ErrProgramNotFound)
		if err != nil {
			return err
		}
		if program.MentorID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}

		var accepted int64
		if err := tx.Model(&models.MentorshipApplication{}).
			Where("program_id = ? AND user_id = ? AND status = ?", program.ID, in.MenteeID, models.ApplicationAccepted).
			Count(&accepted).Error; err != nil {
			return storageError("check mentee", err)
		}
		if accepted == 0 {
			return ErrMenteeNotAccepted
		}

		session = &models.MentorshipSession{
			ProgramID:   program.ID,
			MentorID:    program.MentorID,
			MenteeID:    in.MenteeID,
			Title:       in.Title,
			Description: in.Description,
			ScheduledAt: in.ScheduledAt,
			Duration:    in.Duration,
			MeetingLink: in.MeetingLink,
			MeetingCode: uuid.NewString(),
			Status:      models.SessionScheduled,
			Notes:       in.Notes,
		}
		if err := tx.Create(session).Error; err != nil {
			return storageError("create session", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession loads a session visible to its mentor, its mentee or an admin.
func GetSession(db *gorm.DB, actor Actor, sessionID uint) (*models.MentorshipSession, error) {
	var session models.MentorshipSession
	err := db.Preload("Program").Preload("Mentor").Preload("Mentee").First(&session, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, storageError("load session", err)
	}

	if !actor.IsAdmin() && session.MentorID != actor.UserID && session.MenteeID != actor.UserID {
		return nil, ErrForbidden
	}
	return &session, nil
}

// ProgramSessions lists every session of a program for its mentor or an admin.
func ProgramSessions(db *gorm.DB, actor Actor, programID uint) ([]models.MentorshipSession, error) {
	program, err := first[models.MentorshipProgram](db, programID, ErrProgramNotFound)
	if err != nil {
		return nil, err
	}
	if program.MentorID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	sessions := []models.MentorshipSession{}
	if err := db.Preload("Mentor").Preload("Mentee").
		Where("program_id = ?", programID).
		Order("scheduled_at asc").Find(&sessions).Error; err != nil {
		return nil, storageError("list program sessions", err)
	}
	return sessions, nil
}

// UpdateSession edits a scheduled session (mentor or admin). Status moves go through
// CompleteSession and CancelSession.
func UpdateSession(db *gorm.DB, actor Actor, sessionID uint, updates map[string]interface{}) (*models.MentorshipSession, error) {
	var session *models.MentorshipSession

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = first[models.MentorshipSession](forUpdate(tx), sessionID, ErrSessionNotFound)
		if err != nil {
			return err
		}
		if session.MentorID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}
		if session.Status != models.SessionScheduled {
			return ErrSessionNotScheduled
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(session).
			Select("title", "description", "scheduled_at", "duration", "meeting_link", "notes").
			Updates(updates).Error; err != nil {
			return storageError("update session", err)
		}
		return tx.First(session, session.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// CompleteSession is allowed to the mentor or an admin.
func CompleteSession(db *gorm.DB, actor Actor, sessionID uint) (*models.MentorshipSession, error) {
	return moveSession(db, sessionID, models.SessionCompleted, func(s *models.MentorshipSession) bool {
		return s.MentorID == actor.UserID || actor.IsAdmin()
	})
}

// CancelSession is allowed to either participant or an admin.
func CancelSession(db *gorm.DB, actor Actor, sessionID uint) (*models.MentorshipSession, error) {
	return moveSession(db, sessionID, models.SessionCancelled, func(s *models.MentorshipSession) bool {
		return s.MentorID == actor.UserID || s.MenteeID == actor.UserID || actor.IsAdmin()
	})
}

// DeleteSession removes a session (mentor or admin).
func DeleteSession(db *gorm.DB, actor Actor, sessionID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		session, err := first[models.MentorshipSession](forUpdate(tx), sessionID, ErrSessionNotFound)
		if err != nil {
			return err
		}
		if session.MentorID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}
		if err := tx.Delete(session).Error; err != nil {
			return storageError("delete session", err)
		}
		return nil
	})
}

func moveSession(db *gorm.DB, sessionID uint, next models.SessionStatus, allowed func(*models.MentorshipSession) bool) (*models.MentorshipSession, error) {
	var session *models.MentorshipSession

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = first[models.MentorshipSession](forUpdate(tx), sessionID, ErrSessionNotFound)
		if err != nil {
			return err
		}
		if !allowed(session) {
			return ErrForbidden
		}
		if !session.Status.CanTransition(next) {
			return ErrSessionNotScheduled
		}

		session.Status = next
		if err := tx.Model(session).Update("status", next).Error; err != nil {
			return storageError("update session status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}
