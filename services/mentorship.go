package services

import (
	"learnhub/models"
	"learnhub/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Apply files the actor's application to an open program.
func Apply(db *gorm.DB, actor Actor, programID uint, motivation string) (*models.MentorshipApplication, error) {
	var application *models.MentorshipApplication

	err := db.Transaction(func(tx *gorm.DB) error {
		program, err := lockProgram(tx, programID)
		if err != nil {
			return err
		}

		if program.Status != models.ProgramOpen {
			return ErrProgramNotOpen
		}

		var existing int64
		if err := tx.Model(&models.MentorshipApplication{}).
			Where("program_id = ? AND user_id = ?", programID, actor.UserID).
			Count(&existing).Error; err != nil {
			return storageError("count applications", err)
		}
		if existing > 0 {
			return ErrAlreadyApplied
		}

		if err := ensureMenteeSlot(tx, program); err != nil {
			return err
		}

		application = &models.MentorshipApplication{
			ProgramID:  programID,
			UserID:     actor.UserID,
			Motivation: motivation,
			Status:     models.ApplicationApplied,
		}
		if err := tx.Create(application).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyApplied
			}
			return storageError("create application", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Info("Mentorship application submitted",
		zap.Uint("application_id", application.ID),
		zap.Uint("program_id", programID),
		zap.Uint("user_id", actor.UserID),
	)

	return application, nil
}

// UpdateApplicationStatus accepts or rejects an application. Only the program's
// mentor or an admin may decide. Acceptance re-checks capacity under the program
// lock; the program may have filled since the application was filed.
// Setting the status an application already has is a no-op.
func UpdateApplicationStatus(db *gorm.DB, actor Actor, applicationID uint, status models.ApplicationStatus) (*models.MentorshipApplication, error) {
	if status != models.ApplicationAccepted && status != models.ApplicationRejected {
		return nil, ValidationError("status", "Status must be accepted or rejected!")
	}

	var application *models.MentorshipApplication

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		application, err = first[models.MentorshipApplication](tx, applicationID, ErrApplicationNotFound)
		if err != nil {
			return err
		}

		// Lock order is program then application, same as Apply.
		program, err := lockProgram(tx, application.ProgramID)
		if err != nil {
			return err
		}
		if program.MentorID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}

		application, err = first[models.MentorshipApplication](forUpdate(tx), applicationID, ErrApplicationNotFound)
		if err != nil {
			return err
		}
		application.Program = program
		if application.Status == status {
			return nil
		}
		if !application.Status.CanTransition(status) {
			return ErrIllegalTransition
		}

		if status == models.ApplicationAccepted {
			if err := ensureMenteeSlot(tx, program); err != nil {
				return err
			}
		}

		application.Status = status
		if err := tx.Model(application).Update("status", status).Error; err != nil {
			return storageError("update application status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Info("Mentorship application decided",
		zap.Uint("application_id", application.ID),
		zap.String("status", string(application.Status)),
		zap.Uint("actor_id", actor.UserID),
	)

	return application, nil
}

// AcceptedCount counts accepted applications, the measure of program capacity.
func AcceptedCount(tx *gorm.DB, programID uint) (int64, error) {
	var n int64
	err := tx.Model(&models.MentorshipApplication{}).
		Where("program_id = ? AND status = ?", programID, models.ApplicationAccepted).
		Count(&n).Error
	if err != nil {
		return 0, storageError("count accepted applications", err)
	}
	return n, nil
}

// ensureMenteeSlot must run with the program row locked.
func ensureMenteeSlot(tx *gorm.DB, program *models.MentorshipProgram) error {
	if program.Capacity == nil {
		return nil
	}
	accepted, err := AcceptedCount(tx, program.ID)
	if err != nil {
		return err
	}
	if capacityReached(program.Capacity, accepted) {
		return ErrProgramFull
	}
	return nil
}
