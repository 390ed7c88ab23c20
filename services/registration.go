package services

import (
	"errors"

	"learnhub/models"
	"learnhub/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Register books a seat for the actor. Checks run capacity, then open window,
// then existing registration. A cancelled registration is reactivated instead
// of creating a second row. Capacity is counted live from the ledger.
func Register(db *gorm.DB, actor Actor, eventID uint) (registration *models.EventRegistration, reactivated bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		event, err := lockEvent(tx, eventID)
		if err != nil {
			return err
		}

		if err := ensureSeat(tx, event); err != nil {
			return err
		}

		if event.Status != models.EventUpcoming || event.StartDate.Before(Now()) {
			return ErrRegistrationClosed
		}

		existing, err := findRegistration(tx, eventID, actor.UserID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Status.HoldsSeat() {
			return ErrAlreadyRegistered
		}

		if existing != nil {
			existing.Status = models.RegistrationRegistered
			if err := tx.Model(existing).Update("status", existing.Status).Error; err != nil {
				return storageError("reactivate registration", err)
			}
			registration, reactivated = existing, true
			return nil
		}

		registration = &models.EventRegistration{
			EventID: eventID,
			UserID:  actor.UserID,
			Status:  models.RegistrationRegistered,
		}
		if err := tx.Create(registration).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyRegistered
			}
			return storageError("create registration", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	utils.Logger.Info("Event registration accepted",
		zap.Uint("registration_id", registration.ID),
		zap.Uint("event_id", eventID),
		zap.Uint("user_id", actor.UserID),
		zap.Bool("reactivated", reactivated),
	)

	return registration, reactivated, nil
}

// CancelRegistration cancels the actor's own registration for an event.
func CancelRegistration(db *gorm.DB, actor Actor, eventID uint) (*models.EventRegistration, error) {
	var registration *models.EventRegistration

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := first[models.Event](tx, eventID, ErrEventNotFound); err != nil {
			return err
		}

		var err error
		registration, err = findRegistration(forUpdate(tx), eventID, actor.UserID)
		if err != nil {
			return err
		}
		if registration == nil {
			return ErrNotRegistered
		}
		if !registration.Status.CanTransition(models.RegistrationCancelled) {
			return ErrRegistrationCancelled
		}

		registration.Status = models.RegistrationCancelled
		if err := tx.Model(registration).Update("status", registration.Status).Error; err != nil {
			return storageError("cancel registration", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// UpdateRegistrationStatus is the admin override. Any valid status may be set,
// but leaving "cancelled" takes a seat again and so is capacity checked.
func UpdateRegistrationStatus(db *gorm.DB, actor Actor, registrationID uint, status models.RegistrationStatus) (*models.EventRegistration, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ValidationError("status", "Status must be one of registered, attended, cancelled!")
	}

	var registration *models.EventRegistration

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		registration, err = first[models.EventRegistration](forUpdate(tx), registrationID, ErrRegistrationMissing)
		if err != nil {
			return err
		}

		if !registration.Status.HoldsSeat() && status.HoldsSeat() {
			event, err := lockEvent(tx, registration.EventID)
			if err != nil {
				return err
			}
			if err := ensureSeat(tx, event); err != nil {
				return err
			}
		}

		registration.Status = status
		if err := tx.Model(registration).Update("status", status).Error; err != nil {
			return storageError("update registration status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// MarkAttended records attendance for a registration (admin only).
func MarkAttended(db *gorm.DB, actor Actor, registrationID uint) (*models.EventRegistration, error) {
	return UpdateRegistrationStatus(db, actor, registrationID, models.RegistrationAttended)
}

// SeatsTaken counts registrations that hold a seat at the event.
func SeatsTaken(tx *gorm.DB, eventID uint) (int64, error) {
	var n int64
	err := tx.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status <> ?", eventID, models.RegistrationCancelled).
		Count(&n).Error
	if err != nil {
		return 0, storageError("count registrations", err)
	}
	return n, nil
}

// ensureSeat must run with the event row locked.
func ensureSeat(tx *gorm.DB, event *models.Event) error {
	if event.Capacity == nil {
		return nil
	}
	taken, err := SeatsTaken(tx, event.ID)
	if err != nil {
		return err
	}
	if capacityReached(event.Capacity, taken) {
		return ErrEventFull
	}
	return nil
}

func findRegistration(tx *gorm.DB, eventID, userID uint) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("find registration", err)
	}
	return &registration, nil
}

// SweepFinishedEvents marks upcoming or ongoing events whose end date has passed as completed.
func SweepFinishedEvents(db *gorm.DB) (int64, error) {
	res := db.Model(&models.Event{}).
		Where("status IN ? AND end_date < ?",
			[]string{string(models.EventUpcoming), string(models.EventOngoing)}, Now()).
		Update("status", models.EventCompleted)
	if res.Error != nil {
		return 0, storageError("sweep events", res.Error)
	}
	if res.RowsAffected > 0 {
		utils.Logger.Info("Finished events marked completed", zap.Int64("count", res.RowsAffected))
	}
	return res.RowsAffected, nil
}
