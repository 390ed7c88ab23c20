package services

import (
	"learnhub/models"
	"learnhub/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Enroll admits the actor into a published course and bumps its students_count
// in the same transaction.
func Enroll(db *gorm.DB, actor Actor, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		course, err := lockCourse(tx, courseID)
		if err != nil {
			return err
		}

		// Any prior row blocks re-enrollment, cancelled ones included.
		var existing int64
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", actor.UserID, courseID).
			Count(&existing).Error; err != nil {
			return storageError("count enrollments", err)
		}
		if existing > 0 {
			return ErrAlreadyEnrolled
		}

		if course.Status != models.CoursePublished {
			return ErrCourseNotPublished
		}

		enrollment = models.Enrollment{
			UserID:   actor.UserID,
			CourseID: courseID,
			Status:   models.EnrollmentActive,
			Progress: 0,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyEnrolled
			}
			return storageError("create enrollment", err)
		}

		if err := adjustStudentsCount(tx, courseID, 1); err != nil {
			return err
		}

		return tx.Preload("Course").First(&enrollment, enrollment.ID).Error
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Info("Course enrollment created",
		zap.Uint("enrollment_id", enrollment.ID),
		zap.Uint("user_id", actor.UserID),
		zap.Uint("course_id", courseID),
		zap.Int64("students_count", enrollment.Course.StudentsCount),
	)

	return &enrollment, nil
}

// UpdateProgress records the owner's progress; reaching 100 completes an active enrollment.
func UpdateProgress(db *gorm.DB, actor Actor, enrollmentID uint, progress float64) (*models.Enrollment, error) {
	var enrollment *models.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		enrollment, err = first[models.Enrollment](forUpdate(tx), enrollmentID, ErrEnrollmentNotFound)
		if err != nil {
			return err
		}

		if enrollment.UserID != actor.UserID {
			return ErrForbidden
		}
		if progress < 0 || progress > 100 {
			return ErrInvalidProgressRange
		}

		updates := map[string]interface{}{"progress": progress}
		enrollment.Progress = progress

		if progress == 100 && enrollment.Status == models.EnrollmentActive {
			completedAt := Now()
			enrollment.Status = models.EnrollmentCompleted
			enrollment.CompletedAt = &completedAt
			updates["status"] = enrollment.Status
			updates["completed_at"] = completedAt
		}

		if err := tx.Model(enrollment).Updates(updates).Error; err != nil {
			return storageError("update progress", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// CompleteEnrollment marks the enrollment completed. The counter is unchanged:
// completed enrollments still count as students.
func CompleteEnrollment(db *gorm.DB, actor Actor, enrollmentID uint) (*models.Enrollment, error) {
	var enrollment *models.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		enrollment, err = first[models.Enrollment](forUpdate(tx), enrollmentID, ErrEnrollmentNotFound)
		if err != nil {
			return err
		}

		if enrollment.UserID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}
		if enrollment.Status == models.EnrollmentCompleted {
			return ErrAlreadyCompleted
		}
		if !enrollment.Status.CanTransition(models.EnrollmentCompleted) {
			return ErrIllegalTransition
		}

		completedAt := Now()
		enrollment.Status = models.EnrollmentCompleted
		enrollment.Progress = 100
		enrollment.CompletedAt = &completedAt

		if err := tx.Model(enrollment).Updates(map[string]interface{}{
			"status":       enrollment.Status,
			"progress":     enrollment.Progress,
			"completed_at": completedAt,
		}).Error; err != nil {
			return storageError("complete enrollment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// CancelEnrollment cancels the enrollment and releases its seat in students_count.
func CancelEnrollment(db *gorm.DB, actor Actor, enrollmentID uint) (*models.Enrollment, error) {
	var enrollment *models.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		enrollment, err = first[models.Enrollment](forUpdate(tx), enrollmentID, ErrEnrollmentNotFound)
		if err != nil {
			return err
		}

		if enrollment.UserID != actor.UserID && !actor.IsAdmin() {
			return ErrForbidden
		}
		if enrollment.Status == models.EnrollmentCancelled {
			return ErrEnrollmentCancelled
		}

		previous := enrollment.Status
		enrollment.Status = models.EnrollmentCancelled

		if err := tx.Model(enrollment).Update("status", enrollment.Status).Error; err != nil {
			return storageError("cancel enrollment", err)
		}

		if previous.CountsTowardStudents() {
			return adjustStudentsCount(tx, enrollment.CourseID, -1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Info("Course enrollment cancelled",
		zap.Uint("enrollment_id", enrollment.ID),
		zap.Uint("course_id", enrollment.CourseID),
		zap.Uint("actor_id", actor.UserID),
	)

	return enrollment, nil
}

// DeleteEnrollment removes the ledger row (admin only), releasing its seat first.
func DeleteEnrollment(db *gorm.DB, actor Actor, enrollmentID uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	return db.Transaction(func(tx *gorm.DB) error {
		enrollment, err := first[models.Enrollment](forUpdate(tx), enrollmentID, ErrEnrollmentNotFound)
		if err != nil {
			return err
		}

		if enrollment.Status.CountsTowardStudents() {
			if err := adjustStudentsCount(tx, enrollment.CourseID, -1); err != nil {
				return err
			}
		}

		if err := tx.Delete(enrollment).Error; err != nil {
			return storageError("delete enrollment", err)
		}

		utils.Logger.Info("Course enrollment deleted",
			zap.Uint("enrollment_id", enrollment.ID),
			zap.Uint("course_id", enrollment.CourseID),
			zap.Uint("admin_id", actor.UserID),
		)
		return nil
	})
}

// adjustStudentsCount is the only writer of Course.students_count besides the
// reconciler. It issues a single atomic UPDATE; decrements never go below zero.
func adjustStudentsCount(tx *gorm.DB, courseID uint, delta int) error {
	q := tx.Unscoped().Model(&models.Course{}).Where("id = ?", courseID)
	if delta < 0 {
		q = q.Where("students_count >= ?", -delta)
	}

	res := q.UpdateColumn("students_count", gorm.Expr("students_count + ?", delta))
	if res.Error != nil {
		return storageError("update students_count", res.Error)
	}

	if res.RowsAffected == 0 {
		if delta > 0 {
			return ErrCourseNotFound
		}
		utils.Logger.Warn("students_count already at zero, decrement skipped",
			zap.Uint("course_id", courseID))
	}
	return nil
}
