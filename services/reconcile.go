package services

import (
	"learnhub/models"
	"learnhub/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CountFix describes one students_count correction.
type CountFix struct {
	CourseID uint   `json:"course_id"`
	Title    string `json:"title"`
	Previous int64  `json:"previous_count"`
	Actual   int64  `json:"actual_count"`
}

// ReconcileReport summarises a reconciliation run.
type ReconcileReport struct {
	Checked int        `json:"checked"`
	Fixed   []CountFix `json:"fixed"`
}

// ReconcileStudentsCount recomputes students_count from the enrollment ledger.
// With a nil courseID every course is checked. Running it twice is a no-op.
func ReconcileStudentsCount(db *gorm.DB, courseID *uint) (*ReconcileReport, error) {
	var ids []uint
	if courseID != nil {
		ids = []uint{*courseID}
	} else if err := db.Unscoped().Model(&models.Course{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, storageError("list courses", err)
	}

	report := &ReconcileReport{Fixed: []CountFix{}}
	for _, id := range ids {
		fix, err := reconcileCourse(db, id)
		if err != nil {
			return nil, err
		}
		report.Checked++
		if fix != nil {
			report.Fixed = append(report.Fixed, *fix)
		}
	}

	utils.Logger.Info("students_count reconciliation finished",
		zap.Int("checked", report.Checked),
		zap.Int("fixed", len(report.Fixed)),
	)

	return report, nil
}

// reconcileCourse locks the course so no enrollment commits between the count and the write.
func reconcileCourse(db *gorm.DB, courseID uint) (*CountFix, error) {
	var fix *CountFix

	err := db.Transaction(func(tx *gorm.DB) error {
		course, err := first[models.Course](forUpdate(tx.Unscoped()), courseID, ErrCourseNotFound)
		if err != nil {
			return err
		}

		actual, err := countStudents(tx, courseID)
		if err != nil {
			return err
		}
		if actual == course.StudentsCount {
			return nil
		}

		if err := tx.Unscoped().Model(&models.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("students_count", actual).Error; err != nil {
			return storageError("write students_count", err)
		}

		fix = &CountFix{
			CourseID: course.ID,
			Title:    course.Title,
			Previous: course.StudentsCount,
			Actual:   actual,
		}
		utils.Logger.Warn("students_count drift corrected",
			zap.Uint("course_id", course.ID),
			zap.Int64("previous", course.StudentsCount),
			zap.Int64("actual", actual),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fix, nil
}

// countStudents is the authoritative ledger count behind students_count.
func countStudents(tx *gorm.DB, courseID uint) (int64, error) {
	var n int64
	err := tx.Model(&models.Enrollment{}).
		Where("course_id = ? AND status IN ?", courseID,
			[]string{string(models.EnrollmentActive), string(models.EnrollmentCompleted)}).
		Count(&n).Error
	if err != nil {
		return 0, storageError("count students", err)
	}
	return n, nil
}
