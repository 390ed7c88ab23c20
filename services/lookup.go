package services

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// EnrollmentStatusFor returns userID's enrollment in a course, or nil when there is none.
// A zero userID means the actor. Looking up someone else needs an admin or the
// course instructor.
func EnrollmentStatusFor(db *gorm.DB, actor Actor, courseID, userID uint) (*models.Enrollment, error) {
	course, err := first[models.Course](db, courseID, ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	userID = subject(actor, userID)
	if userID != actor.UserID && !actor.IsAdmin() && course.InstructorID != actor.UserID {
		return nil, ErrForbidden
	}

	var enrollment models.Enrollment
	err = db.Preload("Course.Instructor").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	return found(&enrollment, err, "find enrollment")
}

// RegistrationStatusFor returns userID's registration for an event, or nil.
// Only admins may look up other users.
func RegistrationStatusFor(db *gorm.DB, actor Actor, eventID, userID uint) (*models.EventRegistration, error) {
	if _, err := first[models.Event](db, eventID, ErrEventNotFound); err != nil {
		return nil, err
	}

	userID = subject(actor, userID)
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var registration models.EventRegistration
	err := db.Preload("Event").
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&registration).Error
	return found(&registration, err, "find registration")
}

// ApplicationStatusFor returns userID's application to a program, or nil.
// Other users may be looked up by an admin or the program mentor.
func ApplicationStatusFor(db *gorm.DB, actor Actor, programID, userID uint) (*models.MentorshipApplication, error) {
	program, err := first[models.MentorshipProgram](db, programID, ErrProgramNotFound)
	if err != nil {
		return nil, err
	}

	userID = subject(actor, userID)
	if userID != actor.UserID && !actor.IsAdmin() && program.MentorID != actor.UserID {
		return nil, ErrForbidden
	}

	var application models.MentorshipApplication
	err = db.Preload("Program.Mentor").
		Where("program_id = ? AND user_id = ?", programID, userID).
		First(&application).Error
	return found(&application, err, "find application")
}

// InstructorCourses returns an instructor and their published courses.
func InstructorCourses(db *gorm.DB, instructorID uint) (*models.User, []models.Course, error) {
	var instructor models.User
	err := db.Where("id = ? AND role = ?", instructorID, models.RoleInstructor).First(&instructor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, nil, storageError("load instructor", err)
	}

	courses := []models.Course{}
	if err := db.Where("instructor_id = ? AND status = ?", instructorID, models.CoursePublished).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, nil, storageError("list instructor courses", err)
	}
	return &instructor, courses, nil
}

func subject(actor Actor, userID uint) uint {
	if userID == 0 {
		return actor.UserID
	}
	return userID
}

func found[T any](row *T, err error, step string) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(step, err)
	}
	return row, nil
}
