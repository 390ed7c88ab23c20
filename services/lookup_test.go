package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentStatusFor(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	otherInstructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	classmate := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	none, err := EnrollmentStatusFor(db, student, course.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = Enroll(db, student, course.ID)
	require.NoError(t, err)

	own, err := EnrollmentStatusFor(db, student, course.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, own)
	require.NotNil(t, own.Course)
	assert.Equal(t, course.ID, own.Course.ID)

	byInstructor, err := EnrollmentStatusFor(db, instructor, course.ID, student.UserID)
	require.NoError(t, err)
	assert.NotNil(t, byInstructor)

	_, err = EnrollmentStatusFor(db, otherInstructor, course.ID, student.UserID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = EnrollmentStatusFor(db, classmate, course.ID, student.UserID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = EnrollmentStatusFor(db, student, 9999, 0)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestRegistrationStatusFor(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, models.RoleAdmin)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	event := createEvent(t, db, nil)

	_, _, err := Register(db, student, event.ID)
	require.NoError(t, err)

	registration, err := RegistrationStatusFor(db, admin, event.ID, student.UserID)
	require.NoError(t, err)
	require.NotNil(t, registration)
	assert.Equal(t, models.RegistrationRegistered, registration.Status)

	_, err = RegistrationStatusFor(db, instructor, event.ID, student.UserID)
	assert.ErrorIs(t, err, ErrForbidden)

	none, err := RegistrationStatusFor(db, instructor, event.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestApplicationStatusFor(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	peer := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, nil)

	_, err := Apply(db, student, program.ID, motivation)
	require.NoError(t, err)

	application, err := ApplicationStatusFor(db, mentor, program.ID, student.UserID)
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, models.ApplicationApplied, application.Status)

	_, err = ApplicationStatusFor(db, peer, program.ID, student.UserID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ApplicationStatusFor(db, peer, 9999, 0)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestInstructorCourses(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)

	published := createCourse(t, db, instructor, models.CoursePublished)
	createCourse(t, db, instructor, models.CourseDraft)

	user, courses, err := InstructorCourses(db, instructor.UserID)
	require.NoError(t, err)
	assert.Equal(t, instructor.UserID, user.ID)
	require.Len(t, courses, 1)
	assert.Equal(t, published.ID, courses[0].ID)

	_, _, err = InstructorCourses(db, student.UserID)
	assert.ErrorIs(t, err, ErrInstructorNotFound)

	_, _, err = InstructorCourses(db, 9999)
	assert.ErrorIs(t, err, ErrInstructorNotFound)
}
