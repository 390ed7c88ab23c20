package services

import (
	"sync"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollLifecycleKeepsStudentsCount(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	admin := createUser(t, db, models.RoleAdmin)
	alice := createUser(t, db, models.RoleStudent)
	bob := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, alice, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
	assert.Equal(t, float64(0), enrollment.Progress)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, int64(1), enrollment.Course.StudentsCount)

	_, err = CancelEnrollment(db, alice, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))

	bobs, err := Enroll(db, bob, course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))

	require.NoError(t, DeleteEnrollment(db, admin, bobs.ID))
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))
}

func TestEnrollRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	_, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	_, err = Enroll(db, student, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))
}

func TestEnrollCancelledRowBlocksReEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)
	_, err = CancelEnrollment(db, student, enrollment.ID)
	require.NoError(t, err)

	_, err = Enroll(db, student, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))
}

func TestEnrollUnavailableCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	draft := createCourse(t, db, instructor, models.CourseDraft)

	_, err := Enroll(db, student, draft.ID)
	assert.ErrorIs(t, err, ErrCourseNotPublished)
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.Equal(t, int64(0), studentsCount(t, db, draft.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&rows).Error)
	assert.Zero(t, rows)

	_, err = Enroll(db, student, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCancelEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	stranger := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	_, err = CancelEnrollment(db, stranger, enrollment.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := CancelEnrollment(db, student, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCancelled, cancelled.Status)

	_, err = CancelEnrollment(db, student, enrollment.ID)
	assert.ErrorIs(t, err, ErrEnrollmentCancelled)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))

	_, err = CancelEnrollment(db, student, 9999)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestCompleteEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	completed, err := CompleteEnrollment(db, student, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, completed.Status)
	assert.Equal(t, float64(100), completed.Progress)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID), "completed enrollments still count")

	_, err = CompleteEnrollment(db, student, enrollment.ID)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// Cancelling a completed enrollment releases the seat.
	_, err = CancelEnrollment(db, student, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))

	_, err = CompleteEnrollment(db, student, enrollment.ID)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateProgress(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	stranger := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	updated, err := UpdateProgress(db, student, enrollment.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, float64(40), updated.Progress)
	assert.Equal(t, models.EnrollmentActive, updated.Status)

	_, err = UpdateProgress(db, stranger, enrollment.ID, 50)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateProgress(db, student, enrollment.ID, 101)
	assert.ErrorIs(t, err, ErrInvalidProgressRange)
	assert.Equal(t, KindValidation, KindOf(err))

	done, err := UpdateProgress(db, student, enrollment.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))
}

func TestDeleteEnrollmentRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteEnrollment(db, student, enrollment.ID), ErrForbidden)
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))
}

func TestDeleteCancelledEnrollmentLeavesCount(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	admin := createUser(t, db, models.RoleSuperAdmin)
	alice := createUser(t, db, models.RoleStudent)
	bob := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	first, err := Enroll(db, alice, course.ID)
	require.NoError(t, err)
	_, err = Enroll(db, bob, course.ID)
	require.NoError(t, err)
	_, err = CancelEnrollment(db, alice, first.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteEnrollment(db, admin, first.ID))
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))
}

func TestStudentsCountNeverNegative(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, instructor, models.CoursePublished)

	enrollment, err := Enroll(db, student, course.ID)
	require.NoError(t, err)

	// Simulate drift.
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).UpdateColumn("students_count", 0).Error)

	_, err = CancelEnrollment(db, student, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))
}

func TestConcurrentEnrollmentsCountEveryStudent(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor, models.CoursePublished)

	const students = 12
	actors := make([]Actor, students)
	for i := range actors {
		actors[i] = createUser(t, db, models.RoleStudent)
	}

	var wg sync.WaitGroup
	errs := make(chan error, students)
	for _, actor := range actors {
		wg.Add(1)
		go func(a Actor) {
			defer wg.Done()
			_, err := Enroll(db, a, course.ID)
			errs <- err
		}(actor)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(students), studentsCount(t, db, course.ID))
}
