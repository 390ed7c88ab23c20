package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileStudentsCount(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	drifted := createCourse(t, db, instructor, models.CoursePublished)
	healthy := createCourse(t, db, instructor, models.CoursePublished)

	for i := 0; i < 3; i++ {
		_, err := Enroll(db, createUser(t, db, models.RoleStudent), drifted.ID)
		require.NoError(t, err)
	}
	cancelled, err := Enroll(db, createUser(t, db, models.RoleStudent), drifted.ID)
	require.NoError(t, err)
	_, err = CancelEnrollment(db, Actor{UserID: cancelled.UserID, Role: models.RoleStudent}, cancelled.ID)
	require.NoError(t, err)

	_, err = Enroll(db, createUser(t, db, models.RoleStudent), healthy.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", drifted.ID).UpdateColumn("students_count", 42).Error)

	report, err := ReconcileStudentsCount(db, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	require.Len(t, report.Fixed, 1)
	assert.Equal(t, CountFix{CourseID: drifted.ID, Title: drifted.Title, Previous: 42, Actual: 3}, report.Fixed[0])
	assert.Equal(t, int64(3), studentsCount(t, db, drifted.ID))
	assert.Equal(t, int64(1), studentsCount(t, db, healthy.ID))

	again, err := ReconcileStudentsCount(db, nil)
	require.NoError(t, err)
	assert.Empty(t, again.Fixed)
}

func TestReconcileSingleCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor, models.CoursePublished)
	other := createCourse(t, db, instructor, models.CoursePublished)

	require.NoError(t, db.Model(&models.Course{}).Where("id IN ?", []uint{course.ID, other.ID}).UpdateColumn("students_count", 5).Error)

	id := course.ID
	report, err := ReconcileStudentsCount(db, &id)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	require.Len(t, report.Fixed, 1)
	assert.Equal(t, int64(0), studentsCount(t, db, course.ID))
	assert.Equal(t, int64(5), studentsCount(t, db, other.ID))

	missing := uint(9999)
	_, err = ReconcileStudentsCount(db, &missing)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestReconcileIncludesSoftDeletedCourses(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor, models.CoursePublished)

	_, err := Enroll(db, createUser(t, db, models.RoleStudent), course.ID)
	require.NoError(t, err)
	require.NoError(t, db.Delete(course).Error)
	require.NoError(t, db.Unscoped().Model(&models.Course{}).Where("id = ?", course.ID).UpdateColumn("students_count", 0).Error)

	report, err := ReconcileStudentsCount(db, nil)
	require.NoError(t, err)
	assert.Len(t, report.Fixed, 1)
	assert.Equal(t, int64(1), studentsCount(t, db, course.ID))
}
