package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const motivation = "I want to grow as a backend engineer and learn how production Go services are built."

func TestApply(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, nil)

	application, err := Apply(db, student, program.ID, motivation)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApplied, application.Status)

	_, err = Apply(db, student, program.ID, motivation)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	_, err = Apply(db, student, 9999, motivation)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestApplyToClosedProgram(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, nil)
	require.NoError(t, db.Model(program).Update("status", models.ProgramClosed).Error)

	_, err := Apply(db, student, program.ID, motivation)
	assert.ErrorIs(t, err, ErrProgramNotOpen)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestApplyToFullProgram(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	alice := createUser(t, db, models.RoleStudent)
	bob := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, intPtr(1))

	application, err := Apply(db, alice, program.ID, motivation)
	require.NoError(t, err)
	_, err = UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationAccepted)
	require.NoError(t, err)

	_, err = Apply(db, bob, program.ID, motivation)
	assert.ErrorIs(t, err, ErrProgramFull)
}

func TestAcceptanceRechecksCapacity(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	program := createProgram(t, db, mentor, intPtr(2))

	applications := make([]*models.MentorshipApplication, 3)
	for i := range applications {
		application, err := Apply(db, createUser(t, db, models.RoleStudent), program.ID, motivation)
		require.NoError(t, err)
		applications[i] = application
	}

	for _, application := range applications[:2] {
		_, err := UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationAccepted)
		require.NoError(t, err)
	}

	_, err := UpdateApplicationStatus(db, mentor, applications[2].ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrProgramFull)
	assert.Equal(t, KindCapacityExceeded, KindOf(err))

	rejected, err := UpdateApplicationStatus(db, mentor, applications[0].ID, models.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, rejected.Status)

	accepted, err := UpdateApplicationStatus(db, mentor, applications[2].ID, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, accepted.Status)
	require.NotNil(t, accepted.Program)
	assert.Equal(t, program.ID, accepted.Program.ID)

	count, err := AcceptedCount(db, program.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A rejected applicant cannot be re-accepted while the program is full.
	_, err = UpdateApplicationStatus(db, mentor, applications[0].ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrProgramFull)
}

func TestUpdateApplicationStatusAuthorization(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	otherMentor := createUser(t, db, models.RoleInstructor)
	admin := createUser(t, db, models.RoleAdmin)
	student := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, nil)

	application, err := Apply(db, student, program.ID, motivation)
	require.NoError(t, err)

	_, err = UpdateApplicationStatus(db, student, application.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = UpdateApplicationStatus(db, otherMentor, application.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateApplicationStatus(db, admin, application.ID, models.ApplicationRejected)
	require.NoError(t, err)
}

func TestUpdateApplicationStatusEdges(t *testing.T) {
	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	student := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, intPtr(1))

	application, err := Apply(db, student, program.ID, motivation)
	require.NoError(t, err)

	_, err = UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationApplied)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationAccepted)
	require.NoError(t, err)

	// Accepting again is a no-op even though the program is now full.
	again, err := UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, again.Status)

	_, err = UpdateApplicationStatus(db, mentor, 9999, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
