package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentStatus(t *testing.T) {
	tests := []struct {
		from, to EnrollmentStatus
		allowed  bool
	}{
		{EnrollmentActive, EnrollmentCompleted, true},
		{EnrollmentActive, EnrollmentCancelled, true},
		{EnrollmentCompleted, EnrollmentCancelled, true},
		{EnrollmentCompleted, EnrollmentActive, false},
		{EnrollmentCancelled, EnrollmentActive, false},
		{EnrollmentCancelled, EnrollmentCompleted, false},
		{"unknown", EnrollmentActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}

	assert.True(t, EnrollmentActive.CountsTowardStudents())
	assert.True(t, EnrollmentCompleted.CountsTowardStudents())
	assert.False(t, EnrollmentCancelled.CountsTowardStudents())
	assert.False(t, EnrollmentStatus("paused").Valid())
}

func TestRegistrationStatus(t *testing.T) {
	assert.True(t, RegistrationRegistered.HoldsSeat())
	assert.True(t, RegistrationAttended.HoldsSeat())
	assert.False(t, RegistrationCancelled.HoldsSeat())

	assert.True(t, RegistrationCancelled.CanTransition(RegistrationRegistered))
	assert.False(t, RegistrationCancelled.CanTransition(RegistrationCancelled))
	assert.False(t, RegistrationAttended.CanTransition(RegistrationRegistered))

	assert.True(t, RegistrationAttended.Valid())
	assert.False(t, RegistrationStatus("waitlisted").Valid())
}

func TestApplicationStatus(t *testing.T) {
	assert.True(t, ApplicationApplied.CanTransition(ApplicationAccepted))
	assert.True(t, ApplicationAccepted.CanTransition(ApplicationRejected))
	assert.True(t, ApplicationRejected.CanTransition(ApplicationAccepted))
	assert.False(t, ApplicationAccepted.CanTransition(ApplicationApplied))
	assert.False(t, ApplicationStatus("pending").Valid())
}

func TestSessionStatus(t *testing.T) {
	assert.True(t, SessionScheduled.CanTransition(SessionCompleted))
	assert.True(t, SessionScheduled.CanTransition(SessionCancelled))
	assert.False(t, SessionCompleted.CanTransition(SessionCancelled))
	assert.False(t, SessionCancelled.CanTransition(SessionScheduled))
}

func TestResourceStatuses(t *testing.T) {
	assert.True(t, CoursePublished.Valid())
	assert.False(t, CourseStatus("archived").Valid())
	assert.True(t, EventOngoing.Valid())
	assert.False(t, EventStatus("postponed").Valid())
	assert.True(t, ProgramClosed.Valid())
	assert.False(t, ProgramStatus("paused").Valid())
}

func TestUserRoles(t *testing.T) {
	assert.True(t, (&User{Role: RoleSuperAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleInstructor}).IsInstructorOrAdmin())
	assert.False(t, (&User{Role: RoleStudent}).IsInstructorOrAdmin())
}
