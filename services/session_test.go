package services

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mentorshipFixture struct {
	db      *gorm.DB
	mentor  Actor
	mentee  Actor
	program *models.MentorshipProgram
}

func newMentorshipFixture(t *testing.T) mentorshipFixture {
	t.Helper()

	db := newTestDB(t)
	mentor := createUser(t, db, models.RoleInstructor)
	mentee := createUser(t, db, models.RoleStudent)
	program := createProgram(t, db, mentor, nil)

	application, err := Apply(db, mentee, program.ID, motivation)
	require.NoError(t, err)
	_, err = UpdateApplicationStatus(db, mentor, application.ID, models.ApplicationAccepted)
	require.NoError(t, err)

	return mentorshipFixture{db: db, mentor: mentor, mentee: mentee, program: program}
}

func (f mentorshipFixture) input() SessionInput {
	return SessionInput{
		ProgramID:   f.program.ID,
		MenteeID:    f.mentee.UserID,
		Title:       "Kickoff",
		ScheduledAt: Now().Add(24 * time.Hour),
		Duration:    45,
	}
}

func TestCreateSession(t *testing.T) {
	f := newMentorshipFixture(t)

	session, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)
	assert.Equal(t, models.SessionScheduled, session.Status)
	assert.Equal(t, f.mentor.UserID, session.MentorID)
	assert.Len(t, session.MeetingCode, 36)

	second, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)
	assert.NotEqual(t, session.MeetingCode, second.MeetingCode)
}

func TestCreateSessionGuards(t *testing.T) {
	f := newMentorshipFixture(t)
	outsider := createUser(t, f.db, models.RoleStudent)

	_, err := CreateSession(f.db, f.mentee, f.input())
	assert.ErrorIs(t, err, ErrForbidden)

	in := f.input()
	in.MenteeID = outsider.UserID
	_, err = CreateSession(f.db, f.mentor, in)
	assert.ErrorIs(t, err, ErrMenteeNotAccepted)

	in = f.input()
	in.ProgramID = 9999
	_, err = CreateSession(f.db, f.mentor, in)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestSessionVisibility(t *testing.T) {
	f := newMentorshipFixture(t)
	outsider := createUser(t, f.db, models.RoleStudent)
	admin := createUser(t, f.db, models.RoleAdmin)

	session, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)

	for _, actor := range []Actor{f.mentor, f.mentee, admin} {
		got, err := GetSession(f.db, actor, session.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Mentee)
		assert.Equal(t, f.mentee.UserID, got.Mentee.ID)
	}

	_, err = GetSession(f.db, outsider, session.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = GetSession(f.db, admin, 9999)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProgramSessions(t *testing.T) {
	f := newMentorshipFixture(t)
	admin := createUser(t, f.db, models.RoleAdmin)
	otherMentor := createUser(t, f.db, models.RoleInstructor)
	otherProgram := createProgram(t, f.db, otherMentor, nil)

	later := f.input()
	later.ScheduledAt = Now().Add(72 * time.Hour)
	_, err := CreateSession(f.db, f.mentor, later)
	require.NoError(t, err)
	_, err = CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)

	sessions, err := ProgramSessions(f.db, f.mentor, f.program.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].ScheduledAt.Before(sessions[1].ScheduledAt))
	require.NotNil(t, sessions[0].Mentee)
	assert.Equal(t, f.mentee.UserID, sessions[0].Mentee.ID)

	sessions, err = ProgramSessions(f.db, admin, f.program.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	sessions, err = ProgramSessions(f.db, otherMentor, otherProgram.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	_, err = ProgramSessions(f.db, f.mentee, f.program.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = ProgramSessions(f.db, otherMentor, f.program.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ProgramSessions(f.db, admin, 9999)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestUpdateSession(t *testing.T) {
	f := newMentorshipFixture(t)

	session, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)

	_, err = UpdateSession(f.db, f.mentee, session.ID, map[string]interface{}{"title": "Renamed"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := UpdateSession(f.db, f.mentor, session.ID, map[string]interface{}{
		"title":    "Architecture review",
		"duration": 60,
		"status":   "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Architecture review", updated.Title)
	assert.Equal(t, 60, updated.Duration)
	assert.Equal(t, models.SessionScheduled, updated.Status, "status only moves through complete and cancel")
}

func TestSessionTransitions(t *testing.T) {
	f := newMentorshipFixture(t)

	session, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)

	_, err = CompleteSession(f.db, f.mentee, session.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	done, err := CompleteSession(f.db, f.mentor, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, done.Status)

	_, err = CancelSession(f.db, f.mentee, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotScheduled)

	_, err = UpdateSession(f.db, f.mentor, session.ID, map[string]interface{}{"title": "Late edit"})
	assert.ErrorIs(t, err, ErrSessionNotScheduled)

	other, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)
	cancelled, err := CancelSession(f.db, f.mentee, other.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, cancelled.Status)
}

func TestDeleteSession(t *testing.T) {
	f := newMentorshipFixture(t)

	session, err := CreateSession(f.db, f.mentor, f.input())
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteSession(f.db, f.mentee, session.ID), ErrForbidden)
	require.NoError(t, DeleteSession(f.db, f.mentor, session.ID))

	_, err = GetSession(f.db, f.mentor, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
