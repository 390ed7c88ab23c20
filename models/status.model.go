package models

// EnrollmentStatus is the lifecycle state of an Enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

var enrollmentTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	EnrollmentActive:    {EnrollmentCompleted, EnrollmentCancelled},
	EnrollmentCompleted: {EnrollmentCancelled},
	EnrollmentCancelled: {},
}

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	_, ok := enrollmentTransitions[s]
	return ok
}

// CanTransition reports whether an enrollment may move from s to next.
func (s EnrollmentStatus) CanTransition(next EnrollmentStatus) bool {
	for _, allowed := range enrollmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CountsTowardStudents reports whether an enrollment in this status is part of Course.StudentsCount.
func (s EnrollmentStatus) CountsTowardStudents() bool {
	return s == EnrollmentActive || s == EnrollmentCompleted
}

// RegistrationStatus is the lifecycle state of an EventRegistration.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationAttended   RegistrationStatus = "attended"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

// Transitions reachable through Register, Cancel and MarkAttended.
// The admin status override accepts any valid value.
var registrationTransitions = map[RegistrationStatus][]RegistrationStatus{
	RegistrationRegistered: {RegistrationAttended, RegistrationCancelled},
	RegistrationAttended:   {RegistrationCancelled},
	RegistrationCancelled:  {RegistrationRegistered},
}

func (s RegistrationStatus) Valid() bool {
	_, ok := registrationTransitions[s]
	return ok
}

func (s RegistrationStatus) CanTransition(next RegistrationStatus) bool {
	for _, allowed := range registrationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsSeat reports whether a registration in this status occupies event capacity.
func (s RegistrationStatus) HoldsSeat() bool {
	return s != RegistrationCancelled
}

// ApplicationStatus is the lifecycle state of a MentorshipApplication.
type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:  {ApplicationAccepted, ApplicationRejected},
	ApplicationAccepted: {ApplicationRejected},
	ApplicationRejected: {ApplicationAccepted},
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionStatus is the lifecycle state of a MentorshipSession.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionScheduled: {SessionCompleted, SessionCancelled},
	SessionCompleted: {},
	SessionCancelled: {},
}

func (s SessionStatus) Valid() bool {
	_, ok := sessionTransitions[s]
	return ok
}

func (s SessionStatus) CanTransition(next SessionStatus) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CourseStatus, EventStatus and ProgramStatus have no ledger coupling; only the values are closed.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
)

func (s CourseStatus) Valid() bool {
	return s == CourseDraft || s == CoursePublished
}

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

type ProgramStatus string

const (
	ProgramOpen      ProgramStatus = "open"
	ProgramClosed    ProgramStatus = "closed"
	ProgramCompleted ProgramStatus = "completed"
)

func (s ProgramStatus) Valid() bool {
	return s == ProgramOpen || s == ProgramClosed || s == ProgramCompleted
}
