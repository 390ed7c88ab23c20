package services

import (
	"errors"
	"fmt"
)

// Kind classifies an expected, caller-recoverable failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindConflict
	KindCapacityExceeded
	KindInvalidState
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindInvalidState:
		return "invalid_state"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is a lifecycle failure that the HTTP layer maps to a status code.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // per-field messages for KindValidation
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches sentinel errors by kind and message so wrapped copies compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ValidationError builds a KindValidation error for a single field.
func ValidationError(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed!",
		Fields:  map[string]string{field: message},
	}
}

var (
	ErrUserNotFound        = newError(KindNotFound, "User not found!")
	ErrInstructorNotFound  = newError(KindNotFound, "Instructor not found!")
	ErrCourseNotFound      = newError(KindNotFound, "Course not found!")
	ErrEnrollmentNotFound  = newError(KindNotFound, "Enrollment not found!")
	ErrEventNotFound       = newError(KindNotFound, "Event not found!")
	ErrRegistrationMissing = newError(KindNotFound, "Event registration not found!")
	ErrNotRegistered       = newError(KindNotFound, "You are not registered for this event!")
	ErrProgramNotFound     = newError(KindNotFound, "Mentorship program not found!")
	ErrApplicationNotFound = newError(KindNotFound, "Mentorship application not found!")
	ErrSessionNotFound     = newError(KindNotFound, "Mentorship session not found!")

	ErrForbidden = newError(KindForbidden, "You are not authorized to perform this action!")

	ErrAlreadyEnrolled       = newError(KindConflict, "You are already enrolled in this course!")
	ErrAlreadyCompleted      = newError(KindConflict, "Enrollment is already marked as completed!")
	ErrEnrollmentCancelled   = newError(KindConflict, "Enrollment is already cancelled!")
	ErrRegistrationCancelled = newError(KindConflict, "Your registration is already cancelled!")
	ErrAlreadyRegistered     = newError(KindConflict, "You are already registered for this event!")
	ErrAlreadyApplied        = newError(KindConflict, "You have already applied for this mentorship program!")
	ErrEmailTaken            = newError(KindConflict, "Email is already registered!")

	ErrEventFull   = newError(KindCapacityExceeded, "This event has reached its capacity!")
	ErrProgramFull = newError(KindCapacityExceeded, "This mentorship program has reached its capacity!")

	ErrCourseNotPublished   = newError(KindInvalidState, "This course is not available for enrollment!")
	ErrRegistrationClosed   = newError(KindInvalidState, "This event is no longer open for registration!")
	ErrProgramNotOpen       = newError(KindInvalidState, "This mentorship program is not accepting applications!")
	ErrIllegalTransition    = newError(KindInvalidState, "This status change is not allowed!")
	ErrMenteeNotAccepted    = newError(KindInvalidState, "Mentee does not have an accepted application for this program!")
	ErrSessionNotScheduled  = newError(KindInvalidState, "Only scheduled sessions can be changed!")
	ErrInvalidProgressRange = ValidationError("progress", "Progress must be between 0 and 100!")
)

// KindOf returns the Kind of err, or 0 when err is not a lifecycle Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// storageError wraps an unexpected database failure with the failing step.
func storageError(step string, err error) error {
	return fmt.Errorf("%s: %w", step, err)
}
