package mentorshipValidator

import (
	"time"

	"learnhub/middleware"
	"learnhub/validators/common"

	"github.com/gofiber/fiber/v2"
)

// ============ Program Validators ============

type CreateProgramRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"max=100"`
	Duration    string `json:"duration" validate:"max=50"`
	Capacity    *int   `json:"capacity" validate:"omitempty,gte=1"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed completed"`
	MentorID    uint   `json:"mentor_id" validate:"required,gt=0"`
}

type UpdateProgramRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Duration    *string `json:"duration" validate:"omitempty,max=50"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=open closed completed"`
	MentorID    *uint   `json:"mentor_id" validate:"omitempty,gt=0"`
}

func ProgramID() fiber.Handler {
	return common.ParamID("id", "programID")
}

func CreateProgram() fiber.Handler {
	return common.Body[CreateProgramRequest]("validatedProgram")
}

func UpdateProgram() fiber.Handler {
	return common.Body[UpdateProgramRequest]("validatedProgramUpdate")
}

func List() fiber.Handler {
	return common.Query[common.Pagination]("validatedPagination")
}

// ============ Application Validators ============

type ApplyRequest struct {
	Motivation string `json:"motivation" validate:"required,min=50"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type CheckApplicationRequest struct {
	ProgramID uint `json:"program_id" validate:"required,gt=0"`
	UserID    uint `json:"user_id"`
}

func ApplicationID() fiber.Handler {
	return common.ParamID("id", "applicationID")
}

func Apply() fiber.Handler {
	return common.Body[ApplyRequest]("validatedApplication")
}

func ApplicationStatus() fiber.Handler {
	return common.Body[ApplicationStatusRequest]("validatedApplicationStatus")
}

func CheckApplication() fiber.Handler {
	return common.Body[CheckApplicationRequest]("validatedApplicationCheck")
}

// ============ Session Validators ============

type CreateSessionRequest struct {
	ProgramID   uint      `json:"program_id" validate:"required,gt=0"`
	MenteeID    uint      `json:"mentee_id" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Duration    int       `json:"duration" validate:"required,min=15,max=180"`
	MeetingLink string    `json:"meeting_link" validate:"omitempty,url,max=255"`
	Notes       string    `json:"notes"`
}

type UpdateSessionRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Duration    *int       `json:"duration" validate:"omitempty,min=15,max=180"`
	MeetingLink *string    `json:"meeting_link" validate:"omitempty,url,max=255"`
	Notes       *string    `json:"notes"`
}

func SessionID() fiber.Handler {
	return common.ParamID("id", "sessionID")
}

// CreateSession requires scheduled_at to lie in the future.
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := common.ValidateStruct(reqData)
		if _, ok := errors["scheduled_at"]; !ok && !reqData.ScheduledAt.After(time.Now()) {
			errors["scheduled_at"] = "scheduled_at must be in the future!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

func UpdateSession() fiber.Handler {
	return common.Body[UpdateSessionRequest]("validatedSessionUpdate")
}
