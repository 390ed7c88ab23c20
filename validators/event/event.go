package eventValidator

import (
	"time"

	"learnhub/middleware"
	"learnhub/validators/common"

	"github.com/gofiber/fiber/v2"
)

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"max=255"`
	Type        string    `json:"type" validate:"max=50"`
	Thumbnail   string    `json:"thumbnail" validate:"omitempty,url"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Capacity    *int      `json:"capacity" validate:"omitempty,gte=1"`
	Status      string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Type        *string    `json:"type" validate:"omitempty,max=50"`
	Thumbnail   *string    `json:"thumbnail" validate:"omitempty,url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Capacity    *int       `json:"capacity" validate:"omitempty,gte=1"`
	Status      *string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type RegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=registered attended cancelled"`
}

type CheckRegistrationRequest struct {
	EventID uint `json:"event_id" validate:"required,gt=0"`
	UserID  uint `json:"user_id"`
}

func EventID() fiber.Handler {
	return common.ParamID("id", "eventID")
}

func RegistrationID() fiber.Handler {
	return common.ParamID("id", "registrationID")
}

func CreateEvent() fiber.Handler {
	return common.Body[CreateEventRequest]("validatedEvent")
}

// UpdateEvent also rejects an end date before the start date when both are sent.
func UpdateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEventRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := common.ValidateStruct(reqData)
		if reqData.StartDate != nil && reqData.EndDate != nil && !reqData.EndDate.After(*reqData.StartDate) {
			errors["end_date"] = "end_date must be after start_date!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEventUpdate", reqData)
		return c.Next()
	}
}

func RegistrationStatus() fiber.Handler {
	return common.Body[RegistrationStatusRequest]("validatedRegistrationStatus")
}

func CheckRegistration() fiber.Handler {
	return common.Body[CheckRegistrationRequest]("validatedRegistrationCheck")
}

func List() fiber.Handler {
	return common.Query[common.Pagination]("validatedPagination")
}
