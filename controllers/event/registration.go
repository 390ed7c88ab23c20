package eventController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
	"learnhub/validators/common"
	eventValidator "learnhub/validators/event"

	"github.com/gofiber/fiber/v2"
)

// RegisterForEvent answers 201 for a new registration and 200 when a cancelled one is reactivated.
func RegisterForEvent(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	eventID := c.Locals("eventID").(uint)

	registration, reactivated, err := services.Register(database.Database.Db, actor, eventID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("event_registration.created", registration)

	if reactivated {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Your registration has been reactivated!", registration)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully registered for the event!", registration)
}

func CancelRegistration(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	eventID := c.Locals("eventID").(uint)

	registration, err := services.CancelRegistration(database.Database.Db, actor, eventID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("event_registration.cancelled", registration)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your registration has been cancelled!", registration)
}

// GetEventRegistrations lists an event's registrations (admin only).
func GetEventRegistrations(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	event, err := loadEvent(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	db := database.Database.Db.Model(&models.EventRegistration{}).Where("event_id = ?", event.ID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var registrations []models.EventRegistration
	if err := db.Preload("User").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&registrations).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"event":         event,
		"registrations": registrations,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func UpdateRegistrationStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	registrationID := c.Locals("registrationID").(uint)
	reqData := c.Locals("validatedRegistrationStatus").(*eventValidator.RegistrationStatusRequest)

	registration, err := services.UpdateRegistrationStatus(database.Database.Db, actor, registrationID, models.RegistrationStatus(reqData.Status))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration status updated successfully!", registration)
}

func MarkAttended(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	registrationID := c.Locals("registrationID").(uint)

	registration, err := services.MarkAttended(database.Database.Db, actor, registrationID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance recorded!", registration)
}

func CheckRegistrationStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedRegistrationCheck").(*eventValidator.CheckRegistrationRequest)

	registration, err := services.RegistrationStatusFor(database.Database.Db, actor, reqData.EventID, reqData.UserID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if registration == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User is not registered for this event", fiber.Map{
			"is_registered": false,
			"registration":  nil,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration status fetched", fiber.Map{
		"is_registered": registration.Status.HoldsSeat(),
		"registration":  registration,
	})
}
