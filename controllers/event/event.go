package eventController

import (
	"errors"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/validators/common"
	eventValidator "learnhub/validators/event"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUpcomingEvents lists upcoming events that have not started yet, soonest first.
func GetUpcomingEvents(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.Event{}).
		Where("status = ? AND start_date > ?", models.EventUpcoming, services.Now())

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var events []models.Event
	if err := db.Order("start_date asc").Offset(offset).Limit(reqData.Limit).Find(&events).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upcoming events fetched successfully!", fiber.Map{
		"events": events,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetEvent shows an event with its live seat count.
func GetEvent(c *fiber.Ctx) error {
	event, err := loadEvent(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	taken, err := services.SeatsTaken(database.Database.Db, event.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var available interface{}
	if event.Capacity != nil {
		available = max(int64(*event.Capacity)-taken, 0)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event fetched successfully!", fiber.Map{
		"event":           event,
		"registered":      taken,
		"available_seats": available,
	})
}

func CreateEvent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEvent").(*eventValidator.CreateEventRequest)

	event := models.Event{
		Title:       reqData.Title,
		Description: reqData.Description,
		Location:    reqData.Location,
		Type:        reqData.Type,
		Thumbnail:   reqData.Thumbnail,
		StartDate:   reqData.StartDate,
		EndDate:     reqData.EndDate,
		Capacity:    reqData.Capacity,
		Status:      models.EventUpcoming,
	}
	if reqData.Status != "" {
		event.Status = models.EventStatus(reqData.Status)
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// UpdateEvent edits an event. Lowering capacity never evicts registrations already held.
func UpdateEvent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEventUpdate").(*eventValidator.UpdateEventRequest)

	event, err := loadEvent(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Location != nil {
		updates["location"] = *reqData.Location
	}
	if reqData.Type != nil {
		updates["type"] = *reqData.Type
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail"] = *reqData.Thumbnail
	}
	if reqData.StartDate != nil {
		updates["start_date"] = *reqData.StartDate
	}
	if reqData.EndDate != nil {
		updates["end_date"] = *reqData.EndDate
	}
	if reqData.Capacity != nil {
		updates["capacity"] = *reqData.Capacity
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	start, end := event.StartDate, event.EndDate
	if reqData.StartDate != nil {
		start = *reqData.StartDate
	}
	if reqData.EndDate != nil {
		end = *reqData.EndDate
	}
	if !end.After(start) {
		return middleware.ErrorResponse(c, services.ValidationError("end_date", "end_date must be after start_date!"))
	}

	db := database.Database.Db
	if len(updates) > 0 {
		if err := db.Model(event).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}
	if err := db.First(event, event.ID).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

func DeleteEvent(c *fiber.Ctx) error {
	event, err := loadEvent(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := database.Database.Db.Delete(event).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully!", nil)
}

func loadEvent(c *fiber.Ctx) (*models.Event, error) {
	eventID := c.Locals("eventID").(uint)

	var event models.Event
	if err := database.Database.Db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}
