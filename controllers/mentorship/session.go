package mentorshipController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
	"learnhub/validators/common"
	mentorshipValidator "learnhub/validators/mentorship"

	"github.com/gofiber/fiber/v2"
)

// GetSessions lists sessions the caller takes part in; admins see all of them.
func GetSessions(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.MentorshipSession{})
	if !actor.IsAdmin() {
		db = db.Where("mentor_id = ? OR mentee_id = ?", actor.UserID, actor.UserID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var sessions []models.MentorshipSession
	if err := db.Preload("Program").Preload("Mentor").Preload("Mentee").
		Order("scheduled_at asc").Offset(offset).Limit(reqData.Limit).Find(&sessions).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", fiber.Map{
		"sessions": sessions,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetProgramSessions lists all sessions of a program for its mentor or an admin.
func GetProgramSessions(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	programID := c.Locals("programID").(uint)

	sessions, err := services.ProgramSessions(database.Database.Db, actor, programID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program sessions fetched successfully!", sessions)
}

func CreateSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedSession").(*mentorshipValidator.CreateSessionRequest)

	session, err := services.CreateSession(database.Database.Db, actor, services.SessionInput{
		ProgramID:   reqData.ProgramID,
		MenteeID:    reqData.MenteeID,
		Title:       reqData.Title,
		Description: reqData.Description,
		ScheduledAt: reqData.ScheduledAt,
		Duration:    reqData.Duration,
		MeetingLink: reqData.MeetingLink,
		Notes:       reqData.Notes,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("mentorship_session.scheduled", session)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session scheduled successfully!", session)
}

func GetSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	sessionID := c.Locals("sessionID").(uint)

	session, err := services.GetSession(database.Database.Db, actor, sessionID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", session)
}

func UpdateSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	sessionID := c.Locals("sessionID").(uint)
	reqData := c.Locals("validatedSessionUpdate").(*mentorshipValidator.UpdateSessionRequest)

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.ScheduledAt != nil {
		if !reqData.ScheduledAt.After(services.Now()) {
			return middleware.ErrorResponse(c, services.ValidationError("scheduled_at", "scheduled_at must be in the future!"))
		}
		updates["scheduled_at"] = *reqData.ScheduledAt
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.MeetingLink != nil {
		updates["meeting_link"] = *reqData.MeetingLink
	}
	if reqData.Notes != nil {
		updates["notes"] = *reqData.Notes
	}

	session, err := services.UpdateSession(database.Database.Db, actor, sessionID, updates)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}

func CompleteSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	sessionID := c.Locals("sessionID").(uint)

	session, err := services.CompleteSession(database.Database.Db, actor, sessionID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session marked as completed!", session)
}

func CancelSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	sessionID := c.Locals("sessionID").(uint)

	session, err := services.CancelSession(database.Database.Db, actor, sessionID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("mentorship_session.cancelled", session)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session cancelled successfully!", session)
}

func DeleteSession(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	sessionID := c.Locals("sessionID").(uint)

	if err := services.DeleteSession(database.Database.Db, actor, sessionID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully!", nil)
}
