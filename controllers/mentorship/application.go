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

func ApplyToProgram(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	programID := c.Locals("programID").(uint)
	reqData := c.Locals("validatedApplication").(*mentorshipValidator.ApplyRequest)

	application, err := services.Apply(database.Database.Db, actor, programID, reqData.Motivation)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("mentorship_application.created", application)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetProgramApplications lists a program's applications for its mentor or an admin.
func GetProgramApplications(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	program, err := loadProgram(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if program.MentorID != actor.UserID && !actor.IsAdmin() {
		return middleware.ErrorResponse(c, services.ErrForbidden)
	}

	db := database.Database.Db.Model(&models.MentorshipApplication{}).Where("program_id = ?", program.ID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var applications []models.MentorshipApplication
	if err := db.Preload("User").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&applications).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"program":      program,
		"applications": applications,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func GetMyApplications(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.MentorshipApplication{}).Where("user_id = ?", actor.UserID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var applications []models.MentorshipApplication
	if err := db.Preload("Program.Mentor").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&applications).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"applications": applications,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func UpdateApplicationStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedApplicationStatus").(*mentorshipValidator.ApplicationStatusRequest)
	return decide(c, models.ApplicationStatus(reqData.Status))
}

func AcceptApplication(c *fiber.Ctx) error {
	return decide(c, models.ApplicationAccepted)
}

func RejectApplication(c *fiber.Ctx) error {
	return decide(c, models.ApplicationRejected)
}

func decide(c *fiber.Ctx, status models.ApplicationStatus) error {
	actor := middleware.CurrentActor(c)
	applicationID := c.Locals("applicationID").(uint)

	application, err := services.UpdateApplicationStatus(database.Database.Db, actor, applicationID, status)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("mentorship_application."+string(application.Status), application)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application "+string(application.Status)+" successfully!", application)
}

func CheckApplicationStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedApplicationCheck").(*mentorshipValidator.CheckApplicationRequest)

	application, err := services.ApplicationStatusFor(database.Database.Db, actor, reqData.ProgramID, reqData.UserID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if application == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User has not applied to this program", fiber.Map{
			"has_applied": false,
			"application": nil,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application status fetched", fiber.Map{
		"has_applied": true,
		"application": application,
	})
}
