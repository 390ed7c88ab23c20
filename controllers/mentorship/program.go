package mentorshipController

import (
	"errors"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/validators/common"
	mentorshipValidator "learnhub/validators/mentorship"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOpenPrograms(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.MentorshipProgram{}).Where("status = ?", models.ProgramOpen)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var programs []models.MentorshipProgram
	if err := db.Preload("Mentor").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&programs).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship programs fetched successfully!", fiber.Map{
		"programs": programs,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetProgram shows a program with the number of accepted mentees.
func GetProgram(c *fiber.Ctx) error {
	program, err := loadProgram(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	accepted, err := services.AcceptedCount(database.Database.Db, program.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship program fetched successfully!", fiber.Map{
		"program":  program,
		"accepted": accepted,
	})
}

func CreateProgram(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProgram").(*mentorshipValidator.CreateProgramRequest)

	db := database.Database.Db

	var mentor models.User
	if err := db.First(&mentor, reqData.MentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, services.ErrUserNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}

	program := models.MentorshipProgram{
		MentorID:    mentor.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Duration:    reqData.Duration,
		Capacity:    reqData.Capacity,
		Status:      models.ProgramOpen,
	}
	if reqData.Status != "" {
		program.Status = models.ProgramStatus(reqData.Status)
	}

	if err := db.Create(&program).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	program.Mentor = &mentor

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentorship program created successfully!", program)
}

// UpdateProgram is open to the program mentor or an admin; only admins can reassign the mentor.
func UpdateProgram(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedProgramUpdate").(*mentorshipValidator.UpdateProgramRequest)

	program, err := loadProgram(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if program.MentorID != actor.UserID && !actor.IsAdmin() {
		return middleware.ErrorResponse(c, services.ErrForbidden)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.Capacity != nil {
		updates["capacity"] = *reqData.Capacity
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}
	if reqData.MentorID != nil {
		if !actor.IsAdmin() {
			return middleware.ErrorResponse(c, services.ErrForbidden)
		}
		updates["mentor_id"] = *reqData.MentorID
	}

	db := database.Database.Db
	if len(updates) > 0 {
		if err := db.Model(program).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}
	if err := db.Preload("Mentor").First(program, program.ID).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship program updated successfully!", program)
}

func DeleteProgram(c *fiber.Ctx) error {
	program, err := loadProgram(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := database.Database.Db.Delete(program).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship program deleted successfully!", nil)
}

func loadProgram(c *fiber.Ctx) (*models.MentorshipProgram, error) {
	programID := c.Locals("programID").(uint)

	var program models.MentorshipProgram
	if err := database.Database.Db.Preload("Mentor").First(&program, programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}
