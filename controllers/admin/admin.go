package adminController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/services"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ReconcileStudentsCount repairs students_count for one course (?course_id=) or all of them.
func ReconcileStudentsCount(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReconcile").(*courseValidator.ReconcileQuery)

	var courseID *uint
	if reqData.CourseID != 0 {
		courseID = &reqData.CourseID
	}

	report, err := services.ReconcileStudentsCount(database.Database.Db, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if len(report.Fixed) > 0 {
		utils.Notifications.Notify("courses.students_count_repaired", report)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student counts reconciled!", report)
}

func GetDashboardStats(c *fiber.Ctx) error {
	stats, err := services.Dashboard(database.Database.Db, services.Now())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
