package courseController

import (
	"errors"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
	"learnhub/validators/common"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the caller in the :id course.
func EnrollInCourse(c *fiber.Ctx) error {
	return enroll(c, c.Locals("courseID").(uint))
}

// StudentEnroll is the student-only variant that takes the course from the body.
func StudentEnroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStudentEnroll").(*courseValidator.StudentEnrollRequest)
	return enroll(c, reqData.CourseID)
}

func enroll(c *fiber.Ctx, courseID uint) error {
	actor := middleware.CurrentActor(c)

	enrollment, err := services.Enroll(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("enrollment.created", enrollment)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled in the course!", enrollment)
}

// GetEnrollments lists the caller's enrollments. Admins see everyone's and may filter by user_id.
func GetEnrollments(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedEnrollmentList").(*courseValidator.EnrollmentListQuery)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.Enrollment{})

	if !actor.IsAdmin() {
		db = db.Where("user_id = ?", actor.UserID)
	} else if reqData.UserID != 0 {
		db = db.Where("user_id = ?", reqData.UserID)
	}
	if reqData.CourseID != 0 {
		db = db.Where("course_id = ?", reqData.CourseID)
	}
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var enrollments []models.Enrollment
	if err := db.Preload("Course.Instructor").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetEnrollment shows one enrollment to its owner, the course instructor or an admin.
func GetEnrollment(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	var enrollment models.Enrollment
	if err := database.Database.Db.Preload("Course.Instructor").Preload("User").First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, services.ErrEnrollmentNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}

	isInstructor := enrollment.Course != nil && enrollment.Course.InstructorID == actor.UserID
	if enrollment.UserID != actor.UserID && !isInstructor && !actor.IsAdmin() {
		return middleware.ErrorResponse(c, services.ErrForbidden)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

func UpdateProgress(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)

	enrollment, err := services.UpdateProgress(database.Database.Db, actor, enrollmentID, *reqData.Progress)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

func CompleteEnrollment(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := services.CompleteEnrollment(database.Database.Db, actor, enrollmentID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("enrollment.completed", enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", enrollment)
}

func CancelEnrollment(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := services.CancelEnrollment(database.Database.Db, actor, enrollmentID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Notifications.Notify("enrollment.cancelled", enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	enrollmentID := c.Locals("enrollmentID").(uint)

	if err := services.DeleteEnrollment(database.Database.Db, actor, enrollmentID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
}

func CheckEnrollmentStatus(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedEnrollmentCheck").(*courseValidator.CheckEnrollmentRequest)

	enrollment, err := services.EnrollmentStatusFor(database.Database.Db, actor, reqData.CourseID, reqData.UserID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if enrollment == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User is not enrolled in this course", fiber.Map{
			"is_enrolled": false,
			"enrollment":  nil,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User is enrolled in this course", fiber.Map{
		"is_enrolled": true,
		"enrollment":  enrollment,
	})
}
