package courseValidator

import (
	"learnhub/validators/common"

	"github.com/gofiber/fiber/v2"
)

// ============ Enrollment Validators ============

type StudentEnrollRequest struct {
	CourseID uint `json:"course_id" validate:"required,gt=0"`
}

type ProgressRequest struct {
	Progress *float64 `json:"progress" validate:"required,gte=0,lte=100"`
}

type EnrollmentListQuery struct {
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	UserID   uint   `query:"user_id"` // admins only
	CourseID uint   `query:"course_id"`
	Status   string `query:"status" validate:"omitempty,oneof=active completed cancelled"`
}

type CheckEnrollmentRequest struct {
	CourseID uint `json:"course_id" validate:"required,gt=0"`
	UserID   uint `json:"user_id"`
}

func EnrollmentID() fiber.Handler {
	return common.ParamID("id", "enrollmentID")
}

func StudentEnroll() fiber.Handler {
	return common.Body[StudentEnrollRequest]("validatedStudentEnroll")
}

func UpdateProgress() fiber.Handler {
	return common.Body[ProgressRequest]("validatedProgress")
}

func EnrollmentList() fiber.Handler {
	return common.Query[EnrollmentListQuery]("validatedEnrollmentList")
}

func CheckEnrollment() fiber.Handler {
	return common.Body[CheckEnrollmentRequest]("validatedEnrollmentCheck")
}
