package courseValidator

import (
	"learnhub/validators/common"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

type CreateCourseRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description" validate:"required,min=5"`
	Category     string   `json:"category" validate:"max=100"`
	Level        string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price        float64  `json:"price" validate:"gte=0"`
	Duration     int      `json:"duration" validate:"gte=0"`
	Thumbnail    string   `json:"thumbnail" validate:"omitempty,url"`
	Requirements []string `json:"requirements" validate:"dive,required"`
	Outcomes     []string `json:"what_you_will_learn" validate:"dive,required"`
	InstructorID uint     `json:"instructor_id"` // honoured for admins only
}

type UpdateCourseRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string  `json:"description" validate:"omitempty,min=5"`
	Category     *string  `json:"category" validate:"omitempty,max=100"`
	Level        *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration     *int     `json:"duration" validate:"omitempty,gte=0"`
	Thumbnail    *string  `json:"thumbnail" validate:"omitempty,url"`
	Requirements []string `json:"requirements" validate:"omitempty,dive,required"`
	Outcomes     []string `json:"what_you_will_learn" validate:"omitempty,dive,required"`
}

type CourseListQuery struct {
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Category string `query:"category"`
	Level    string `query:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Search   string `query:"search" validate:"max=100"`
	Sort     string `query:"sort" validate:"omitempty,oneof=latest popular"`
}

func CourseID() fiber.Handler {
	return common.ParamID("id", "courseID")
}

func InstructorID() fiber.Handler {
	return common.ParamID("id", "instructorID")
}

func CreateCourse() fiber.Handler {
	return common.Body[CreateCourseRequest]("validatedCourse")
}

func UpdateCourse() fiber.Handler {
	return common.Body[UpdateCourseRequest]("validatedCourseUpdate")
}

func CourseList() fiber.Handler {
	return common.Query[CourseListQuery]("validatedCourseList")
}

func List() fiber.Handler {
	return common.Query[common.Pagination]("validatedPagination")
}

// ReconcileQuery limits a students_count repair to one course when course_id is set.
type ReconcileQuery struct {
	CourseID uint `query:"course_id"`
}

func Reconcile() fiber.Handler {
	return common.Query[ReconcileQuery]("validatedReconcile")
}
