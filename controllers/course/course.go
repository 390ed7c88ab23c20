package courseController

import (
	"errors"
	"fmt"
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/validators/common"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetCourses lists published courses. sort=popular orders by students_count.
func GetCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourseList").(*courseValidator.CourseListQuery)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	db := database.Database.Db.Model(&models.Course{}).Where("status = ?", models.CoursePublished)

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Search != "" {
		like := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	order := "created_at desc"
	if reqData.Sort == "popular" {
		order = "students_count desc, created_at desc"
	}

	var courses []models.Course
	if err := db.Preload("Instructor").Order(order).Offset(offset).Limit(reqData.Limit).Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := database.Database.Db.Preload("Instructor").
		Where("status = ?", models.CoursePublished).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, services.ErrCourseNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a draft owned by the caller. Admins may name another instructor.
func CreateCourse(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

	instructorID := actor.UserID
	if actor.IsAdmin() && reqData.InstructorID != 0 {
		instructorID = reqData.InstructorID
	}

	course := models.Course{
		InstructorID: instructorID,
		Title:        reqData.Title,
		Slug:         slugify(reqData.Title),
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		Thumbnail:    reqData.Thumbnail,
		Requirements: datatypes.JSONSlice[string](reqData.Requirements),
		Outcomes:     datatypes.JSONSlice[string](reqData.Outcomes),
		Status:       models.CourseDraft,
	}

	db := database.Database.Db
	if err := db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Slugs carry the id so titles may repeat.
	course.Slug = fmt.Sprintf("%s-%d", course.Slug, course.ID)
	if err := db.Model(&course).Update("slug", course.Slug).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)

	course, err := managedCourse(c, actor)
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
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail"] = *reqData.Thumbnail
	}
	if reqData.Requirements != nil {
		updates["requirements"] = datatypes.JSONSlice[string](reqData.Requirements)
	}
	if reqData.Outcomes != nil {
		updates["outcomes"] = datatypes.JSONSlice[string](reqData.Outcomes)
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(course).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	if err := database.Database.Db.First(course, course.ID).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func PublishCourse(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	course, err := managedCourse(c, actor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if course.Status != models.CoursePublished {
		course.Status = models.CoursePublished
		if err := database.Database.Db.Model(course).Update("status", course.Status).Error; err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// DeleteCourse soft deletes the course; its enrollments are kept.
func DeleteCourse(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	course, err := managedCourse(c, actor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := database.Database.Db.Delete(course).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCourseEnrollments lists a course's enrollments for its instructor or an admin.
func GetCourseEnrollments(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)
	reqData := c.Locals("validatedPagination").(*common.Pagination)
	offset := common.Paginate(&reqData.Page, &reqData.Limit)

	course, err := managedCourse(c, actor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	db := database.Database.Db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var enrollments []models.Enrollment
	if err := db.Preload("User").Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"course":      course,
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// managedCourse loads the :id course when the actor is its instructor or an admin.
// GetInstructorCourses returns an instructor's public profile and published courses.
func GetInstructorCourses(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(uint)

	instructor, courses, err := services.InstructorCourses(database.Database.Db, instructorID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor courses fetched successfully!", fiber.Map{
		"instructor": fiber.Map{
			"id":     instructor.ID,
			"name":   instructor.Name,
			"avatar": instructor.Avatar,
			"title":  instructor.Title,
			"bio":    instructor.Bio,
		},
		"courses": courses,
	})
}

func managedCourse(c *fiber.Ctx, actor services.Actor) (*models.Course, error) {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrCourseNotFound
		}
		return nil, err
	}

	if course.InstructorID != actor.UserID && !actor.IsAdmin() {
		return nil, services.ErrForbidden
	}
	return &course, nil
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "course"
	}
	return slug
}
