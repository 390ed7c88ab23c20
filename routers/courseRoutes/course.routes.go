package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	"learnhub/models"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course catalogue and management routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")
	staff := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin, models.RoleSuperAdmin)

	// Public catalogue
	courseGroup.Get("/", validators.CourseList(), controllers.GetCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourse)

	// Instructor / admin management
	courseGroup.Post("/", middleware.JWTMiddleware, staff, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, staff, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, staff, validators.CourseID(), controllers.PublishCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, staff, validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Get("/:id/enrollments", middleware.JWTMiddleware, staff, validators.CourseID(), validators.List(), controllers.GetCourseEnrollments)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	app.Get("/instructors/:id/related-courses", validators.InstructorID(), controllers.GetInstructorCourses)
}

// SetupEnrollmentRoutes sets up the enrollment ledger routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Post("/", middleware.RequireRole(models.RoleStudent), validators.StudentEnroll(), controllers.StudentEnroll)
	enrollmentGroup.Get("/", validators.EnrollmentList(), controllers.GetEnrollments)
	enrollmentGroup.Post("/check-status", validators.CheckEnrollment(), controllers.CheckEnrollmentStatus)
	enrollmentGroup.Get("/:id", validators.EnrollmentID(), controllers.GetEnrollment)
	enrollmentGroup.Put("/:id/progress", validators.EnrollmentID(), validators.UpdateProgress(), controllers.UpdateProgress)
	enrollmentGroup.Put("/:id/complete", validators.EnrollmentID(), controllers.CompleteEnrollment)
	enrollmentGroup.Put("/:id/cancel", validators.EnrollmentID(), controllers.CancelEnrollment)
	enrollmentGroup.Delete("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin), validators.EnrollmentID(), controllers.DeleteEnrollment)
}
