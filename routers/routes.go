package routers

import (
	"learnhub/routers/adminRoutes"
	"learnhub/routers/authRoutes"
	"learnhub/routers/courseRoutes"
	"learnhub/routers/eventRoutes"
	"learnhub/routers/mentorshipRoutes"

	"github.com/gofiber/fiber/v2"
)

// Setup mounts every route group on app.
func Setup(app *fiber.App) {
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupEnrollmentRoutes(app)
	eventRoutes.SetupEventRoutes(app)
	mentorshipRoutes.SetupMentorshipRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
}
