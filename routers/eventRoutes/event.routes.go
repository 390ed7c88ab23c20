package eventRoutes

import (
	controllers "learnhub/controllers/event"
	"learnhub/middleware"
	"learnhub/models"
	validators "learnhub/validators/event"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App) {
	eventGroup := app.Group("/events")
	admin := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	eventGroup.Get("/upcoming", validators.List(), controllers.GetUpcomingEvents)
	eventGroup.Get("/:id", validators.EventID(), controllers.GetEvent)

	eventGroup.Post("/", middleware.JWTMiddleware, admin, validators.CreateEvent(), controllers.CreateEvent)
	eventGroup.Put("/:id", middleware.JWTMiddleware, admin, validators.EventID(), validators.UpdateEvent(), controllers.UpdateEvent)
	eventGroup.Delete("/:id", middleware.JWTMiddleware, admin, validators.EventID(), controllers.DeleteEvent)
	eventGroup.Get("/:id/registrations", middleware.JWTMiddleware, admin, validators.EventID(), validators.List(), controllers.GetEventRegistrations)

	eventGroup.Post("/:id/register", middleware.JWTMiddleware, validators.EventID(), controllers.RegisterForEvent)
	eventGroup.Post("/:id/cancel", middleware.JWTMiddleware, validators.EventID(), controllers.CancelRegistration)

	registrationGroup := app.Group("/event-registrations", middleware.JWTMiddleware)

	registrationGroup.Post("/check-status", validators.CheckRegistration(), controllers.CheckRegistrationStatus)
	registrationGroup.Put("/:id/status", admin, validators.RegistrationID(), validators.RegistrationStatus(), controllers.UpdateRegistrationStatus)
	registrationGroup.Put("/:id/attend", admin, validators.RegistrationID(), controllers.MarkAttended)
}
