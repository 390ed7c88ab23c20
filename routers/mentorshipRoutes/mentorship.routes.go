package mentorshipRoutes

import (
	controllers "learnhub/controllers/mentorship"
	"learnhub/middleware"
	"learnhub/models"
	validators "learnhub/validators/mentorship"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorshipRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	// Programs
	programGroup := app.Group("/mentorship-programs")
	programGroup.Get("/open", validators.List(), controllers.GetOpenPrograms)
	programGroup.Get("/:id", validators.ProgramID(), controllers.GetProgram)
	programGroup.Post("/", middleware.JWTMiddleware, admin, validators.CreateProgram(), controllers.CreateProgram)
	programGroup.Put("/:id", middleware.JWTMiddleware, validators.ProgramID(), validators.UpdateProgram(), controllers.UpdateProgram)
	programGroup.Delete("/:id", middleware.JWTMiddleware, admin, validators.ProgramID(), controllers.DeleteProgram)
	programGroup.Post("/:id/apply", middleware.JWTMiddleware, validators.ProgramID(), validators.Apply(), controllers.ApplyToProgram)
	programGroup.Get("/:id/applications", middleware.JWTMiddleware, validators.ProgramID(), validators.List(), controllers.GetProgramApplications)
	programGroup.Get("/:id/sessions", middleware.JWTMiddleware, validators.ProgramID(), controllers.GetProgramSessions)

	// Applications
	applicationGroup := app.Group("/mentorship-applications", middleware.JWTMiddleware)
	applicationGroup.Get("/mine", validators.List(), controllers.GetMyApplications)
	applicationGroup.Post("/check-status", validators.CheckApplication(), controllers.CheckApplicationStatus)
	applicationGroup.Put("/:id/status", validators.ApplicationID(), validators.ApplicationStatus(), controllers.UpdateApplicationStatus)
	applicationGroup.Put("/:id/accept", validators.ApplicationID(), controllers.AcceptApplication)
	applicationGroup.Put("/:id/reject", validators.ApplicationID(), controllers.RejectApplication)

	// Sessions
	sessionGroup := app.Group("/mentorship-sessions", middleware.JWTMiddleware)
	sessionGroup.Get("/", validators.List(), controllers.GetSessions)
	sessionGroup.Post("/", validators.CreateSession(), controllers.CreateSession)
	sessionGroup.Get("/:id", validators.SessionID(), controllers.GetSession)
	sessionGroup.Put("/:id", validators.SessionID(), validators.UpdateSession(), controllers.UpdateSession)
	sessionGroup.Delete("/:id", validators.SessionID(), controllers.DeleteSession)
	sessionGroup.Put("/:id/complete", validators.SessionID(), controllers.CompleteSession)
	sessionGroup.Put("/:id/cancel", validators.SessionID(), controllers.CancelSession)
}
