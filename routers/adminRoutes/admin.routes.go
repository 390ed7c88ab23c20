package adminRoutes

import (
	controllers "learnhub/controllers/admin"
	"learnhub/middleware"
	"learnhub/models"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

	adminGroup.Post("/courses/reconcile", courseValidator.Reconcile(), controllers.ReconcileStudentsCount)
	adminGroup.Get("/dashboard/stats", controllers.GetDashboardStats)
}
