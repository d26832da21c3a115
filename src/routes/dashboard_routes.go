package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	dashboardRoutes := app.Group("/dashboard", middleware.AuthJWT)
	dashboardRoutes.Get("/totals", controllers.GetDashboardTotals)
	dashboardRoutes.Get("/completed-per-day", controllers.GetCompletedPerDay)
	dashboardRoutes.Get("/surveyor-workload", controllers.GetSurveyorWorkload)
}
