package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func JobRoutes(app *fiber.App) {
	jobRoutes := app.Group("/jobs", middleware.AuthJWT)
	jobRoutes.Post("/evaluate/:userId/:surveyId", controllers.EnqueueEvaluation)
}
