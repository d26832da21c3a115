package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func SurveyRoutes(app *fiber.App) {
	surveyRoutes := app.Group("/surveys", middleware.AuthJWT)
	surveyRoutes.Post("/", controllers.CreateSurvey)
	surveyRoutes.Get("/", controllers.GetSurveys)
	surveyRoutes.Get("/category/:categoryId", controllers.GetSurveysByCategory)
	surveyRoutes.Get("/:id", controllers.GetSurveyDetail)
	surveyRoutes.Put("/:id", controllers.UpdateSurvey)
	surveyRoutes.Delete("/:id", controllers.DeleteSurvey)
}
