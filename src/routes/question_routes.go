package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func QuestionRoutes(app *fiber.App) {
	questionRoutes := app.Group("/questions", middleware.AuthJWT)
	questionRoutes.Post("/", controllers.CreateQuestion)
	questionRoutes.Get("/", controllers.GetQuestions)
	questionRoutes.Get("/open", controllers.GetOpenQuestions)
	questionRoutes.Put("/:id", controllers.UpdateQuestion)
	questionRoutes.Delete("/:id", controllers.DeleteQuestion)
}
