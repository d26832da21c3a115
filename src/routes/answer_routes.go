package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AnswerRoutes wires the Answer Ledger API.
func AnswerRoutes(app *fiber.App) {
	answerRoutes := app.Group("/answers", middleware.AuthJWT)
	answerRoutes.Post("/", controllers.RecordAnswer)
	answerRoutes.Get("/", controllers.GetAnswers)
	answerRoutes.Get("/assignment/:assignmentId", controllers.GetPassesByAssignment)
	answerRoutes.Put("/:id", controllers.UpdateAnswer)
	answerRoutes.Delete("/:id", controllers.DeleteAnswer)
}
