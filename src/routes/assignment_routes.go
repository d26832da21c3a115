package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AssignmentRoutes wires the Assignment API.
func AssignmentRoutes(app *fiber.App) {
	assignmentRoutes := app.Group("/assignments", middleware.AuthJWT)
	assignmentRoutes.Post("/", controllers.CreateAssignment)
	assignmentRoutes.Get("/", controllers.ListAssignments)
	assignmentRoutes.Get("/user/:userId", controllers.GetAssignmentsByUser)
	assignmentRoutes.Put("/verify/:userId/:surveyId", controllers.EvaluateCompletion)
	assignmentRoutes.Get("/:id", controllers.GetAssignmentByID)
	assignmentRoutes.Put("/:id", controllers.UpdateAssignment)
	assignmentRoutes.Delete("/:id", controllers.DeleteAssignment)
}
