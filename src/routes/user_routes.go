package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserRoutes wires the user management API.
func UserRoutes(app *fiber.App) {
	userRoutes := app.Group("/users", middleware.AuthJWT)
	userRoutes.Post("/", controllers.CreateUser)
	userRoutes.Get("/", controllers.GetUsers)
	userRoutes.Get("/search", controllers.SearchUsers)
	userRoutes.Get("/surveyors", controllers.GetSurveyors)
	userRoutes.Get("/:id", controllers.GetUserByID)
	userRoutes.Put("/:id", controllers.UpdateUser)
	userRoutes.Delete("/:id", controllers.DeleteUser)
}
