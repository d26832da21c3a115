package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App) {
	categoryRoutes := app.Group("/categories", middleware.AuthJWT)
	categoryRoutes.Post("/", controllers.CreateCategory)
	categoryRoutes.Get("/", controllers.GetCategories)
	categoryRoutes.Get("/search", controllers.SearchCategories)
	categoryRoutes.Get("/:id", controllers.GetCategoryByID)
	categoryRoutes.Put("/:id", controllers.UpdateCategory)
	categoryRoutes.Delete("/:id", controllers.DeleteCategory)
}
