package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func OptionRoutes(app *fiber.App) {
	optionRoutes := app.Group("/options", middleware.AuthJWT)
	optionRoutes.Post("/", controllers.CreateOption)
	optionRoutes.Get("/", controllers.GetOptions)
	optionRoutes.Put("/:id", controllers.UpdateOption)
	optionRoutes.Delete("/:id", controllers.DeleteOption)
}
