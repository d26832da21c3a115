package routes

import (
	"Backend-SurveyTrack/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes wires the identity provider endpoints.
func AuthRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/login", controllers.Login)
	authRoutes.Post("/logout", controllers.Logout)
	authRoutes.Post("/check-token", controllers.CheckToken)
}
