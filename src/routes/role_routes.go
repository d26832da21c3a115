package routes

import (
	"Backend-SurveyTrack/src/controllers"
	"Backend-SurveyTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func RoleRoutes(app *fiber.App) {
	roleRoutes := app.Group("/roles", middleware.AuthJWT)
	roleRoutes.Post("/", controllers.CreateRole)
	roleRoutes.Get("/", controllers.GetRoles)
	roleRoutes.Get("/search", controllers.SearchRoles)
	roleRoutes.Get("/:id", controllers.GetRoleByID)
	roleRoutes.Put("/:id", controllers.UpdateRole)
	roleRoutes.Delete("/:id", controllers.DeleteRole)
}
