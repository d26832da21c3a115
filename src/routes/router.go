package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	AuthRoutes(app)
	RoleRoutes(app)
	CategoryRoutes(app)
	UserRoutes(app)
	SurveyRoutes(app)
	QuestionRoutes(app)
	OptionRoutes(app)
	AnswerRoutes(app)
	AssignmentRoutes(app)
	DashboardRoutes(app)
	JobRoutes(app)

	// liveness probe
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
