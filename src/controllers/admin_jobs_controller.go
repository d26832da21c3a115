package controllers

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/jobs"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// EnqueueEvaluation godoc
// @Summary      Queue a background completion re-check
// @Description  Pushes an assignment:evaluate task for the (user, survey) pair onto the worker
// @Tags         jobs
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        surveyId path string true "Survey ID"
// @Success      202  {object}  models.SuccessResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /jobs/evaluate/{userId}/{surveyId} [post]
func EnqueueEvaluation(c *fiber.Ctx) error {
	if database.AsynqClient == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "Background jobs are not available"})
	}

	jobs.EnqueueEvaluation(c.Params("userId"), c.Params("surveyId"))
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"message": "Evaluation task queued"})
}
