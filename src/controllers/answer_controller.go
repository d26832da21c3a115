package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services/answers"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordAnswer godoc
// @Summary      Record one answer
// @Description  Appends one ledger row; either optionId or answerText must be present
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        answer body models.AnswerRequest true "Answer data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /answers [post]
func RecordAnswer(c *fiber.Ctx) error {
	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	answer, err := answers.RecordAnswer(req)
	if err != nil {
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Answer recorded successfully",
		"answerId": answer.ID.Hex(),
	})
}

// GetAnswers godoc
// @Summary      Dump the raw answer ledger
// @Tags         answers
// @Produce      json
// @Success      200  {array}   models.Answer
// @Failure      500  {object}  models.ErrorResponse
// @Router       /answers [get]
func GetAnswers(c *fiber.Ctx) error {
	results, err := answers.GetAllAnswers()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching answers"})
	}
	return c.JSON(results)
}

// UpdateAnswer godoc
// @Summary      Correct one answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        id path string true "Answer ID"
// @Param        answer body models.AnswerRequest true "Answer data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [put]
func UpdateAnswer(c *fiber.Ctx) error {
	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	err := answers.UpdateAnswer(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, answers.ErrAnswerNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Answer not found"})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Answer updated successfully"})
}

// DeleteAnswer godoc
// @Summary      Delete one answer
// @Tags         answers
// @Param        id path string true "Answer ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [delete]
func DeleteAnswer(c *fiber.Ctx) error {
	err := answers.DeleteAnswer(c.Params("id"))
	if err != nil {
		if errors.Is(err, answers.ErrAnswerNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Answer not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Answer deleted successfully"})
}

// GetPassesByAssignment godoc
// @Summary      Reconstruct the passes of one assignment
// @Description  Groups the assignment's answers by exact submission timestamp, most recent pass first
// @Tags         answers
// @Produce      json
// @Param        assignmentId path string true "Assignment ID"
// @Success      200  {array}   models.AnswerPass
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/assignment/{assignmentId} [get]
func GetPassesByAssignment(c *fiber.Ctx) error {
	assignmentID, err := primitive.ObjectIDFromHex(c.Params("assignmentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignmentId format"})
	}

	passes, err := answers.GetPassesByAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, answers.ErrNoAnswers) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "No answers found for this assignment"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(passes)
}
