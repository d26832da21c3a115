package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateOption godoc
// @Summary      Add an answer option to a multiple-choice question
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        option body models.AnswerOption true "Option data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /options [post]
func CreateOption(c *fiber.Ctx) error {
	var option models.AnswerOption
	if err := c.BodyParser(&option); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := services.CreateOption(&option); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating option"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Option created successfully",
		"option":  option,
	})
}

// GetOptions godoc
// @Summary      List answer options
// @Tags         options
// @Produce      json
// @Param        questionId query string false "Narrow to one question"
// @Success      200  {array}   models.AnswerOption
// @Failure      500  {object}  models.ErrorResponse
// @Router       /options [get]
func GetOptions(c *fiber.Ctx) error {
	questionID := c.Query("questionId")
	if questionID != "" {
		opts, err := services.GetOptionsByQuestion(questionID)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(opts)
	}

	opts, err := services.GetAllOptions()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching options"})
	}
	return c.JSON(opts)
}

// UpdateOption godoc
// @Summary      Update an option
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        id path string true "Option ID"
// @Param        option body models.AnswerOption true "Option data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /options/{id} [put]
func UpdateOption(c *fiber.Ctx) error {
	var option models.AnswerOption
	if err := c.BodyParser(&option); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := services.UpdateOption(c.Params("id"), &option)
	if err != nil {
		if errors.Is(err, services.ErrOptionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Option not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Option updated successfully"})
}

// DeleteOption godoc
// @Summary      Delete an option
// @Tags         options
// @Param        id path string true "Option ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /options/{id} [delete]
func DeleteOption(c *fiber.Ctx) error {
	err := services.DeleteOption(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrOptionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Option not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Option deleted successfully"})
}
