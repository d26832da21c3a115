package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion godoc
// @Summary      Add a question to a survey
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question body models.Question true "Question data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions [post]
func CreateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := c.BodyParser(&question); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := services.CreateQuestion(&question); err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Survey not found"})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating question"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Question created successfully",
		"question": question,
	})
}

// GetQuestions godoc
// @Summary      List questions
// @Tags         questions
// @Produce      json
// @Success      200  {array}   models.Question
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questions [get]
func GetQuestions(c *fiber.Ctx) error {
	questions, err := services.GetAllQuestions()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching questions"})
	}
	return c.JSON(questions)
}

// GetOpenQuestions godoc
// @Summary      List open questions (paragraph and short-text types)
// @Tags         questions
// @Produce      json
// @Success      200  {array}   models.Question
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/open [get]
func GetOpenQuestions(c *fiber.Ctx) error {
	questions, err := services.GetOpenQuestions()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching open questions"})
	}
	if len(questions) == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "No open questions found"})
	}
	return c.JSON(questions)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        question body models.Question true "Question data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [put]
func UpdateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := c.BodyParser(&question); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := services.UpdateQuestion(c.Params("id"), &question)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Question updated successfully"})
}

// DeleteQuestion godoc
// @Summary      Delete a question and its options
// @Tags         questions
// @Param        id path string true "Question ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [delete]
func DeleteQuestion(c *fiber.Ctx) error {
	err := services.DeleteQuestion(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Question deleted successfully"})
}
