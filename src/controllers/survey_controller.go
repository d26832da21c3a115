package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateSurvey godoc
// @Summary      Create a survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        survey body models.Survey true "Survey data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /surveys [post]
func CreateSurvey(c *fiber.Ctx) error {
	var survey models.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := services.CreateSurvey(&survey); err != nil {
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating survey"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Survey created successfully",
		"survey":  survey,
	})
}

// GetSurveys godoc
// @Summary      List surveys
// @Tags         surveys
// @Produce      json
// @Param        search query string false "Search term"
// @Success      200  {array}   models.Survey
// @Failure      500  {object}  models.ErrorResponse
// @Router       /surveys [get]
func GetSurveys(c *fiber.Ctx) error {
	surveys, err := services.SearchSurveys(c.Query("search"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching surveys"})
	}
	return c.JSON(surveys)
}

// GetSurveyDetail godoc
// @Summary      Get one survey with questions and options
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {object}  models.SurveyDetail
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [get]
func GetSurveyDetail(c *fiber.Ctx) error {
	detail, err := services.GetSurveyDetail(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Survey not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}

// GetSurveysByCategory godoc
// @Summary      List the surveys of one category
// @Tags         surveys
// @Produce      json
// @Param        categoryId path string true "Category ID"
// @Success      200  {array}   models.SurveyWithCategory
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/category/{categoryId} [get]
func GetSurveysByCategory(c *fiber.Ctx) error {
	surveys, err := services.GetSurveysByCategory(c.Params("categoryId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(surveys) == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "No surveys for this category"})
	}
	return c.JSON(surveys)
}

// UpdateSurvey godoc
// @Summary      Update a survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id path string true "Survey ID"
// @Param        survey body models.Survey true "Survey data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [put]
func UpdateSurvey(c *fiber.Ctx) error {
	var survey models.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := services.UpdateSurvey(c.Params("id"), &survey)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Survey not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Survey updated successfully"})
}

// DeleteSurvey godoc
// @Summary      Delete a survey with its questions and options
// @Tags         surveys
// @Param        id path string true "Survey ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [delete]
func DeleteSurvey(c *fiber.Ctx) error {
	err := services.DeleteSurvey(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Survey not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Survey deleted successfully"})
}
