package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory godoc
// @Summary      Create a survey category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body models.Category true "Category data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /categories [post]
func CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if category.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := services.CreateCategory(&category); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating category"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// GetCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      500  {object}  models.ErrorResponse
// @Router       /categories [get]
func GetCategories(c *fiber.Ctx) error {
	categories, err := services.GetAllCategories()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching categories"})
	}
	return c.JSON(categories)
}

// GetCategoryByID godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  models.ErrorResponse
// @Router       /categories/{id} [get]
func GetCategoryByID(c *fiber.Ctx) error {
	category, err := services.GetCategoryByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(category)
}

// SearchCategories godoc
// @Summary      Search categories by name
// @Tags         categories
// @Produce      json
// @Param        search query string false "Search term"
// @Success      200  {array}   models.Category
// @Failure      500  {object}  models.ErrorResponse
// @Router       /categories/search [get]
func SearchCategories(c *fiber.Ctx) error {
	categories, err := services.SearchCategories(c.Query("search"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error searching categories"})
	}
	return c.JSON(categories)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        category body models.Category true "Category data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /categories/{id} [put]
func UpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := services.UpdateCategory(c.Params("id"), &category)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Category updated successfully"})
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Tags         categories
// @Param        id path string true "Category ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /categories/{id} [delete]
func DeleteCategory(c *fiber.Ctx) error {
	err := services.DeleteCategory(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
