package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateUser godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body models.UserRequest true "User data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users [post]
func CreateUser(c *fiber.Ctx) error {
	var req models.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	user, err := services.CreateUser(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"userId":  user.ID.Hex(),
	})
}

// GetUsers godoc
// @Summary      List users with their role names
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.UserWithRole
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users [get]
func GetUsers(c *fiber.Ctx) error {
	users, err := services.GetAllUsers()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching users"})
	}
	return c.JSON(users)
}

// GetUserByID godoc
// @Summary      Get one user profile
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *fiber.Ctx) error {
	user, err := services.GetUserByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// SearchUsers godoc
// @Summary      Search users by name or email
// @Tags         users
// @Produce      json
// @Param        search query string false "Search term"
// @Success      200  {array}   models.UserWithRole
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users/search [get]
func SearchUsers(c *fiber.Ctx) error {
	users, err := services.SearchUsers(c.Query("search"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error searching users"})
	}
	return c.JSON(users)
}

// GetSurveyors godoc
// @Summary      List users with the surveyor role
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.UserWithRole
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users/surveyors [get]
func GetSurveyors(c *fiber.Ctx) error {
	users, err := services.GetUsersByRole(models.RoleSurveyor)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching surveyors"})
	}
	return c.JSON(users)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        user body models.UserRequest true "User data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [put]
func UpdateUser(c *fiber.Ctx) error {
	var req models.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	err := services.UpdateUser(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        id path string true "User ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/{id} [delete]
func DeleteUser(c *fiber.Ctx) error {
	err := services.DeleteUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
