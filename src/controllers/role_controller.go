package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateRole godoc
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        role body models.Role true "Role data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /roles [post]
func CreateRole(c *fiber.Ctx) error {
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if role.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := services.CreateRole(&role); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating role"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Role created successfully",
		"role":    role,
	})
}

// GetRoles godoc
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}   models.Role
// @Failure      500  {object}  models.ErrorResponse
// @Router       /roles [get]
func GetRoles(c *fiber.Ctx) error {
	roles, err := services.GetAllRoles()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching roles"})
	}
	return c.JSON(roles)
}

// GetRoleByID godoc
// @Summary      Get one role
// @Tags         roles
// @Produce      json
// @Param        id path string true "Role ID"
// @Success      200  {object}  models.Role
// @Failure      404  {object}  models.ErrorResponse
// @Router       /roles/{id} [get]
func GetRoleByID(c *fiber.Ctx) error {
	role, err := services.GetRoleByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
	}
	return c.JSON(role)
}

// SearchRoles godoc
// @Summary      Search roles by name
// @Tags         roles
// @Produce      json
// @Param        search query string false "Search term"
// @Success      200  {array}   models.Role
// @Failure      500  {object}  models.ErrorResponse
// @Router       /roles/search [get]
func SearchRoles(c *fiber.Ctx) error {
	roles, err := services.SearchRoles(c.Query("search"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error searching roles"})
	}
	return c.JSON(roles)
}

// UpdateRole godoc
// @Summary      Rename a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id path string true "Role ID"
// @Param        role body models.Role true "Role data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /roles/{id} [put]
func UpdateRole(c *fiber.Ctx) error {
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	err := services.UpdateRole(c.Params("id"), &role)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Role updated successfully"})
}

// DeleteRole godoc
// @Summary      Delete a role
// @Tags         roles
// @Param        id path string true "Role ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /roles/{id} [delete]
func DeleteRole(c *fiber.Ctx) error {
	err := services.DeleteRole(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Role deleted successfully"})
}
