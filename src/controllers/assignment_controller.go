package controllers

import (
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/services/assignments"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAssignment godoc
// @Summary      Assign a survey to a user
// @Description  Creates a pending assignment requiring the user to answer the survey N times
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        assignment body models.AssignmentRequest true "Assignment data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assignments [post]
func CreateAssignment(c *fiber.Ctx) error {
	var req models.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	assignment, err := assignments.CreateAssignment(req)
	if err != nil {
		if errors.Is(err, assignments.ErrUserNotFound) || errors.Is(err, assignments.ErrSurveyNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":      "Assignment created successfully",
		"assignmentId": assignment.ID.Hex(),
	})
}

// UpdateAssignment godoc
// @Summary      Update an assignment
// @Description  Administrative full update; derived progress is not recomputed here
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id path string true "Assignment ID"
// @Param        assignment body models.AssignmentRequest true "Assignment data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assignments/{id} [put]
func UpdateAssignment(c *fiber.Ctx) error {
	var req models.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	err := assignments.UpdateAssignment(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		if isStoreError(err) {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assignment updated successfully"})
}

// DeleteAssignment godoc
// @Summary      Delete an assignment
// @Description  Removes the assignment and its recorded answers
// @Tags         assignments
// @Param        id path string true "Assignment ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assignments/{id} [delete]
func DeleteAssignment(c *fiber.Ctx) error {
	err := assignments.DeleteAssignment(c.Params("id"))
	if err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assignment deleted successfully"})
}

// GetAssignmentByID godoc
// @Summary      Get one assignment
// @Tags         assignments
// @Produce      json
// @Param        id path string true "Assignment ID"
// @Success      200  {object}  models.Assignment
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assignments/{id} [get]
func GetAssignmentByID(c *fiber.Ctx) error {
	assignment, err := assignments.GetAssignmentByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}
	return c.JSON(assignment)
}

// GetAssignmentsByUser godoc
// @Summary      List a user's assignments with derived progress
// @Description  Each row carries the survey name, the completed pass count and the derived status
// @Tags         assignments
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   models.AssignmentProgress
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /assignments/user/{userId} [get]
func GetAssignmentsByUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId format"})
	}

	results, err := assignments.GetAssignmentsByUser(userID)
	if err != nil {
		// zero-question surveys are a data-integrity problem, not a bad request
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(results)
}

// ListAssignments godoc
// @Summary      Admin assignment list
// @Description  Paged; optionally narrowed by one filter dimension (name, survey, quantity, date); unknown filters are ignored
// @Tags         assignments
// @Produce      json
// @Param        search query string false "Search term"
// @Param        filter query string false "Filter dimension" Enums(name, survey, quantity, date)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort field"
// @Param        order query string false "asc or desc"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /assignments [get]
func ListAssignments(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.SortBy = c.Query("sortBy", "createdAt")
	params.Order = c.Query("order", "desc")

	rows, total, err := assignments.ListAssignments(c.Query("search"), c.Query("filter"), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	// an empty match is an empty list, never a 404
	return c.JSON(models.NewPaginatedResponse(rows, total, params))
}

// EvaluateCompletion godoc
// @Summary      Re-evaluate completion for a (user, survey) pair
// @Description  Recounts progress of every matching assignment and marks completed ones; completion never regresses
// @Tags         assignments
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        surveyId path string true "Survey ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /assignments/verify/{userId}/{surveyId} [put]
func EvaluateCompletion(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId format"})
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("surveyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid surveyId format"})
	}

	message, err := assignments.EvaluateAndUpdate(userID, surveyID)
	if err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No assignment found for this user and survey"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": message})
}
