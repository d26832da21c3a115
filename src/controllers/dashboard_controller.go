package controllers

import (
	"Backend-SurveyTrack/src/services"
	"Backend-SurveyTrack/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardTotals godoc
// @Summary      Headline counters
// @Description  Total users, admins, completed assignments and summed assigned quantity
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  services.DashboardTotals
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/totals [get]
func GetDashboardTotals(c *fiber.Ctx) error {
	totals, err := services.GetDashboardTotals()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching dashboard totals")
	}
	return c.JSON(totals)
}

// GetCompletedPerDay godoc
// @Summary      Completed quantity per day for one month
// @Tags         dashboard
// @Produce      json
// @Param        year  query string true "Year, e.g. 2026"
// @Param        month query string true "Month 1-12"
// @Success      200  {array}   services.CompletedPerDay
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/completed-per-day [get]
func GetCompletedPerDay(c *fiber.Ctx) error {
	year, month, err := services.ParseMonth(c.Query("year"), c.Query("month"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	rows, err := services.GetCompletedPerDay(year, month)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching series")
	}
	return c.JSON(rows)
}

// GetSurveyorWorkload godoc
// @Summary      Assignment load per surveyor
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   services.SurveyorWorkload
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/surveyor-workload [get]
func GetSurveyorWorkload(c *fiber.Ctx) error {
	rows, err := services.GetSurveyorWorkload()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching workload")
	}
	return c.JSON(rows)
}
