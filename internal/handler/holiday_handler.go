package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/service"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/response"
)

// HolidayHandler exposes calendar lookups over holidays.
type HolidayHandler struct {
	holidays *service.HolidayService
}

// NewHolidayHandler constructs handler.
func NewHolidayHandler(holidays *service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidays: holidays}
}

// Register mounts the lookups on the holidays group. They must be registered before /:id routes resolve.
func (h *HolidayHandler) Register(group *gin.RouterGroup) {
	group.GET("/month/:year/:month", h.Month)
	group.GET("/check/:date", h.Check)
}

// Month godoc
// @Summary Holidays touching a calendar month
// @Tags Holidays
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param sessionId query string false "Filter by session"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /holidays/month/{year}/{month} [get]
func (h *HolidayHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be a number"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be a number"))
		return
	}
	holidays, err := h.holidays.Month(c.Request.Context(), year, month, c.Query("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, holidays, "holidays retrieved")
}

// Check godoc
// @Summary Whether a day is a holiday
// @Tags Holidays
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param sessionId query string false "Filter by session"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /holidays/check/{date} [get]
func (h *HolidayHandler) Check(c *gin.Context) {
	result, err := h.holidays.Check(c.Request.Context(), c.Param("date"), c.Query("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result, "")
}
