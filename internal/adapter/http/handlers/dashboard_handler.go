package handlers

import (
	"errors"
	"net/http"
	"time"

	response "merenda_escolar/internal/adapter/http/dto/response"
	"merenda_escolar/internal/usecase"
	"merenda_escolar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMonth = pkg.NewDomainErrorSimple("INVALID_MONTH", "month must be in YYYY-MM form", http.StatusBadRequest)

const monthLayout = "2006-01"

// DashboardHandler handles the calendar and distribution report queries.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// MonthCalendar returns the 6-week grid for the requested month.
// GET /dashboard/calendar?month=2026-08 (defaults to the current month)
func (h *DashboardHandler) MonthCalendar(c *gin.Context) {
	refMonth, ok := h.resolveMonth(c)
	if !ok {
		return
	}

	days, err := h.usecase.MonthCalendar(c.Request.Context(), refMonth)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarDays(days))
}

// MonthGuides returns the guides whose period overlaps the requested month.
func (h *DashboardHandler) MonthGuides(c *gin.Context) {
	refMonth, ok := h.resolveMonth(c)
	if !ok {
		return
	}

	guides, err := h.usecase.MonthGuides(c.Request.Context(), refMonth)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuides(guides))
}

// WeeklyDistribution returns per-food totals distributed over the trailing week.
func (h *DashboardHandler) WeeklyDistribution(c *gin.Context) {
	totals, err := h.usecase.WeeklyDistribution(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDistributionTotals(totals))
}

func (h *DashboardHandler) resolveMonth(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	refMonth, err := time.Parse(monthLayout, raw)
	if err != nil {
		c.JSON(errInvalidMonth.HTTPStatus, errInvalidMonth.ToHTTPError())
		return time.Time{}, false
	}
	return refMonth, true
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "A guide has an inverted date range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
