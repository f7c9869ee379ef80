package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adiguzelburak/bus-ticket/internal/model"
	"github.com/adiguzelburak/bus-ticket/internal/store"
)

// ScheduleHandler serves trip search and lookup.
type ScheduleHandler struct {
	Store store.Store
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(s store.Store) *ScheduleHandler {
	return &ScheduleHandler{Store: s}
}

// Search handles GET /api/schedules?from&to&date.  Filters are optional
// and combine with AND; date is the departure day in YYYY-MM-DD.  An
// empty result is a valid response, not an error.
func (h *ScheduleHandler) Search(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	date := c.QueryParam("date")
	trips, err := h.Store.SearchSchedules(c.Request().Context(), from, to, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if trips == nil {
		trips = []model.Trip{}
	}
	return c.JSON(http.StatusOK, trips)
}

// GetByID handles GET /api/schedules/:id.
func (h *ScheduleHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid trip id"})
	}
	trip, err := h.Store.ScheduleByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, trip)
}
