package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adiguzelburak/bus-ticket/internal/model"
	"github.com/adiguzelburak/bus-ticket/internal/seatmap"
	"github.com/adiguzelburak/bus-ticket/internal/store"
)

// SeatSchemaHandler serves seat maps.
type SeatSchemaHandler struct {
	Store store.Store
}

// NewSeatSchemaHandler constructs a SeatSchemaHandler.
func NewSeatSchemaHandler(s store.Store) *SeatSchemaHandler {
	return &SeatSchemaHandler{Store: s}
}

// GetByTrip handles GET /api/seatSchemas?tripId=.  The response is an
// array of schemas of which consumers take the first element; a missing
// trip yields an empty array rather than a 404, which is the signal the
// wizard's not-found view keys on.  Schemas are checked against the
// layout grid before they leave the server: a schema whose cells do not
// fill its grid would break every client, so it is refused here.
func (h *SeatSchemaHandler) GetByTrip(c echo.Context) error {
	tripID := c.QueryParam("tripId")
	if tripID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tripId is required"})
	}
	schema, err := h.Store.SchemaByTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrSchemaNotFound) {
			return c.JSON(http.StatusOK, []model.SeatSchema{})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := seatmap.Render(schema.Layout, schema.Seats); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt seat schema"})
	}
	return c.JSON(http.StatusOK, []model.SeatSchema{schema})
}
