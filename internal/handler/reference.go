// Package handler contains the HTTP handlers of the booking API.  Each
// handler struct holds the store it reads from; errors are translated to
// JSON bodies at this boundary and never propagate further up.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adiguzelburak/bus-ticket/internal/store"
)

// ReferenceHandler serves static reference data.
type ReferenceHandler struct {
	Store store.Store
}

// NewReferenceHandler constructs a ReferenceHandler.
func NewReferenceHandler(s store.Store) *ReferenceHandler {
	return &ReferenceHandler{Store: s}
}

// GetAgencies handles GET /api/reference/agencies.  It returns every
// agency usable as a search origin or destination.
func (h *ReferenceHandler) GetAgencies(c echo.Context) error {
	agencies, err := h.Store.Agencies(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, agencies)
}
