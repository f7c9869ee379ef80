// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/adiguzelburak/bus-ticket/internal/handler"
)

// Handlers bundles the handler set wired by the entrypoint.
type Handlers struct {
	Reference  *handler.ReferenceHandler
	Schedule   *handler.ScheduleHandler
	SeatSchema *handler.SeatSchemaHandler
	Ticket     *handler.TicketHandler
}

// RegisterRoutes registers the health check on the provided Echo
// instance.  Load balancers and monitoring probe this path.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the booking endpoints.  The cache middleware
// applies to the read-only reference and schedule routes; the limiter
// applies to the sale routes only, where uncapped resubmission would
// mint duplicate PNRs.  Either middleware may be nil.
func RegisterAPI(e *echo.Echo, h Handlers, cache, limiter echo.MiddlewareFunc) {
	api := e.Group("/api")
	read := api.Group("")
	if cache != nil {
		read.Use(cache)
	}
	read.GET("/reference/agencies", h.Reference.GetAgencies)
	read.GET("/schedules", h.Schedule.Search)
	read.GET("/schedules/:id", h.Schedule.GetByID)
	read.GET("/seatSchemas", h.SeatSchema.GetByTrip)

	sell := api.Group("/tickets")
	if limiter != nil {
		sell.Use(limiter)
	}
	sell.POST("/sell", h.Ticket.Sell)
	sell.GET("/verify", h.Ticket.Verify)

	// Legacy alias kept for compatibility with existing clients: the
	// original backend answered sales on both paths.
	if limiter != nil {
		e.POST("/sales", h.Ticket.Sell, limiter)
	} else {
		e.POST("/sales", h.Ticket.Sell)
	}
}
