// Package store defines the data source behind the booking API:
// agencies, schedules, seat schemas and completed sales.  Two
// implementations exist: the seeded in-memory store in this package
// (the default, mirroring the fixture data set) and the MySQL-backed
// repository in internal/repository for deployments with a database.
package store

import (
	"context"
	"errors"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

// ErrTripNotFound is returned when no schedule exists for an id.
var ErrTripNotFound = errors.New("trip not found")

// ErrSchemaNotFound is returned when a trip has no seat schema.
var ErrSchemaNotFound = errors.New("seat schema not found")

// ErrSeatConflict is returned by RecordSale when a requested seat does
// not exist in the schema or is already taken.
var ErrSeatConflict = errors.New("seat not available")

// Store is the read/write surface the HTTP handlers run against.
type Store interface {
	// Agencies lists every terminal usable as origin or destination.
	Agencies(ctx context.Context) ([]model.Agency, error)
	// SearchSchedules returns trips matching the filters.  Empty
	// filters act as wildcards; date is matched against the departure
	// day in YYYY-MM-DD form.
	SearchSchedules(ctx context.Context, from, to, date string) ([]model.Trip, error)
	// ScheduleByID returns one trip or ErrTripNotFound.
	ScheduleByID(ctx context.Context, id string) (model.Trip, error)
	// SchemaByTrip returns the trip's seat schema or ErrSchemaNotFound.
	SchemaByTrip(ctx context.Context, tripID string) (model.SeatSchema, error)
	// RecordSale marks the sold seats taken under the given PNR.  It
	// fails with ErrTripNotFound or ErrSeatConflict without partial
	// effect: either every seat is taken afterwards or none is.
	RecordSale(ctx context.Context, req model.TicketSaleRequest, pnr string) error
}
