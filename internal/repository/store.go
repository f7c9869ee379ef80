// Package repository is the MySQL-backed implementation of store.Store.
// It is selected when the DB_* environment variables are present;
// deployments without a database run on the seeded in-memory store
// instead.  All timestamps are stored in UTC and converted to the
// schedule zone on the way out.
package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/adiguzelburak/bus-ticket/internal/model"
	"github.com/adiguzelburak/bus-ticket/internal/store"
)

// scheduleZone is the +03:00 offset schedules are published in.
var scheduleZone = time.FixedZone("UTC+3", 3*60*60)

// Store provides schedule, schema and sale persistence over MySQL.
type Store struct {
	db *sql.DB
}

// New returns a Store bound to the given database handle.
func New(db *sql.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for transaction management in tests.
func (s *Store) DB() *sql.DB { return s.db }

// Agencies returns every agency ordered by id.
func (s *Store) Agencies(ctx context.Context) ([]model.Agency, error) {
	const q = `SELECT id, name FROM agencies ORDER BY id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Agency
	for rows.Next() {
		var a model.Agency
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SearchSchedules filters by origin, destination and departure day.
// Empty filters are wildcards.  Available seat counts are derived from
// the seats table in the same query so the listing never disagrees with
// the seat map.
func (s *Store) SearchSchedules(ctx context.Context, from, to, date string) ([]model.Trip, error) {
	where := []string{}
	args := []any{}
	if from != "" {
		where = append(where, "s.from_agency = ?")
		args = append(args, from)
	}
	if to != "" {
		where = append(where, "s.to_agency = ?")
		args = append(args, to)
	}
	if date != "" {
		// departure is stored in UTC; compare against the published
		// +03:00 calendar day.
		where = append(where, "DATE(CONVERT_TZ(s.departure, '+00:00', '+03:00')) = ?")
		args = append(args, date)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	q := `SELECT s.id, s.company, s.from_agency, s.to_agency, s.departure, s.arrival, s.price,
	             (SELECT COUNT(*) FROM seats se WHERE se.trip_id = s.id AND se.status <> 'taken')
	      FROM schedules s
	      WHERE ` + cond + `
	      ORDER BY s.departure ASC`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanTrip(r rowScanner) (model.Trip, error) {
	var t model.Trip
	var dep, arr time.Time
	if err := r.Scan(&t.ID, &t.Company, &t.From, &t.To, &dep, &arr, &t.Price, &t.AvailableSeats); err != nil {
		return model.Trip{}, err
	}
	t.Departure = dep.In(scheduleZone)
	t.Arrival = arr.In(scheduleZone)
	return t, nil
}

// ScheduleByID returns one trip or store.ErrTripNotFound.
func (s *Store) ScheduleByID(ctx context.Context, id string) (model.Trip, error) {
	const q = `SELECT s.id, s.company, s.from_agency, s.to_agency, s.departure, s.arrival, s.price,
	                  (SELECT COUNT(*) FROM seats se WHERE se.trip_id = s.id AND se.status <> 'taken')
	           FROM schedules s WHERE s.id = ?`
	t, err := scanTrip(s.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return model.Trip{}, store.ErrTripNotFound
	}
	return t, err
}

// SchemaByTrip loads the layout row and the trip's seats.  The cells
// column stores the row-major grid as a digit string ("11211...").
func (s *Store) SchemaByTrip(ctx context.Context, tripID string) (model.SeatSchema, error) {
	const layoutQ = `SELECT grid_rows, grid_cols, cells, unit_price FROM seat_layouts WHERE trip_id = ?`
	var schema model.SeatSchema
	var cells string
	err := s.db.QueryRowContext(ctx, layoutQ, tripID).Scan(&schema.Layout.Rows, &schema.Layout.Cols, &cells, &schema.UnitPrice)
	if err == sql.ErrNoRows {
		return model.SeatSchema{}, store.ErrSchemaNotFound
	}
	if err != nil {
		return model.SeatSchema{}, err
	}
	schema.TripID = tripID
	schema.Layout.Cells = decodeCells(cells)

	const seatQ = `SELECT no, grid_row, grid_col, status FROM seats WHERE trip_id = ? ORDER BY no`
	rows, err := s.db.QueryContext(ctx, seatQ, tripID)
	if err != nil {
		return model.SeatSchema{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var seat model.Seat
		var status string
		if err := rows.Scan(&seat.No, &seat.Row, &seat.Col, &status); err != nil {
			return model.SeatSchema{}, err
		}
		seat.Status = model.SeatStatus(status)
		schema.Seats = append(schema.Seats, seat)
	}
	return schema, rows.Err()
}

func decodeCells(s string) []model.CellType {
	out := make([]model.CellType, 0, len(s))
	for _, ch := range s {
		out = append(out, model.CellType(ch-'0'))
	}
	return out
}

// RecordSale flips the sold seats to taken and writes the sale rows in
// one transaction.  The status update is guarded by the current status,
// so a seat taken by a concurrent sale rolls the whole transaction back
// with store.ErrSeatConflict.
func (s *Store) RecordSale(ctx context.Context, req model.TicketSaleRequest, pnr string) error {
	if _, err := s.ScheduleByID(ctx, req.TripID); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const take = `UPDATE seats SET status = 'taken' WHERE trip_id = ? AND no = ? AND status <> 'taken'`
	for _, no := range req.Seats {
		res, err := tx.ExecContext(ctx, take, req.TripID, no)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrSeatConflict
		}
	}

	const sale = `INSERT INTO sales (pnr, trip_id, contact_email, contact_phone) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, sale, pnr, req.TripID, req.Contact.Email, req.Contact.Phone); err != nil {
		return err
	}
	if len(req.Passengers) > 0 {
		q := `INSERT INTO sale_passengers (pnr, seat_no, first_name, last_name, id_no, gender) VALUES `
		args := make([]any, 0, len(req.Passengers)*6)
		for i, p := range req.Passengers {
			if i > 0 {
				q += ","
			}
			q += "(?, ?, ?, ?, ?, ?)"
			args = append(args, pnr, p.Seat, p.FirstName, p.LastName, p.IDNo, p.Gender)
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
