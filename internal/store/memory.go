package store

import (
	"context"
	"sync"
	"time"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

// Memory is the seeded in-memory store.  It regenerates the fixture data
// set on construction: a fixed agency list and, for each day of a 7-day
// window, the two template trips with fresh ids and full seat schemas.
// All access goes through one mutex; the handlers share a single Memory
// across requests.
type Memory struct {
	mu        sync.RWMutex
	agencies  []model.Agency
	schedules map[string]model.Trip
	order     []string // schedule ids in generation order
	schemas   map[string]model.SeatSchema
	sales     map[string]model.TicketSaleRequest // keyed by PNR
}

// tz is the fixed +03:00 offset all schedule times are expressed in.
var tz = time.FixedZone("UTC+3", 3*60*60)

// NewMemory seeds a store with trips departing on each of the seven days
// starting at the given date (normally today).
func NewMemory(start time.Time) *Memory {
	m := &Memory{
		agencies: []model.Agency{
			{ID: "IST", Name: "İstanbul Esenler"},
			{ID: "ANK", Name: "Ankara AŞTİ"},
			{ID: "IZM", Name: "İzmir Otogar"},
			{ID: "ANT", Name: "Antalya Otogar"},
		},
		schedules: make(map[string]model.Trip),
		schemas:   make(map[string]model.SeatSchema),
		sales:     make(map[string]model.TicketSaleRequest),
	}

	templates := []struct {
		suffix   string
		company  string
		from, to string
		dep, arr string // HH:MM, arr may be next day when earlier than dep
		price    float64
		taken    []int
	}{
		{"1", "Metro Turizm", "IST", "ANK", "08:30", "14:45", 450, []int{2, 7, 18}},
		{"2", "Kamil Koç", "IST", "ANK", "23:00", "05:15", 520, []int{1, 12}},
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, tz)
	for d := 0; d < 7; d++ {
		date := day.AddDate(0, 0, d)
		for _, t := range templates {
			id := "TRIP-" + date.Format("20060102") + "-" + t.suffix
			dep := at(date, t.dep)
			arr := at(date, t.arr)
			if !arr.After(dep) {
				arr = arr.AddDate(0, 0, 1)
			}
			schema := coachSchema(id, t.price, t.taken)
			m.schemas[id] = schema
			m.schedules[id] = model.Trip{
				ID:             id,
				Company:        t.company,
				From:           t.from,
				To:             t.to,
				Departure:      dep,
				Arrival:        arr,
				Price:          t.price,
				AvailableSeats: availableIn(schema),
			}
			m.order = append(m.order, id)
		}
	}
	return m
}

// at combines a day with an HH:MM clock string in the schedule zone.
func at(day time.Time, clock string) time.Time {
	t, _ := time.Parse("15:04", clock)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, tz)
}

// coachSchema builds the standard 2+2 coach: ten rows of two seat pairs
// around a center aisle.  The first row's left pair is left without seat
// records (the driver area), so those grid cells render as gaps.
func coachSchema(tripID string, price float64, taken []int) model.SeatSchema {
	const rows, cols = 10, 5
	cells := make([]model.CellType, 0, rows*cols)
	for r := 0; r < rows; r++ {
		cells = append(cells, model.CellSeat, model.CellSeat, model.CellAisle, model.CellSeat, model.CellSeat)
	}

	isTaken := make(map[int]bool, len(taken))
	for _, no := range taken {
		isTaken[no] = true
	}

	var seats []model.Seat
	no := 1
	for r := 1; r <= rows; r++ {
		for _, c := range []int{1, 2, 4, 5} {
			if r == 1 && c <= 2 {
				continue // driver area, no seat record
			}
			status := model.SeatEmpty
			if isTaken[no] {
				status = model.SeatTaken
			}
			seats = append(seats, model.Seat{No: no, Row: r, Col: c, Status: status})
			no++
		}
	}
	return model.SeatSchema{
		TripID:    tripID,
		Layout:    model.SeatLayout{Rows: rows, Cols: cols, Cells: cells},
		Seats:     seats,
		UnitPrice: price,
	}
}

func availableIn(schema model.SeatSchema) int {
	n := 0
	for _, s := range schema.Seats {
		if s.Status != model.SeatTaken {
			n++
		}
	}
	return n
}

// Agencies implements Store.
func (m *Memory) Agencies(ctx context.Context) ([]model.Agency, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Agency, len(m.agencies))
	copy(out, m.agencies)
	return out, nil
}

// SearchSchedules implements Store.  Matching mirrors the fixture
// backend: exact from/to ids and the departure day; empty filters match
// everything.
func (m *Memory) SearchSchedules(ctx context.Context, from, to, date string) ([]model.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Trip
	for _, id := range m.order {
		t := m.schedules[id]
		if from != "" && t.From != from {
			continue
		}
		if to != "" && t.To != to {
			continue
		}
		if date != "" && t.Departure.In(tz).Format("2006-01-02") != date {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ScheduleByID implements Store.
func (m *Memory) ScheduleByID(ctx context.Context, id string) (model.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.schedules[id]
	if !ok {
		return model.Trip{}, ErrTripNotFound
	}
	return t, nil
}

// SchemaByTrip implements Store.  The returned schema is a deep copy;
// callers cannot mutate seat state through it.
func (m *Memory) SchemaByTrip(ctx context.Context, tripID string) (model.SeatSchema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	schema, ok := m.schemas[tripID]
	if !ok {
		return model.SeatSchema{}, ErrSchemaNotFound
	}
	return copySchema(schema), nil
}

func copySchema(s model.SeatSchema) model.SeatSchema {
	out := s
	out.Layout.Cells = append([]model.CellType(nil), s.Layout.Cells...)
	out.Seats = append([]model.Seat(nil), s.Seats...)
	return out
}

// RecordSale implements Store.  The availability check and the status
// flips happen under one write lock so a sale is all-or-nothing.
func (m *Memory) RecordSale(ctx context.Context, req model.TicketSaleRequest, pnr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	schema, ok := m.schemas[req.TripID]
	if !ok {
		return ErrTripNotFound
	}
	index := make(map[int]int, len(schema.Seats)) // seat no -> slice index
	for i, s := range schema.Seats {
		index[s.No] = i
	}
	for _, no := range req.Seats {
		i, ok := index[no]
		if !ok || schema.Seats[i].Status == model.SeatTaken {
			return ErrSeatConflict
		}
	}
	for _, no := range req.Seats {
		schema.Seats[index[no]].Status = model.SeatTaken
	}
	m.schemas[req.TripID] = schema

	trip := m.schedules[req.TripID]
	trip.AvailableSeats = availableIn(schema)
	m.schedules[req.TripID] = trip

	m.sales[pnr] = req
	return nil
}

// SaleByPNR returns a recorded sale for inspection, mainly by tests and
// the ticket verification handler.
func (m *Memory) SaleByPNR(pnr string) (model.TicketSaleRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	req, ok := m.sales[pnr]
	return req, ok
}
