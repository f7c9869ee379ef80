package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

var seedDay = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func TestMemorySeed(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()

	agencies, err := m.Agencies(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, agencies)

	// Two trips per day over a seven-day window.
	all, err := m.SearchSchedules(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 14)

	day, err := m.SearchSchedules(ctx, "IST", "ANK", "2025-12-03")
	require.NoError(t, err)
	require.Len(t, day, 2)
	for _, trip := range day {
		assert.Equal(t, "2025-12-03", trip.Departure.Format("2006-01-02"))
		assert.Equal(t, "IST", trip.From)
		assert.Equal(t, "ANK", trip.To)
	}
}

func TestMemorySearchFilters(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()

	none, err := m.SearchSchedules(ctx, "IZM", "ANK", "")
	require.NoError(t, err)
	assert.Empty(t, none)

	wrongDay, err := m.SearchSchedules(ctx, "IST", "ANK", "2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, wrongDay)
}

func TestMemoryScheduleByID(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()

	trip, err := m.ScheduleByID(ctx, "TRIP-20251201-1")
	require.NoError(t, err)
	assert.Equal(t, "Metro Turizm", trip.Company)

	_, err = m.ScheduleByID(ctx, "TRIP-NOPE")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestMemorySchemaByTrip(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()

	schema, err := m.SchemaByTrip(ctx, "TRIP-20251201-1")
	require.NoError(t, err)
	assert.Equal(t, "TRIP-20251201-1", schema.TripID)
	assert.Equal(t, schema.Layout.Rows*schema.Layout.Cols, len(schema.Layout.Cells))
	assert.Equal(t, 38, len(schema.Seats), "driver area leaves two grid positions without seats")

	// The returned schema is a copy; mutating it cannot corrupt the store.
	schema.Seats[0].Status = model.SeatTaken
	again, err := m.SchemaByTrip(ctx, "TRIP-20251201-1")
	require.NoError(t, err)
	assert.NotEqual(t, model.SeatTaken, again.Seats[0].Status)

	_, err = m.SchemaByTrip(ctx, "TRIP-NOPE")
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func saleReq(tripID string, seats ...int) model.TicketSaleRequest {
	ps := make([]model.Passenger, 0, len(seats))
	for _, no := range seats {
		ps = append(ps, model.Passenger{Seat: no, FirstName: "Ada", LastName: "Yılmaz", IDNo: "12345678901", Gender: model.GenderFemale})
	}
	return model.TicketSaleRequest{
		TripID:     tripID,
		Seats:      seats,
		Contact:    model.ContactInfo{Email: "ada@example.com", Phone: "5551234567"},
		Passengers: ps,
	}
}

func TestMemoryRecordSale(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()
	const tripID = "TRIP-20251201-1"

	before, err := m.ScheduleByID(ctx, tripID)
	require.NoError(t, err)

	require.NoError(t, m.RecordSale(ctx, saleReq(tripID, 4, 5), "AT-20251201-ABC"))

	schema, err := m.SchemaByTrip(ctx, tripID)
	require.NoError(t, err)
	for _, no := range []int{4, 5} {
		seat, ok := schema.SeatByNo(no)
		require.True(t, ok)
		assert.Equal(t, model.SeatTaken, seat.Status)
	}

	after, err := m.ScheduleByID(ctx, tripID)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableSeats-2, after.AvailableSeats)

	recorded, ok := m.SaleByPNR("AT-20251201-ABC")
	assert.True(t, ok)
	assert.Equal(t, []int{4, 5}, recorded.Seats)
}

func TestMemoryRecordSaleConflictIsAtomic(t *testing.T) {
	m := NewMemory(seedDay)
	ctx := context.Background()
	const tripID = "TRIP-20251201-1"

	// Seat 2 is seeded taken; the request mixes it with a free seat.
	err := m.RecordSale(ctx, saleReq(tripID, 9, 2), "AT-20251201-DEF")
	assert.ErrorIs(t, err, ErrSeatConflict)

	// The free seat must not have been taken by the failed sale.
	schema, err := m.SchemaByTrip(ctx, tripID)
	require.NoError(t, err)
	seat, ok := schema.SeatByNo(9)
	require.True(t, ok)
	assert.Equal(t, model.SeatEmpty, seat.Status)
}

func TestMemoryRecordSaleUnknownTrip(t *testing.T) {
	m := NewMemory(seedDay)
	err := m.RecordSale(context.Background(), saleReq("TRIP-NOPE", 1), "AT-20251201-GHI")
	assert.ErrorIs(t, err, ErrTripNotFound)
}
