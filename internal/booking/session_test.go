package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

func testTrip() model.Trip {
	return model.Trip{ID: "TRIP-1001", Company: "Metro Turizm", From: "IST", To: "ANK", Price: 250}
}

func passengersFor(seats ...int) []model.Passenger {
	out := make([]model.Passenger, 0, len(seats))
	for _, no := range seats {
		out = append(out, model.Passenger{
			Seat:      no,
			FirstName: "Ada",
			LastName:  "Yılmaz",
			IDNo:      "12345678901",
			Gender:    model.GenderFemale,
		})
	}
	return out
}

func TestSessionAppendOnlyRoundTrip(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4, 12}, 500)

	withP, err := sess.WithPassengers(passengersFor(4, 12), model.ContactInfo{Email: "ada@example.com", Phone: "5551234567"})
	require.NoError(t, err)
	confirmed, err := withP.WithConfirmation("AT-20251201-X7K")
	require.NoError(t, err)

	// Trip, seats and total are fixed at seat selection and survive
	// every later append unchanged.
	for _, s := range []Session{sess, withP, confirmed} {
		assert.Equal(t, "TRIP-1001", s.Trip.ID)
		assert.Equal(t, []int{4, 12}, s.SelectedSeats)
		assert.Equal(t, 500.0, s.TotalAmount)
	}
	assert.True(t, confirmed.Confirmed())
	assert.Equal(t, "AT-20251201-X7K", confirmed.PNR)

	// Earlier values were not mutated in place.
	assert.Empty(t, sess.Passengers)
	assert.Empty(t, withP.PNR)
}

func TestWithPassengersCountMismatch(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4, 12}, 500)
	for _, ps := range [][]model.Passenger{
		nil,
		passengersFor(4),
		passengersFor(4, 12, 15),
	} {
		_, err := sess.WithPassengers(ps, model.ContactInfo{})
		assert.ErrorIs(t, err, ErrIncompleteBooking)
	}
}

func TestWithPassengersSeatNotInSelection(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4, 12}, 500)
	_, err := sess.WithPassengers(passengersFor(4, 99), model.ContactInfo{})
	assert.ErrorIs(t, err, ErrIncompleteBooking)
}

func TestWithPassengersDuplicateSeat(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4, 12}, 500)
	_, err := sess.WithPassengers(passengersFor(4, 4), model.ContactInfo{})
	assert.ErrorIs(t, err, ErrIncompleteBooking)
}

func TestWithPassengersOrdersBySelection(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{12, 4}, 500)
	out, err := sess.WithPassengers(passengersFor(4, 12), model.ContactInfo{})
	require.NoError(t, err)
	require.Len(t, out.Passengers, 2)
	assert.Equal(t, 12, out.Passengers[0].Seat)
	assert.Equal(t, 4, out.Passengers[1].Seat)
}

func TestWithConfirmationBeforePassengers(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4}, 250)
	_, err := sess.WithConfirmation("AT-20251201-ABC")
	assert.ErrorIs(t, err, ErrPrematureConfirmation)
}

func TestSaleRequestRequiresPassengers(t *testing.T) {
	sess := FromSeatSelection(testTrip(), []int{4}, 250)
	_, err := sess.SaleRequest()
	assert.ErrorIs(t, err, ErrIncompleteBooking)

	withP, err := sess.WithPassengers(passengersFor(4), model.ContactInfo{Email: "a@b.co", Phone: "5551234567"})
	require.NoError(t, err)
	req, err := withP.SaleRequest()
	require.NoError(t, err)
	assert.Equal(t, "TRIP-1001", req.TripID)
	assert.Equal(t, []int{4}, req.Seats)
	assert.Equal(t, "a@b.co", req.Contact.Email)
}

func TestEmptySessionHasNothing(t *testing.T) {
	var sess Session
	assert.False(t, sess.HasSeats())
	assert.False(t, sess.HasPassengers())
	assert.False(t, sess.Confirmed())
}

func TestFromSeatSelectionCopiesSeats(t *testing.T) {
	seats := []int{4, 12}
	sess := FromSeatSelection(testTrip(), seats, 500)
	seats[0] = 99
	assert.Equal(t, []int{4, 12}, sess.SelectedSeats)
}
