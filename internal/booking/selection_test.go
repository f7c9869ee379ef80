package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiguzelburak/bus-ticket/internal/model"
)

func seat(no int) model.Seat {
	return model.Seat{No: no, Status: model.SeatEmpty}
}

func taken(no int) model.Seat {
	return model.Seat{No: no, Status: model.SeatTaken}
}

func TestToggleAddAndRemove(t *testing.T) {
	sel := NewSelection()

	require.NoError(t, sel.Toggle(seat(7)))
	assert.Equal(t, []int{7}, sel.Seats())

	// Toggling again removes exactly that seat.
	require.NoError(t, sel.Toggle(seat(7)))
	assert.Equal(t, 0, sel.Len())
}

func TestTogglePreservesClickOrder(t *testing.T) {
	sel := NewSelection()
	for _, no := range []int{12, 3, 25} {
		require.NoError(t, sel.Toggle(seat(no)))
	}
	assert.Equal(t, []int{12, 3, 25}, sel.Seats())

	require.NoError(t, sel.Toggle(seat(3)))
	assert.Equal(t, []int{12, 25}, sel.Seats())
}

func TestToggleTakenSeatRejected(t *testing.T) {
	sel := NewSelection()
	err := sel.Toggle(taken(5))
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Equal(t, 0, sel.Len())
}

func TestToggleFifthSeatRejected(t *testing.T) {
	sel := NewSelection()
	for no := 1; no <= MaxSeats; no++ {
		require.NoError(t, sel.Toggle(seat(no)))
	}

	err := sel.Toggle(seat(99))
	assert.ErrorIs(t, err, ErrSelectionLimit)
	assert.Equal(t, []int{1, 2, 3, 4}, sel.Seats(), "selection unchanged after rejection")

	// Removal still works at the cap.
	require.NoError(t, sel.Toggle(seat(2)))
	assert.Equal(t, []int{1, 3, 4}, sel.Seats())
}

// The 2x3 reference bus: seats 1,3,4,5 free and seat 2 taken.  Filling
// all four free seats lands exactly on the cap, and the only seat left
// is rejected for being taken, not for the cap.
func TestSelectionCapBoundaryScenario(t *testing.T) {
	sel := NewSelection()
	for _, no := range []int{1, 3, 4, 5} {
		require.NoError(t, sel.Toggle(seat(no)))
	}
	assert.Equal(t, MaxSeats, sel.Len())
	assert.ErrorIs(t, sel.Toggle(taken(2)), ErrSeatUnavailable)
	assert.Equal(t, []int{1, 3, 4, 5}, sel.Seats())
}

func TestTotalIsLinear(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, 0.0, sel.Total(250))

	require.NoError(t, sel.Toggle(seat(4)))
	require.NoError(t, sel.Toggle(seat(12)))
	assert.Equal(t, 500.0, sel.Total(250))

	require.NoError(t, sel.Toggle(seat(12)))
	assert.Equal(t, 250.0, sel.Total(250))
}

func TestReset(t *testing.T) {
	sel := NewSelection()
	require.NoError(t, sel.Toggle(seat(1)))
	sel.Reset()
	assert.Equal(t, 0, sel.Len())
	assert.False(t, sel.Contains(1))
}
