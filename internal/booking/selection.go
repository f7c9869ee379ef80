package booking

import "github.com/adiguzelburak/bus-ticket/internal/model"

// MaxSeats is the hard cap on seats in one booking.
const MaxSeats = 4

// Selection is the ordered set of seat numbers the user has picked on
// the seat map.  Order is click order, not seat-number order, and it is
// preserved all the way into the sale request.  A Selection is created
// empty when the seat-selection step is entered and reset when the
// wizard restarts; it never touches the network.
type Selection struct {
	seats []int
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle flips the membership of the given seat.  A taken seat is
// rejected unconditionally with ErrSeatUnavailable.  Adding a seat to a
// full selection is rejected with ErrSelectionLimit.  Both rejections
// leave the selection unchanged.
func (s *Selection) Toggle(seat model.Seat) error {
	if seat.Status == model.SeatTaken {
		return ErrSeatUnavailable
	}
	for i, no := range s.seats {
		if no == seat.No {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return nil
		}
	}
	if len(s.seats) >= MaxSeats {
		return ErrSelectionLimit
	}
	s.seats = append(s.seats, seat.No)
	return nil
}

// Contains reports whether the seat number is currently selected.
func (s *Selection) Contains(no int) bool {
	for _, n := range s.seats {
		if n == no {
			return true
		}
	}
	return false
}

// Seats returns the selected seat numbers in click order.  The slice is
// a copy; mutating it does not affect the selection.
func (s *Selection) Seats() []int {
	out := make([]int, len(s.seats))
	copy(out, s.seats)
	return out
}

// Len returns the number of selected seats.
func (s *Selection) Len() int { return len(s.seats) }

// Reset empties the selection.
func (s *Selection) Reset() { s.seats = nil }

// Total prices the selection: unit price times seat count.  Both factors
// are plain multiplicands so the result is exact.
func (s *Selection) Total(unitPrice float64) float64 {
	return unitPrice * float64(len(s.seats))
}
