package booking

import "github.com/adiguzelburak/bus-ticket/internal/model"

// Session is the bundle of data carried from one wizard step to the
// next.  It is strictly append-only: each step reads the accumulated
// session and hands a larger copy forward, so the trip, seats and total
// fixed at seat selection are never rewritten by later steps.  Sessions
// are plain values passed explicitly between step handlers; there is no
// ambient global holding one.
type Session struct {
	Trip          model.Trip
	SelectedSeats []int
	TotalAmount   float64
	Passengers    []model.Passenger
	Contact       model.ContactInfo
	PNR           string
}

// FromSeatSelection starts a session from a confirmed seat selection.
// Passenger data, contact and confirmation are absent at this point.
// The seat slice is copied so later mutation of the caller's slice
// cannot reach into the session.
func FromSeatSelection(trip model.Trip, seats []int, total float64) Session {
	selected := make([]int, len(seats))
	copy(selected, seats)
	return Session{
		Trip:          trip,
		SelectedSeats: selected,
		TotalAmount:   total,
	}
}

// WithPassengers extends the session with passenger and contact details.
// Passengers must match the selected seats exactly: same count, every
// passenger bound to a selected seat, no seat filled twice.  Anything
// else is ErrIncompleteBooking and the receiver is returned unchanged.
// The stored passenger order follows the seat selection order.
func (s Session) WithPassengers(passengers []model.Passenger, contact model.ContactInfo) (Session, error) {
	if len(s.SelectedSeats) == 0 || len(passengers) != len(s.SelectedSeats) {
		return s, ErrIncompleteBooking
	}
	bySeat := make(map[int]model.Passenger, len(passengers))
	for _, p := range passengers {
		if _, dup := bySeat[p.Seat]; dup {
			return s, ErrIncompleteBooking
		}
		bySeat[p.Seat] = p
	}
	ordered := make([]model.Passenger, 0, len(s.SelectedSeats))
	for _, no := range s.SelectedSeats {
		p, ok := bySeat[no]
		if !ok {
			return s, ErrIncompleteBooking
		}
		ordered = append(ordered, p)
	}
	s.Passengers = ordered
	s.Contact = contact
	return s, nil
}

// WithConfirmation records the PNR returned by a successful sale.  It is
// only valid once passenger data is present; applying it earlier returns
// ErrPrematureConfirmation with the receiver unchanged.
func (s Session) WithConfirmation(pnr string) (Session, error) {
	if !s.HasPassengers() || pnr == "" {
		return s, ErrPrematureConfirmation
	}
	s.PNR = pnr
	return s, nil
}

// HasSeats reports whether seat selection has completed for this session.
func (s Session) HasSeats() bool {
	return s.Trip.ID != "" && len(s.SelectedSeats) > 0
}

// HasPassengers reports whether passenger data has been collected.
func (s Session) HasPassengers() bool {
	return s.HasSeats() && len(s.Passengers) == len(s.SelectedSeats) && len(s.Passengers) > 0
}

// Confirmed reports whether the sale has completed and a PNR is present.
func (s Session) Confirmed() bool {
	return s.HasPassengers() && s.PNR != ""
}

// SaleRequest assembles the payload for the sale endpoint from the
// accumulated session.  It fails closed with ErrIncompleteBooking when
// passenger data is missing, mirroring the step guard: a payment attempt
// must never be built from a partial session.
func (s Session) SaleRequest() (model.TicketSaleRequest, error) {
	if !s.HasPassengers() {
		return model.TicketSaleRequest{}, ErrIncompleteBooking
	}
	seats := make([]int, len(s.SelectedSeats))
	copy(seats, s.SelectedSeats)
	passengers := make([]model.Passenger, len(s.Passengers))
	copy(passengers, s.Passengers)
	return model.TicketSaleRequest{
		TripID:     s.Trip.ID,
		Seats:      seats,
		Contact:    s.Contact,
		Passengers: passengers,
	}, nil
}
