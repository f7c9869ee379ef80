// Package wizard owns the single source of truth for "current step" in
// the booking flow.  Steps are an explicit ordered table indexed by a
// typed enum; nothing here derives step positions from route strings.
package wizard

import "github.com/adiguzelburak/bus-ticket/internal/booking"

// Step identifies one screen of the linear booking flow.
type Step int

const (
	Search Step = iota
	SeatSelection
	PassengerInfo
	Payment
	// Confirmed is the terminal success display.  It is reached only
	// through an explicit success signal, never by stepper navigation.
	Confirmed
)

// steps is the ordered table backing index lookups.  Display indexes are
// 1-based: Search is step 1, Confirmed is the reserved post-terminal
// index 5.
var steps = [...]Step{Search, SeatSelection, PassengerInfo, Payment, Confirmed}

var stepNames = map[Step]string{
	Search:        "search",
	SeatSelection: "seat-selection",
	PassengerInfo: "passenger-info",
	Payment:       "payment",
	Confirmed:     "confirmed",
}

// Index returns the 1-based display index of the step.
func (s Step) Index() int { return int(s) + 1 }

// String returns the stable name of the step, matching the page slugs of
// the booking UI.
func (s Step) String() string { return stepNames[s] }

// StepAt maps a 1-based display index back to its step.  The second
// return is false for indexes outside the table.
func StepAt(index int) (Step, bool) {
	if index < 1 || index > len(steps) {
		return Search, false
	}
	return steps[index-1], true
}

// Requires checks that the session carries the data the step depends on.
// Search and SeatSelection have no prerequisites (seat selection fetches
// its own trip).  Later steps fail closed with ErrIncompleteBooking so
// callers redirect to Search instead of rendering undefined fields.
func Requires(s Step, sess booking.Session) error {
	switch s {
	case PassengerInfo:
		if !sess.HasSeats() {
			return booking.ErrIncompleteBooking
		}
	case Payment:
		if !sess.HasPassengers() {
			return booking.ErrIncompleteBooking
		}
	case Confirmed:
		if !sess.Confirmed() {
			return booking.ErrIncompleteBooking
		}
	}
	return nil
}

// Frontier returns the furthest step the session's data allows entering.
// The stepper uses it to decide which lower steps are clickable and to
// swallow clicks on steps beyond the populated data.
func Frontier(sess booking.Session) Step {
	switch {
	case sess.Confirmed():
		return Confirmed
	case sess.HasPassengers():
		return Payment
	case sess.HasSeats():
		return PassengerInfo
	default:
		return Search
	}
}
