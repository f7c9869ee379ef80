// Package booking holds the client-local state accumulated across the
// wizard: the seat selection made on the seat map and the session record
// threaded from step to step.  These sentinel errors let callers (the
// wizard and its UI) distinguish the failure modes without string
// matching.  None of them corrupt state: a rejected operation leaves the
// selection or session exactly as it was.
package booking

import "errors"

// ErrSelectionLimit is returned when toggling would grow the selection
// past MaxSeats.  The selection is unchanged; UIs should surface a
// transient notice.
var ErrSelectionLimit = errors.New("selection limit exceeded")

// ErrSeatUnavailable is returned when the toggled seat is already taken.
// Taken seats can never enter a selection, not even as a removal no-op.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrIncompleteBooking is returned when a step is entered, or a session
// extended, without the data the step depends on.  Callers must fail
// closed and send the user back to the search step rather than render
// with missing fields.
var ErrIncompleteBooking = errors.New("incomplete booking data")

// ErrPrematureConfirmation is returned when a confirmation code is
// applied to a session that has no passenger data yet.
var ErrPrematureConfirmation = errors.New("confirmation before passenger data")
