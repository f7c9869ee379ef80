package wizard

import "github.com/adiguzelburak/bus-ticket/internal/booking"

// Resolver drives the wizard's progress: it tracks the current step,
// arbitrates stepper clicks against the session's populated frontier,
// and owns the one transition that reaches the terminal state.  All
// movement goes through explicit events; the resolver is never fed a
// parsed URL.
type Resolver struct {
	current Step
}

// NewResolver returns a resolver positioned on the search step.
func NewResolver() *Resolver {
	return &Resolver{current: Search}
}

// Current returns the step whose view should be shown.
func (r *Resolver) Current() Step { return r.current }

// Enter moves to the given step after checking its prerequisites.  On
// ErrIncompleteBooking the resolver falls back to Search, implementing
// the fail-closed redirect: a step must never render with missing
// session data.
func (r *Resolver) Enter(target Step, sess booking.Session) error {
	if err := Requires(target, sess); err != nil {
		r.current = Search
		return err
	}
	r.current = target
	return nil
}

// OnStepChange handles a stepper click on the given 1-based index.  It
// returns the resulting step and whether navigation happened.  Clicks
// are no-ops when the index is out of range, targets the reserved
// terminal display, or points past the session's populated frontier.
// Within the frontier the click lands directly on the target, which
// covers backward navigation to any already-populated step.
func (r *Resolver) OnStepChange(index int, sess booking.Session) (Step, bool) {
	target, ok := StepAt(index)
	if !ok || target == Confirmed {
		return r.current, false
	}
	if target.Index() > Frontier(sess).Index() {
		return r.current, false
	}
	r.current = target
	return r.current, true
}

// CompletePayment applies the payment outcome.  Only an explicit success
// on the payment step reaches Confirmed; a failed payment keeps the
// wizard on Payment so the user can resubmit.  The session must already
// carry its confirmation code for success to hold, preventing a success
// flag alone from faking a ticket.
func (r *Resolver) CompletePayment(success bool, sess booking.Session) Step {
	if r.current == Payment && success && sess.Confirmed() {
		r.current = Confirmed
	}
	return r.current
}

// Resolve derives the step to display for a state/flag combination
// without moving the resolver.  It exists for view layers that re-render
// from (current step, success flag) pairs: a true flag on a confirmed
// session shows the terminal display regardless of stepper position.
func (r *Resolver) Resolve(success bool, sess booking.Session) Step {
	if success && sess.Confirmed() {
		return Confirmed
	}
	return r.current
}
