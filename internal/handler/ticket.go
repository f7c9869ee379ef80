package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adiguzelburak/bus-ticket/internal/booking"
	"github.com/adiguzelburak/bus-ticket/internal/model"
	"github.com/adiguzelburak/bus-ticket/internal/queue"
	queue_publisher "github.com/adiguzelburak/bus-ticket/internal/service"
	"github.com/adiguzelburak/bus-ticket/internal/store"
	"github.com/adiguzelburak/bus-ticket/internal/utils"
)

// TicketHandler finalizes bookings: it validates a sale request against
// the trip's seat schema, records the sale, and issues the PNR and the
// signed ticket token.  There is deliberately no idempotency key: a
// resubmission after a failed attempt is a fresh sale, exactly like the
// original backend.  Clients distinguish outcomes by the ok field, so a
// declined sale answers 200 with ok=false while a malformed request
// answers 400.
type TicketHandler struct {
	Store  store.Store
	Secret string        // ticket token signing secret
	Delay  time.Duration // artificial payment latency

	// Now and Publish are injectable for tests.
	Now     func() time.Time
	Publish func(ctx context.Context, ev queue.TicketIssuedEvent) error
}

// NewTicketHandler constructs a TicketHandler with the real clock and
// queue publisher.
func NewTicketHandler(s store.Store, secret string, delay time.Duration) *TicketHandler {
	return &TicketHandler{
		Store:   s,
		Secret:  secret,
		Delay:   delay,
		Now:     time.Now,
		Publish: queue_publisher.PublishTicketIssued,
	}
}

func declined(c echo.Context, status int, msg string) error {
	return c.JSON(status, model.TicketSaleResponse{Ok: false, Message: msg})
}

// Sell handles POST /api/tickets/sell (and its /sales alias).  The
// response is delivered after the configured artificial delay to model
// payment latency; the delay is the only thing between accepting the
// request and the outcome, so callers must treat the call as one
// blocking round trip.
func (h *TicketHandler) Sell(c echo.Context) error {
	var req model.TicketSaleRequest
	if err := c.Bind(&req); err != nil {
		return declined(c, http.StatusBadRequest, "invalid request body")
	}
	if req.TripID == "" {
		return declined(c, http.StatusBadRequest, "tripId is required")
	}
	if len(req.Seats) == 0 || len(req.Seats) > booking.MaxSeats {
		return declined(c, http.StatusBadRequest, "between 1 and 4 seats per sale")
	}
	if msg := validateContact(req.Contact); msg != "" {
		return declined(c, http.StatusBadRequest, msg)
	}
	for _, p := range req.Passengers {
		if msg := validatePassenger(p); msg != "" {
			return declined(c, http.StatusBadRequest, msg)
		}
	}

	ctx := c.Request().Context()
	trip, err := h.Store.ScheduleByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, store.ErrTripNotFound) {
			return declined(c, http.StatusNotFound, "trip not found")
		}
		return declined(c, http.StatusInternalServerError, "database error")
	}
	schema, err := h.Store.SchemaByTrip(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, store.ErrSchemaNotFound) {
			return declined(c, http.StatusNotFound, "seat schema not found")
		}
		return declined(c, http.StatusInternalServerError, "database error")
	}

	// Re-run the wizard's own selection and session rules server-side.
	// A client that bypassed the wizard gets the same answers: taken
	// seats and over-cap selections are declined, passenger/seat
	// mismatches are rejected as incomplete.
	sel := booking.NewSelection()
	for _, no := range req.Seats {
		seat, ok := schema.SeatByNo(no)
		if !ok {
			return declined(c, http.StatusOK, "seat does not exist on this trip")
		}
		if err := sel.Toggle(seat); err != nil {
			return declined(c, http.StatusOK, "seat no longer available")
		}
	}
	if sel.Len() != len(req.Seats) {
		// A repeated number toggled itself back off.
		return declined(c, http.StatusBadRequest, "duplicate seat in request")
	}
	sess := booking.FromSeatSelection(trip, sel.Seats(), sel.Total(schema.UnitPrice))
	sess, err = sess.WithPassengers(req.Passengers, req.Contact)
	if err != nil {
		return declined(c, http.StatusBadRequest, "one passenger per selected seat is required")
	}

	// Simulated payment processing time.
	if h.Delay > 0 {
		select {
		case <-time.After(h.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	now := h.Now()
	pnr, err := utils.NewPNR(now)
	if err != nil {
		return declined(c, http.StatusInternalServerError, "could not allocate PNR")
	}
	if err := h.Store.RecordSale(ctx, req, pnr); err != nil {
		if errors.Is(err, store.ErrSeatConflict) {
			return declined(c, http.StatusOK, "seat no longer available")
		}
		return declined(c, http.StatusInternalServerError, "could not record sale")
	}
	sess, err = sess.WithConfirmation(pnr)
	if err != nil {
		return declined(c, http.StatusInternalServerError, "could not confirm booking")
	}

	token, err := utils.NewTicketToken(h.Secret, utils.Ticket{PNR: pnr, TripID: trip.ID, Seats: sess.SelectedSeats}, now)
	if err != nil {
		log.Printf("ticket: token signing failed for %s: %v", pnr, err)
		token = "" // the sale stands even without a token
	}

	if h.Publish != nil {
		ev := queue.TicketIssuedEvent{
			PNR:         pnr,
			TripID:      trip.ID,
			Company:     trip.Company,
			From:        trip.From,
			To:          trip.To,
			Departure:   trip.Departure.Format(time.RFC3339),
			Seats:       sess.SelectedSeats,
			TotalAmount: sess.TotalAmount,
			Email:       sess.Contact.Email,
			IssuedAt:    now.UTC().Format(time.RFC3339),
		}
		// Broker failures must not fail the sale.
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("ticket: publish ticket.issued failed for %s: %v", pnr, err)
		}
	}

	return c.JSON(http.StatusOK, model.TicketSaleResponse{
		Ok:      true,
		PNR:     pnr,
		Message: "Payment approved",
		Ticket:  token,
	})
}

// Verify handles GET /api/tickets/verify?token=.  It checks the token's
// signature and expiry and echoes the embedded sale details together
// with the trip, letting a ticket be validated without a sales lookup.
func (h *TicketHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token is required"})
	}
	ticket, err := utils.ParseTicketToken(h.Secret, token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid ticket"})
	}
	trip, err := h.Store.ScheduleByID(c.Request().Context(), ticket.TripID)
	if err != nil {
		if errors.Is(err, store.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"pnr":   ticket.PNR,
		"seats": ticket.Seats,
		"trip":  trip,
	})
}

func validateContact(ct model.ContactInfo) string {
	if !strings.Contains(ct.Email, "@") || len(ct.Email) < 5 {
		return "a valid contact email is required"
	}
	digits := 0
	for _, r := range ct.Phone {
		if r < '0' || r > '9' {
			return "phone must contain digits only"
		}
		digits++
	}
	if digits < 10 || digits > 11 {
		return "phone must be 10 or 11 digits"
	}
	return ""
}

func validatePassenger(p model.Passenger) string {
	if len(strings.TrimSpace(p.FirstName)) < 2 || len(strings.TrimSpace(p.LastName)) < 2 {
		return "passenger name is required"
	}
	if len(p.IDNo) != 11 {
		return "passenger id number must be 11 digits"
	}
	for _, r := range p.IDNo {
		if r < '0' || r > '9' {
			return "passenger id number must be 11 digits"
		}
	}
	if p.Gender != model.GenderMale && p.Gender != model.GenderFemale {
		return "passenger gender is required"
	}
	return ""
}
