package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ticketTTL bounds how long a ticket token verifies after the sale.
// Long enough to outlive any bookable departure in the schedule window.
const ticketTTL = 30 * 24 * time.Hour

// ErrInvalidTicket is returned when a ticket token fails verification.
var ErrInvalidTicket = errors.New("invalid ticket token")

// Ticket is the verified content of a ticket token.
type Ticket struct {
	PNR    string `json:"pnr"`
	TripID string `json:"tripId"`
	Seats  []int  `json:"seats"`
}

// NewTicketToken signs an HS256 token embedding the sale details.  The
// token rides along in the sale response so a ticket can later be
// verified without a database lookup.
func NewTicketToken(secret string, t Ticket, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"pnr":   t.PNR,
		"trip":  t.TripID,
		"seats": t.Seats,
		"iat":   now.UTC().Unix(),
		"exp":   now.UTC().Add(ticketTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseTicketToken verifies the signature and expiry and returns the
// embedded ticket.  Any structural or signature problem maps to
// ErrInvalidTicket; callers do not need to distinguish further.
func ParseTicketToken(secret, token string) (Ticket, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidTicket
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return Ticket{}, ErrInvalidTicket
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Ticket{}, ErrInvalidTicket
	}
	pnr, _ := claims["pnr"].(string)
	trip, _ := claims["trip"].(string)
	if pnr == "" || trip == "" {
		return Ticket{}, ErrInvalidTicket
	}
	out := Ticket{PNR: pnr, TripID: trip}
	if raw, ok := claims["seats"].([]interface{}); ok {
		for _, v := range raw {
			if f, ok := v.(float64); ok {
				out.Seats = append(out.Seats, int(f))
			}
		}
	}
	return out, nil
}
