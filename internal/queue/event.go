// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// TicketIssuedEvent is published after a successful ticket sale.  It
// carries enough for downstream consumers (notification, analytics,
// audit log) to act without querying the store.
type TicketIssuedEvent struct {
	PNR         string  `json:"pnr"`
	TripID      string  `json:"trip_id"`
	Company     string  `json:"company"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Departure   string  `json:"departure"`
	Seats       []int   `json:"seats"`
	TotalAmount float64 `json:"total_amount"`
	Email       string  `json:"email"`
	IssuedAt    string  `json:"issued_at"`
}
