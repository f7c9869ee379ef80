package model

// TicketSaleRequest is the payload submitted to the sale endpoint once
// the wizard has collected seats, passengers and contact details.
type TicketSaleRequest struct {
	TripID     string      `json:"tripId"`
	Seats      []int       `json:"seats"`
	Contact    ContactInfo `json:"contact"`
	Passengers []Passenger `json:"passengers"`
}

// TicketSaleResponse is the sale endpoint's outcome.  Ok reports whether
// payment was accepted; PNR carries the confirmation code on success.
// Ticket is a signed token embedding the sale details so the ticket can
// later be verified without a lookup.
type TicketSaleResponse struct {
	Ok      bool   `json:"ok"`
	PNR     string `json:"pnr"`
	Message string `json:"message"`
	Ticket  string `json:"ticket,omitempty"`
}
