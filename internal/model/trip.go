package model

import "time"

// Trip represents one scheduled departure: a company running a route
// between two agencies at a fixed time with a per-seat price.  Trips are
// read-only from the client's point of view; availability changes only
// through completed sales.
//
// Fields:
//  ID             – unique trip identifier (e.g. "TRIP-20251201-1").
//  Company        – operating bus company name.
//  From           – origin agency id.
//  To             – destination agency id.
//  Departure      – departure time with offset (serialized RFC 3339).
//  Arrival        – arrival time with offset.
//  Price          – per-seat price.
//  AvailableSeats – count of seats not yet taken.
type Trip struct {
	ID             string    `json:"id"`
	Company        string    `json:"company"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
}
