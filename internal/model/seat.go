package model

// CellType classifies one position of a seat layout grid.  The numeric
// values are part of the wire format: seat schemas serialize cells as a
// flat array of these codes.
type CellType int

const (
	// CellEmpty marks a structurally empty position (no seat, no aisle).
	CellEmpty CellType = 0
	// CellSeat marks a position eligible to hold a seat.  A CellSeat
	// position without a matching Seat record is a visual gap, not an
	// error (e.g. the space reserved next to the driver).
	CellSeat CellType = 1
	// CellAisle marks the walkway between seat columns.
	CellAisle CellType = 2
)

// SeatStatus is the availability state of a concrete seat.
type SeatStatus string

const (
	SeatEmpty    SeatStatus = "empty"
	SeatTaken    SeatStatus = "taken"
	SeatReserved SeatStatus = "reserved"
)

// SeatLayout describes the rectangular grid of a bus interior.  Cells is
// row-major with length Rows*Cols.
type SeatLayout struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells []CellType `json:"cells"`
}

// Seat is one concrete, numbered seat placed on the layout grid.  Row and
// Col are 1-indexed and must land on a CellSeat position of the layout.
//
// Fields:
//  No     – seat number, unique within a trip's schema.
//  Row    – 1-indexed grid row.
//  Col    – 1-indexed grid column.
//  Status – current availability.
type Seat struct {
	No     int        `json:"no"`
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Status SeatStatus `json:"status"`
}

// SeatSchema bundles everything needed to render and price the seat map
// of one trip: the layout grid, the concrete seats keyed by number, and
// the unit price.  Schemas are fetched read-only per trip and never
// mutated by the client, only re-fetched.
type SeatSchema struct {
	TripID    string     `json:"tripId"`
	Layout    SeatLayout `json:"layout"`
	Seats     []Seat     `json:"seats"`
	UnitPrice float64    `json:"unitPrice"`
}

// SeatByNo returns the seat with the given number, or false when the
// schema has no such seat.
func (s *SeatSchema) SeatByNo(no int) (Seat, bool) {
	for _, seat := range s.Seats {
		if seat.No == no {
			return seat, true
		}
	}
	return Seat{}, false
}
