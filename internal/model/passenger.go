package model

// Gender values accepted on passenger records.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Passenger holds the identity details collected for one selected seat.
// Every passenger is bound to exactly one seat number from the selection.
type Passenger struct {
	Seat      int    `json:"seat"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IDNo      string `json:"idNo"`
	Gender    string `json:"gender"`
}

// ContactInfo is the buyer's contact details, collected once per booking
// regardless of passenger count.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
