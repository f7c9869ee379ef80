package model

// Agency represents a terminal that trips depart from or arrive at.
// Agencies double as the searchable origin/destination reference list,
// so the id is what schedule search matches against.
//
// Fields:
//  ID   – short identifier used in schedule from/to fields (e.g. "IST").
//  Name – human readable terminal name shown in pickers and tickets.
type Agency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
