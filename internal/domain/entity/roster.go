package entity

import "time"

// Roster is the aggregated bundle of flight info, selected pilots and crew,
// passengers and menu for one flight. The same shape is accepted on save,
// so every field is optional apart from what validation enforces.
type Roster struct {
	FlightID      string            `json:"flightId" bson:"flightId"`
	GeneratedDate time.Time         `json:"generatedDate" bson:"generatedDate"`
	FlightInfo    *FlightSnapshot   `json:"flightInfo,omitempty" bson:"flightInfo,omitempty"`
	Pilots        []PilotCandidate  `json:"pilots" bson:"pilots"`
	CabinCrew     []CrewCandidate   `json:"cabinCrew" bson:"cabinCrew"`
	Passengers    []PassengerRecord `json:"passengers" bson:"passengers"`
	Menu          []string          `json:"menu" bson:"menu"`
}

// StoredRoster is a persisted roster record as held by either backend.
// FlightID is kept as stored, which may predate identifier normalization.
type StoredRoster struct {
	ID            string
	FlightID      string
	GeneratedDate time.Time
	Roster        Roster
}
