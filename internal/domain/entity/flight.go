package entity

import "time"

// Airport identifies an airport by IATA code
type Airport struct {
	Code    string `json:"code" bson:"code"`
	Name    string `json:"name" bson:"name"`
	City    string `json:"city" bson:"city"`
	Country string `json:"country" bson:"country"`
}

// VehicleProfile describes the aircraft assigned to a flight, including the
// declarative seating plan used for seat allocation
type VehicleProfile struct {
	ID                      int    `json:"id" bson:"id"`
	ModelName               string `json:"modelName" bson:"modelName"`
	TotalSeats              int    `json:"totalSeats" bson:"totalSeats"`
	CrewLimit               int    `json:"crewLimit" bson:"crewLimit"`
	PassengerLimit          int    `json:"passengerLimit" bson:"passengerLimit"`
	SeatingPlanConfig       string `json:"seatingPlanConfig" bson:"seatingPlanConfig"`
	StandardMenuDescription string `json:"standardMenuDescription" bson:"standardMenuDescription"`
}

// SharedFlightDetails holds optional codeshare partner information
type SharedFlightDetails struct {
	LocalFlightNumber    string `json:"localFlightNumber" bson:"localFlightNumber"`
	PartnerCompanyName   string `json:"partnerCompanyName" bson:"partnerCompanyName"`
	PartnerFlightNumber  string `json:"partnerFlightNumber" bson:"partnerFlightNumber"`
	ConnectingFlightInfo string `json:"connectingFlightInfo" bson:"connectingFlightInfo"`
}

// FlightSnapshot is the read-only flight record fetched from the flight service
type FlightSnapshot struct {
	FlightNumber    string               `json:"flightNumber" bson:"flightNumber"`
	DateTime        time.Time            `json:"dateTime" bson:"dateTime"`
	DurationMinutes int                  `json:"durationMinutes" bson:"durationMinutes"`
	DistanceKm      int                  `json:"distanceKm" bson:"distanceKm"`
	Source          *Airport             `json:"source,omitempty" bson:"source,omitempty"`
	Destination     *Airport             `json:"destination,omitempty" bson:"destination,omitempty"`
	VehicleType     *VehicleProfile      `json:"vehicleType,omitempty" bson:"vehicleType,omitempty"`
	SharedDetails   *SharedFlightDetails `json:"sharedDetails,omitempty" bson:"sharedDetails,omitempty"`
}
