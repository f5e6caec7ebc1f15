package repository

import (
	"context"

	"roster-service/internal/domain/entity"
)

// FlightRepository reads flight records from the flight service
type FlightRepository interface {
	GetFlight(ctx context.Context, flightID string) (*entity.FlightSnapshot, error)
	GetSharedInfo(ctx context.Context, flightID string) (*entity.SharedFlightDetails, error)
	ListFlights(ctx context.Context) ([]entity.FlightSnapshot, error)
}

// PilotRepository reads the pilot candidate pool from the pilot service
type PilotRepository interface {
	ListPilots(ctx context.Context) ([]entity.PilotCandidate, error)
}

// CrewRepository reads the cabin crew candidate pool from the crew service
type CrewRepository interface {
	ListCabinCrew(ctx context.Context) ([]entity.CrewCandidate, error)
}

// PassengerRepository reads passengers for a flight from the passenger service
type PassengerRepository interface {
	ListByFlight(ctx context.Context, flightID string) ([]entity.PassengerRecord, error)
}
