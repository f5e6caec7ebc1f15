package usecase

import (
	"context"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/pkg/logger"
	"roster-service/pkg/utils"
)

// FlightCatalog merges the upstream flight list with roster-only flights
// discovered in the relational store
type FlightCatalog struct {
	flightRepo repository.FlightRepository
	sqlRepo    repository.RosterRepository
	logger     logger.Logger
}

// NewFlightCatalog creates a new flight catalog
func NewFlightCatalog(flightRepo repository.FlightRepository, sqlRepo repository.RosterRepository, logger logger.Logger) *FlightCatalog {
	return &FlightCatalog{
		flightRepo: flightRepo,
		sqlRepo:    sqlRepo,
		logger:     logger,
	}
}

// ListFlights returns upstream flights plus any flight that only exists as
// a saved roster, deduplicated by normalized flight number. Either source
// failing degrades to whatever the other one yields.
func (c *FlightCatalog) ListFlights(ctx context.Context) []entity.FlightSnapshot {
	combined := make([]entity.FlightSnapshot, 0)
	seen := make(map[string]bool)

	flights, err := c.flightRepo.ListFlights(ctx)
	if err != nil {
		c.logger.Warn("Flight list unavailable from flight service", "error", err)
	}
	for _, f := range flights {
		combined = append(combined, f)
		if f.FlightNumber != "" {
			seen[utils.NormalizeFlightID(f.FlightNumber)] = true
		}
	}

	stored, err := c.sqlRepo.FindAll(ctx)
	if err != nil {
		c.logger.Warn("Roster scan unavailable for flight list", "error", err)
	}
	for i := range stored {
		info := stored[i].Roster.FlightInfo
		if info == nil || info.FlightNumber == "" {
			continue
		}
		norm := utils.NormalizeFlightID(info.FlightNumber)
		if seen[norm] {
			continue
		}
		combined = append(combined, *info)
		seen[norm] = true
	}
	return combined
}
