package usecase

import (
	"context"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/pkg/logger"
	"roster-service/pkg/metrics"
	"roster-service/pkg/utils"
)

// RosterGenerator locates an existing roster across both storage backends
// or synthesizes a fresh one from the upstream domain services
type RosterGenerator struct {
	sqlRepo       repository.RosterRepository
	mongoRepo     repository.RosterRepository
	flightRepo    repository.FlightRepository
	pilotRepo     repository.PilotRepository
	crewRepo      repository.CrewRepository
	passengerRepo repository.PassengerRepository
	allocator     *SeatAllocator
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewRosterGenerator creates a new roster generator
func NewRosterGenerator(
	sqlRepo repository.RosterRepository,
	mongoRepo repository.RosterRepository,
	flightRepo repository.FlightRepository,
	pilotRepo repository.PilotRepository,
	crewRepo repository.CrewRepository,
	passengerRepo repository.PassengerRepository,
	allocator *SeatAllocator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *RosterGenerator {
	return &RosterGenerator{
		sqlRepo:       sqlRepo,
		mongoRepo:     mongoRepo,
		flightRepo:    flightRepo,
		pilotRepo:     pilotRepo,
		crewRepo:      crewRepo,
		passengerRepo: passengerRepo,
		allocator:     allocator,
		metrics:       metrics,
		logger:        logger,
	}
}

// Generate returns the roster for a flight. Unless forceNew is set, an
// existing roster found in either backend wins; otherwise the roster is
// synthesized from the upstream services. The result is not persisted.
func (g *RosterGenerator) Generate(ctx context.Context, rawID string, forceNew bool) (*entity.Roster, error) {
	flightID := utils.NormalizeFlightID(rawID)
	g.logger.Info("Processing roster", "flightId", flightID, "forceNew", forceNew)

	if !forceNew {
		if roster := g.lookup(ctx, flightID); roster != nil {
			return roster, nil
		}
	}

	g.logger.Info("No stored roster found, building from services", "flightId", flightID)
	start := time.Now()

	flight, err := g.fetchFlight(ctx, rawID, flightID)
	if err != nil {
		return nil, err
	}

	// Codeshare details are decoration; a miss just leaves them off
	if shared, err := g.flightRepo.GetSharedInfo(ctx, flightID); err == nil {
		flight.SharedDetails = shared
	}

	var vehicleModel string
	if flight.VehicleType != nil {
		vehicleModel = flight.VehicleType.ModelName
	}

	pilots := SelectPilots(g.fetchPilots(ctx), vehicleModel, flight.DistanceKm)
	crew := SelectCabinCrew(g.fetchCrew(ctx), vehicleModel)

	passengers := g.fetchPassengers(ctx, rawID)
	if flight.VehicleType != nil {
		g.allocator.Allocate(passengers, flight.VehicleType.SeatingPlanConfig)
	}

	roster := &entity.Roster{
		FlightID:      flightID,
		GeneratedDate: time.Now(),
		FlightInfo:    flight,
		Pilots:        pilots,
		CabinCrew:     crew,
		Passengers:    passengers,
		Menu:          BuildMenu(flight.VehicleType, crew),
	}

	g.metrics.RostersGenerated.Inc()
	g.metrics.GenerationTime.Observe(time.Since(start).Seconds())
	return roster, nil
}

// lookup searches the relational backend (indexed, then a normalizing full
// scan for legacy rows), then the document backend. Backend errors degrade
// to a miss; lookup never fails a generation request.
func (g *RosterGenerator) lookup(ctx context.Context, flightID string) *entity.Roster {
	stored, err := g.sqlRepo.FindLatestByFlightID(ctx, flightID)
	if err != nil {
		g.logger.Warn("SQL roster lookup failed", "flightId", flightID, "error", err)
	}
	if stored != nil {
		g.logger.Info("Found roster in SQL directly", "flightId", flightID)
		return &stored.Roster
	}

	all, err := g.sqlRepo.FindAll(ctx)
	if err != nil {
		g.logger.Warn("SQL roster scan failed", "error", err)
	}
	for i := range all {
		if utils.NormalizeFlightID(all[i].FlightID) == flightID {
			g.logger.Info("Found roster in SQL via scan",
				"flightId", flightID, "storedId", all[i].FlightID)
			return &all[i].Roster
		}
	}

	stored, err = g.mongoRepo.FindLatestByFlightID(ctx, flightID)
	if err != nil {
		g.logger.Warn("Mongo roster lookup failed", "flightId", flightID, "error", err)
	}
	if stored != nil {
		g.logger.Info("Found roster in Mongo", "flightId", flightID)
		return &stored.Roster
	}
	return nil
}

// fetchFlight tries the raw identifier first, then the normalized form.
// The client itself retries each attempt against the fallback address.
// Exhausting every attempt is the one fatal outcome of generation.
func (g *RosterGenerator) fetchFlight(ctx context.Context, rawID, flightID string) (*entity.FlightSnapshot, error) {
	flight, err := g.flightRepo.GetFlight(ctx, rawID)
	if err != nil && rawID != flightID {
		flight, err = g.flightRepo.GetFlight(ctx, flightID)
	}
	if err != nil {
		g.metrics.UpstreamErrors.WithLabelValues("flight").Inc()
		g.logger.Error("Flight fetch failed on every address", "flightId", flightID, "error", err)
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

func (g *RosterGenerator) fetchPilots(ctx context.Context) []entity.PilotCandidate {
	pilots, err := g.pilotRepo.ListPilots(ctx)
	if err != nil {
		g.metrics.UpstreamErrors.WithLabelValues("pilot").Inc()
		g.logger.Warn("Pilot pool unavailable, roster will have no pilots", "error", err)
		return nil
	}
	return pilots
}

func (g *RosterGenerator) fetchCrew(ctx context.Context) []entity.CrewCandidate {
	crew, err := g.crewRepo.ListCabinCrew(ctx)
	if err != nil {
		g.metrics.UpstreamErrors.WithLabelValues("crew").Inc()
		g.logger.Warn("Crew pool unavailable, roster will have no cabin crew", "error", err)
		return nil
	}
	return crew
}

func (g *RosterGenerator) fetchPassengers(ctx context.Context, rawID string) []entity.PassengerRecord {
	passengers, err := g.passengerRepo.ListByFlight(ctx, rawID)
	if err != nil {
		g.metrics.UpstreamErrors.WithLabelValues("passenger").Inc()
		g.logger.Warn("Passenger list unavailable, roster will have no passengers", "error", err)
		return []entity.PassengerRecord{}
	}
	return passengers
}
