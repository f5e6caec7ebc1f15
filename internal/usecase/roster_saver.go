package usecase

import (
	"context"
	"strings"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/pkg/logger"
	"roster-service/pkg/metrics"
	"roster-service/pkg/utils"
)

// Storage backend names accepted by Save
const (
	BackendSQL   = "sql"
	BackendMongo = "mongo"
)

// RosterSaver validates a roster payload and upserts it into the chosen
// backend. The two backends are wholly independent; saving to one never
// touches the other.
type RosterSaver struct {
	sqlRepo   repository.RosterRepository
	mongoRepo repository.RosterRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewRosterSaver creates a new roster saver
func NewRosterSaver(sqlRepo, mongoRepo repository.RosterRepository, metrics *metrics.Metrics, logger logger.Logger) *RosterSaver {
	return &RosterSaver{
		sqlRepo:   sqlRepo,
		mongoRepo: mongoRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// Save validates, normalizes and persists a roster. The normalized flight
// identifier is written back into both the top-level field and the nested
// flight info before storing. Returns the backend actually written.
func (s *RosterSaver) Save(ctx context.Context, roster *entity.Roster, dbType string) (string, error) {
	if len(roster.Pilots) < 2 {
		return "", &ValidationError{Reason: "Minimum 2 pilots required."}
	}

	rawID := roster.FlightID
	if rawID == "" && roster.FlightInfo != nil {
		rawID = roster.FlightInfo.FlightNumber
	}
	if rawID == "" {
		return "", &ValidationError{Reason: "Flight ID is missing"}
	}

	flightID := utils.NormalizeFlightID(rawID)
	roster.FlightID = flightID
	if roster.FlightInfo != nil {
		roster.FlightInfo.FlightNumber = flightID
	}
	roster.GeneratedDate = time.Now()

	backend := BackendSQL
	repo := s.sqlRepo
	if strings.EqualFold(dbType, BackendMongo) {
		backend = BackendMongo
		repo = s.mongoRepo
	}

	s.logger.Info("Saving roster", "flightId", flightID, "rawId", rawID, "backend", backend)
	if err := repo.Upsert(ctx, flightID, roster); err != nil {
		return "", err
	}

	s.metrics.RostersSaved.WithLabelValues(backend).Inc()
	return backend, nil
}
