package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/pkg/logger"
)

// HTTPFlightRepository reads flight records from the flight service.
// Single-flight lookups additionally retry against a fallback base URL,
// because the flight record is the one essential input to generation.
type HTTPFlightRepository struct {
	upstreamClient
	baseURL     string
	fallbackURL string
	logger      logger.Logger
}

// NewHTTPFlightRepository creates a new flight service client
func NewHTTPFlightRepository(baseURL, fallbackURL, user, password string, timeout time.Duration, logger logger.Logger) repository.FlightRepository {
	return &HTTPFlightRepository{
		upstreamClient: newUpstreamClient(timeout, user, password),
		baseURL:        baseURL,
		fallbackURL:    fallbackURL,
		logger:         logger,
	}
}

// GetFlight fetches a single flight, retrying against the fallback address
func (r *HTTPFlightRepository) GetFlight(ctx context.Context, flightID string) (*entity.FlightSnapshot, error) {
	var flight entity.FlightSnapshot
	err := r.getJSON(ctx, fmt.Sprintf("%s/%s", r.baseURL, url.PathEscape(flightID)), &flight)
	if err == nil {
		return &flight, nil
	}

	if r.fallbackURL == "" {
		return nil, err
	}
	r.logger.Warn("Flight fetch failed, retrying against fallback address",
		"flightId", flightID, "error", err)

	if fbErr := r.getJSON(ctx, fmt.Sprintf("%s/%s", r.fallbackURL, url.PathEscape(flightID)), &flight); fbErr != nil {
		return nil, fbErr
	}
	return &flight, nil
}

// GetSharedInfo fetches the optional codeshare record for a flight
func (r *HTTPFlightRepository) GetSharedInfo(ctx context.Context, flightID string) (*entity.SharedFlightDetails, error) {
	var shared entity.SharedFlightDetails
	u := fmt.Sprintf("%s/%s/shared-info", r.baseURL, url.PathEscape(flightID))
	if err := r.getJSON(ctx, u, &shared); err != nil {
		return nil, err
	}
	return &shared, nil
}

// ListFlights fetches the full flight list
func (r *HTTPFlightRepository) ListFlights(ctx context.Context) ([]entity.FlightSnapshot, error) {
	var flights []entity.FlightSnapshot
	if err := r.getJSON(ctx, r.baseURL, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}
