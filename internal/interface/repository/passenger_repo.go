package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
)

// HTTPPassengerRepository reads passengers from the passenger service
type HTTPPassengerRepository struct {
	upstreamClient
	baseURL string
}

// NewHTTPPassengerRepository creates a new passenger service client
func NewHTTPPassengerRepository(baseURL, user, password string, timeout time.Duration) repository.PassengerRepository {
	return &HTTPPassengerRepository{
		upstreamClient: newUpstreamClient(timeout, user, password),
		baseURL:        baseURL,
	}
}

// ListByFlight fetches the passengers booked on a flight
func (r *HTTPPassengerRepository) ListByFlight(ctx context.Context, flightID string) ([]entity.PassengerRecord, error) {
	var passengers []entity.PassengerRecord
	u := fmt.Sprintf("%s/flight/%s", r.baseURL, url.PathEscape(flightID))
	if err := r.getJSON(ctx, u, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}
