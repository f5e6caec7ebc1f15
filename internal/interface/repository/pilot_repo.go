package repository

import (
	"context"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
)

// HTTPPilotRepository reads the pilot candidate pool from the pilot service
type HTTPPilotRepository struct {
	upstreamClient
	baseURL string
}

// NewHTTPPilotRepository creates a new pilot service client
func NewHTTPPilotRepository(baseURL, user, password string, timeout time.Duration) repository.PilotRepository {
	return &HTTPPilotRepository{
		upstreamClient: newUpstreamClient(timeout, user, password),
		baseURL:        baseURL,
	}
}

// ListPilots fetches all pilot candidates
func (r *HTTPPilotRepository) ListPilots(ctx context.Context) ([]entity.PilotCandidate, error) {
	var pilots []entity.PilotCandidate
	if err := r.getJSON(ctx, r.baseURL, &pilots); err != nil {
		return nil, err
	}
	return pilots, nil
}
