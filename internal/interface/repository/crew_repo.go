package repository

import (
	"context"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
)

// HTTPCrewRepository reads the cabin crew candidate pool from the crew service
type HTTPCrewRepository struct {
	upstreamClient
	baseURL string
}

// NewHTTPCrewRepository creates a new crew service client
func NewHTTPCrewRepository(baseURL, user, password string, timeout time.Duration) repository.CrewRepository {
	return &HTTPCrewRepository{
		upstreamClient: newUpstreamClient(timeout, user, password),
		baseURL:        baseURL,
	}
}

// ListCabinCrew fetches all cabin crew candidates
func (r *HTTPCrewRepository) ListCabinCrew(ctx context.Context) ([]entity.CrewCandidate, error) {
	var crew []entity.CrewCandidate
	if err := r.getJSON(ctx, r.baseURL, &crew); err != nil {
		return nil, err
	}
	return crew, nil
}
