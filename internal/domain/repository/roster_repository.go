package repository

import (
	"context"

	"roster-service/internal/domain/entity"
)

// RosterRepository is the storage abstraction shared by the relational and
// document backends. Records are keyed by flight identifier with
// most-recent-generatedDate-wins read semantics; no cross-backend
// consistency is maintained.
type RosterRepository interface {
	// FindLatestByFlightID returns the most recent record whose stored
	// flight identifier equals flightID, or (nil, nil) when none exists.
	FindLatestByFlightID(ctx context.Context, flightID string) (*entity.StoredRoster, error)

	// FindAll returns every stored record, identifiers as stored.
	FindAll(ctx context.Context) ([]entity.StoredRoster, error)

	// Upsert overwrites the most recent record for flightID in place, or
	// inserts a new record when none exists.
	Upsert(ctx context.Context, flightID string, roster *entity.Roster) error
}
