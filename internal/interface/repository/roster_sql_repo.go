package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRosterRepository implements RosterRepository on the relational backend
type GormRosterRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// RosterRow is the GORM model for database mapping
type RosterRow struct {
	ID            string    `gorm:"column:id;primaryKey"`
	FlightID      string    `gorm:"column:flight_id;index"`
	GeneratedDate time.Time `gorm:"column:generated_date"`
	RosterData    string    `gorm:"column:roster_data;type:text"`
}

// TableName overrides the default table name
func (RosterRow) TableName() string {
	return "rosters"
}

// NewGormRosterRepository creates a new GORM roster repository
func NewGormRosterRepository(db *gorm.DB, logger logger.Logger) (repository.RosterRepository, error) {
	if err := db.AutoMigrate(&RosterRow{}); err != nil {
		return nil, fmt.Errorf("migrate rosters table: %w", err)
	}
	return &GormRosterRepository{db: db, logger: logger}, nil
}

// FindLatestByFlightID returns the most recent record for the stored flight id
func (r *GormRosterRepository) FindLatestByFlightID(ctx context.Context, flightID string) (*entity.StoredRoster, error) {
	var row RosterRow
	result := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("generated_date DESC").
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rowToStored(&row)
}

// FindAll returns every stored roster record, identifiers as stored.
// Rows whose payload no longer decodes are skipped.
func (r *GormRosterRepository) FindAll(ctx context.Context) ([]entity.StoredRoster, error) {
	var rows []RosterRow
	if result := r.db.WithContext(ctx).Find(&rows); result.Error != nil {
		return nil, result.Error
	}

	stored := make([]entity.StoredRoster, 0, len(rows))
	for i := range rows {
		rec, err := rowToStored(&rows[i])
		if err != nil {
			r.logger.Warn("Skipping undecodable roster row", "id", rows[i].ID, "error", err)
			continue
		}
		stored = append(stored, *rec)
	}
	return stored, nil
}

// Upsert overwrites the most recent record for flightID in place, or
// inserts a new row when none exists
func (r *GormRosterRepository) Upsert(ctx context.Context, flightID string, roster *entity.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	var row RosterRow
	result := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("generated_date DESC").
		First(&row)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		row = RosterRow{ID: uuid.NewString(), FlightID: flightID}
	}

	row.GeneratedDate = roster.GeneratedDate
	row.RosterData = string(data)
	return r.db.WithContext(ctx).Save(&row).Error
}

func rowToStored(row *RosterRow) (*entity.StoredRoster, error) {
	var roster entity.Roster
	if err := json.Unmarshal([]byte(row.RosterData), &roster); err != nil {
		return nil, fmt.Errorf("decode roster data: %w", err)
	}
	return &entity.StoredRoster{
		ID:            row.ID,
		FlightID:      row.FlightID,
		GeneratedDate: row.GeneratedDate,
		Roster:        roster,
	}, nil
}
