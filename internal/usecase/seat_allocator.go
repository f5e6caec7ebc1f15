package usecase

import (
	"strconv"
	"strings"

	"roster-service/internal/domain/entity"
	"roster-service/pkg/logger"
)

// SeatAllocator fills in seat assignments for passengers that lack one,
// honoring travel-party grouping and cabin-class preference
type SeatAllocator struct {
	logger logger.Logger
}

// NewSeatAllocator creates a new seat allocator
func NewSeatAllocator(logger logger.Logger) *SeatAllocator {
	return &SeatAllocator{logger: logger}
}

// Allocate assigns seats in place. A malformed seating plan aborts the
// whole allocation without touching any passenger; callers never see an
// error, the roster just keeps the seat state it arrived with.
func (a *SeatAllocator) Allocate(passengers []entity.PassengerRecord, seatingPlanConfig string) {
	plan, err := entity.ParseSeatingPlan(seatingPlanConfig)
	if err != nil {
		a.logger.Warn("Seat allocation skipped", "error", err)
		return
	}

	byID := make(map[int64]*entity.PassengerRecord, len(passengers))
	occupied := make(map[string]bool)
	var unseated []*entity.PassengerRecord
	unseatedSet := make(map[int64]bool)

	for i := range passengers {
		p := &passengers[i]
		if p.ID != 0 {
			byID[p.ID] = p
		}
		// Infants travel on a lap, never in a seat of their own
		if p.EffectiveAge() <= 2 {
			p.SeatNumber = entity.SeatInfantLap
			continue
		}
		if p.SeatNumber != "" {
			occupied[p.SeatNumber] = true
		} else {
			unseated = append(unseated, p)
			unseatedSet[p.ID] = true
		}
	}

	business, economy := buildSeatPools(plan, occupied)

	processed := make(map[int64]bool)
	for _, anchor := range unseated {
		if anchor.ID == 0 || processed[anchor.ID] {
			continue
		}

		// The party is the anchor plus the still-unseated passengers on
		// the anchor's own affiliation list; the relation is not chased
		// transitively or symmetrically.
		party := []*entity.PassengerRecord{anchor}
		processed[anchor.ID] = true
		for _, affID := range anchor.AffiliatedPassengerIDs {
			if processed[affID] || !unseatedSet[affID] {
				continue
			}
			if member, ok := byID[affID]; ok {
				party = append(party, member)
				processed[affID] = true
			}
		}

		pool := &economy
		if strings.EqualFold(anchor.SeatType, entity.ClassBusiness) {
			pool = &business
		}

		for _, member := range party {
			if len(*pool) == 0 {
				member.SeatNumber = entity.SeatStandby
				continue
			}
			member.SeatNumber = (*pool)[0]
			member.AutoAssigned = true
			*pool = (*pool)[1:]
		}
	}
}

// buildSeatPools walks the plan's sections in declared order, producing
// row+letter tokens with the row counter continuing across sections, and
// partitions the unoccupied tokens by section class.
func buildSeatPools(plan *entity.SeatingPlan, occupied map[string]bool) (business, economy []string) {
	row := 1
	for _, section := range plan.Sections {
		isBusiness := strings.ToUpper(section.ClassName) == entity.ClassBusiness
		for r := 0; r < section.Rows; r++ {
			for _, letter := range section.Letters {
				seat := strconv.Itoa(row) + string(letter)
				if occupied[seat] {
					continue
				}
				if isBusiness {
					business = append(business, seat)
				} else {
					economy = append(economy, seat)
				}
			}
			row++
		}
	}
	return business, economy
}
