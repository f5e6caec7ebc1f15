package usecase

import (
	"context"
	"errors"

	"roster-service/internal/domain/entity"
	"roster-service/pkg/metrics"
)

// One registry-backed metrics instance for the whole package; promauto
// panics on duplicate registration.
var testMetrics = metrics.NewMetrics("usecase_test")

type upsertCall struct {
	flightID string
	roster   entity.Roster
}

type fakeRosterRepo struct {
	latest  map[string]*entity.StoredRoster
	all     []entity.StoredRoster
	err     error
	upserts []upsertCall
}

func newFakeRosterRepo() *fakeRosterRepo {
	return &fakeRosterRepo{latest: make(map[string]*entity.StoredRoster)}
}

func (f *fakeRosterRepo) FindLatestByFlightID(ctx context.Context, flightID string) (*entity.StoredRoster, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.latest[flightID], nil
}

func (f *fakeRosterRepo) FindAll(ctx context.Context) ([]entity.StoredRoster, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func (f *fakeRosterRepo) Upsert(ctx context.Context, flightID string, roster *entity.Roster) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, upsertCall{flightID: flightID, roster: *roster})
	f.latest[flightID] = &entity.StoredRoster{
		ID:            "fake",
		FlightID:      flightID,
		GeneratedDate: roster.GeneratedDate,
		Roster:        *roster,
	}
	return nil
}

type fakeFlightRepo struct {
	flights   map[string]*entity.FlightSnapshot
	shared    *entity.SharedFlightDetails
	sharedErr error
	list      []entity.FlightSnapshot
	listErr   error
	getCalls  []string
}

func (f *fakeFlightRepo) GetFlight(ctx context.Context, flightID string) (*entity.FlightSnapshot, error) {
	f.getCalls = append(f.getCalls, flightID)
	if flight, ok := f.flights[flightID]; ok {
		cp := *flight
		return &cp, nil
	}
	return nil, errors.New("404 from flight service")
}

func (f *fakeFlightRepo) GetSharedInfo(ctx context.Context, flightID string) (*entity.SharedFlightDetails, error) {
	if f.sharedErr != nil {
		return nil, f.sharedErr
	}
	if f.shared == nil {
		return nil, errors.New("no shared info")
	}
	return f.shared, nil
}

func (f *fakeFlightRepo) ListFlights(ctx context.Context) ([]entity.FlightSnapshot, error) {
	return f.list, f.listErr
}

type fakePilotRepo struct {
	pilots []entity.PilotCandidate
	err    error
}

func (f *fakePilotRepo) ListPilots(ctx context.Context) ([]entity.PilotCandidate, error) {
	return f.pilots, f.err
}

type fakeCrewRepo struct {
	crew []entity.CrewCandidate
	err  error
}

func (f *fakeCrewRepo) ListCabinCrew(ctx context.Context) ([]entity.CrewCandidate, error) {
	return f.crew, f.err
}

type fakePassengerRepo struct {
	passengers []entity.PassengerRecord
	err        error
}

func (f *fakePassengerRepo) ListByFlight(ctx context.Context, flightID string) ([]entity.PassengerRecord, error) {
	return f.passengers, f.err
}

func intPtr(v int) *int { return &v }
