package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlan = `{"sections": [{"className": "BUSINESS", "rows": 1, "layout": [1, 2], "letters": "AD"},{"className": "ECONOMY", "rows": 2, "layout": [2, 2], "letters": "AC"}]}`

func testFlight(number string) *entity.FlightSnapshot {
	return &entity.FlightSnapshot{
		FlightNumber: number,
		DateTime:     time.Now().Add(24 * time.Hour),
		DistanceKm:   1500,
		VehicleType: &entity.VehicleProfile{
			ModelName:               "Embraer E195",
			SeatingPlanConfig:       testPlan,
			StandardMenuDescription: "Sandwich & Juice",
		},
	}
}

func testPilotPool() []entity.PilotCandidate {
	return []entity.PilotCandidate{
		{Name: "Cpt. Hans Muller", AllowedVehicleType: "Embraer E195", AllowedRangeKm: 5000, SeniorityLevel: entity.SenioritySenior},
		{Name: "F.O. Klaus Weber", AllowedVehicleType: "Embraer E195", AllowedRangeKm: 4000, SeniorityLevel: entity.SeniorityJunior},
	}
}

func testCrewPool() []entity.CrewCandidate {
	return []entity.CrewCandidate{
		{Name: "Fatma Yilmaz", Type: entity.CrewTypeChief, AllowedVehicles: []string{"Embraer E195"}},
		{Name: "Chef Luigi", Type: entity.CrewTypeChef, AllowedVehicles: []string{"Embraer E195"}, ChefRecipes: []string{"Truffle Risotto", "Lasagna Bolognese"}},
		{Name: "Ali Kaya", Type: entity.CrewTypeRegular, AllowedVehicles: []string{"Embraer E195"}},
	}
}

type generatorFixture struct {
	sql       *fakeRosterRepo
	mongo     *fakeRosterRepo
	flight    *fakeFlightRepo
	pilot     *fakePilotRepo
	crew      *fakeCrewRepo
	passenger *fakePassengerRepo
	generator *RosterGenerator
}

func newGeneratorFixture() *generatorFixture {
	f := &generatorFixture{
		sql:       newFakeRosterRepo(),
		mongo:     newFakeRosterRepo(),
		flight:    &fakeFlightRepo{flights: map[string]*entity.FlightSnapshot{}},
		pilot:     &fakePilotRepo{pilots: testPilotPool()},
		crew:      &fakeCrewRepo{crew: testCrewPool()},
		passenger: &fakePassengerRepo{},
	}
	log := logger.NewNop()
	f.generator = NewRosterGenerator(
		f.sql, f.mongo, f.flight, f.pilot, f.crew, f.passenger,
		NewSeatAllocator(log), testMetrics, log)
	return f
}

func storedRoster(flightID string) *entity.StoredRoster {
	return &entity.StoredRoster{
		ID:            "stored-1",
		FlightID:      flightID,
		GeneratedDate: time.Now(),
		Roster:        entity.Roster{FlightID: flightID, Menu: []string{"Stored Menu"}},
	}
}

func TestGenerate_ReturnsStoredRosterFromSQL(t *testing.T) {
	f := newGeneratorFixture()
	f.sql.latest["TK1001"] = storedRoster("TK1001")

	roster, err := f.generator.Generate(context.Background(), "tk 1001", false)
	require.NoError(t, err)
	assert.Equal(t, "TK1001", roster.FlightID)
	assert.Equal(t, []string{"Stored Menu"}, roster.Menu)
	assert.Empty(t, f.flight.getCalls, "stored hit must short-circuit upstream fetches")
}

func TestGenerate_FindsLegacyRowViaScan(t *testing.T) {
	f := newGeneratorFixture()
	// Stored before identifier normalization existed
	f.sql.all = []entity.StoredRoster{*storedRoster("tk 1001")}

	roster, err := f.generator.Generate(context.Background(), "TK1001", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stored Menu"}, roster.Menu)
	assert.Empty(t, f.flight.getCalls)
}

func TestGenerate_FallsThroughToMongo(t *testing.T) {
	f := newGeneratorFixture()
	f.mongo.latest["TK1001"] = storedRoster("TK1001")

	roster, err := f.generator.Generate(context.Background(), "TK1001", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stored Menu"}, roster.Menu)
}

func TestGenerate_ForceNewBypassesLookup(t *testing.T) {
	f := newGeneratorFixture()
	f.sql.latest["TK1001"] = storedRoster("TK1001")
	f.flight.flights["TK1001"] = testFlight("TK1001")

	roster, err := f.generator.Generate(context.Background(), "TK1001", true)
	require.NoError(t, err)
	assert.NotEqual(t, []string{"Stored Menu"}, roster.Menu)
	assert.NotEmpty(t, f.flight.getCalls)
}

func TestGenerate_LookupErrorDegradesToSynthesis(t *testing.T) {
	f := newGeneratorFixture()
	f.sql.err = errors.New("sql backend down")
	f.mongo.err = errors.New("mongo backend down")
	f.flight.flights["TK1001"] = testFlight("TK1001")

	roster, err := f.generator.Generate(context.Background(), "TK1001", false)
	require.NoError(t, err)
	assert.Equal(t, "TK1001", roster.FlightID)
}

func TestGenerate_RetriesNormalizedIDAfterRawMiss(t *testing.T) {
	f := newGeneratorFixture()
	f.flight.flights["TK1001"] = testFlight("TK1001")

	roster, err := f.generator.Generate(context.Background(), "tk 1001", false)
	require.NoError(t, err)
	assert.Equal(t, "TK1001", roster.FlightID)
	assert.Equal(t, []string{"tk 1001", "TK1001"}, f.flight.getCalls)
}

func TestGenerate_FlightNotFound(t *testing.T) {
	f := newGeneratorFixture()

	_, err := f.generator.Generate(context.Background(), "TK9999", false)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestGenerate_SynthesizesFullRoster(t *testing.T) {
	f := newGeneratorFixture()
	f.flight.flights["TK1001"] = testFlight("TK1001")
	f.flight.shared = &entity.SharedFlightDetails{PartnerCompanyName: "Star Partner"}
	f.passenger.passengers = []entity.PassengerRecord{
		{ID: 1, Name: "James Bond", Age: intPtr(40), SeatType: entity.ClassBusiness, SeatNumber: "1A"},
		{ID: 2, Name: "Ali Demir", Age: intPtr(30), SeatType: entity.ClassEconomy},
	}

	roster, err := f.generator.Generate(context.Background(), "TK1001", false)
	require.NoError(t, err)

	assert.Equal(t, "TK1001", roster.FlightID)
	require.NotNil(t, roster.FlightInfo)
	require.NotNil(t, roster.FlightInfo.SharedDetails)
	assert.Equal(t, "Star Partner", roster.FlightInfo.SharedDetails.PartnerCompanyName)

	require.Len(t, roster.Pilots, 2)
	assert.Equal(t, "Cpt. Hans Muller", roster.Pilots[0].Name)
	assert.Equal(t, "F.O. Klaus Weber", roster.Pilots[1].Name)

	require.Len(t, roster.CabinCrew, 3)
	assert.Contains(t, roster.Menu, "Sandwich & Juice")
	assert.Contains(t, roster.Menu, "Chef's Special: Truffle Risotto")

	// The unseated economy passenger got the first open economy seat
	require.Len(t, roster.Passengers, 2)
	assert.Equal(t, "1A", roster.Passengers[0].SeatNumber)
	assert.Equal(t, "2A", roster.Passengers[1].SeatNumber)
	assert.True(t, roster.Passengers[1].AutoAssigned)
}

func TestGenerate_DegradedSectionsStillSucceed(t *testing.T) {
	f := newGeneratorFixture()
	f.flight.flights["TK1001"] = testFlight("TK1001")
	f.pilot.err = errors.New("pilot service down")
	f.crew.err = errors.New("crew service down")
	f.passenger.err = errors.New("passenger service down")
	f.flight.sharedErr = errors.New("shared info down")

	roster, err := f.generator.Generate(context.Background(), "TK1001", false)
	require.NoError(t, err)
	assert.Empty(t, roster.Pilots)
	assert.Empty(t, roster.CabinCrew)
	assert.Empty(t, roster.Passengers)
	assert.Nil(t, roster.FlightInfo.SharedDetails)
	assert.Equal(t, []string{"Sandwich & Juice"}, roster.Menu)
}
