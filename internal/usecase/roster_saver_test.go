package usecase

import (
	"context"
	"errors"
	"testing"

	"roster-service/internal/domain/entity"
	"roster-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRoster(flightID string) *entity.Roster {
	return &entity.Roster{
		FlightID: flightID,
		Pilots: []entity.PilotCandidate{
			{Name: "Cpt. Ahmet Demir", SeniorityLevel: entity.SenioritySenior},
			{Name: "F.O. Mehmet Celik", SeniorityLevel: entity.SeniorityJunior},
		},
	}
}

func newSaverFixture() (*RosterSaver, *fakeRosterRepo, *fakeRosterRepo) {
	sql := newFakeRosterRepo()
	mongo := newFakeRosterRepo()
	return NewRosterSaver(sql, mongo, testMetrics, logger.NewNop()), sql, mongo
}

func TestSave_RequiresTwoPilots(t *testing.T) {
	saver, _, _ := newSaverFixture()

	roster := validRoster("TK1001")
	roster.Pilots = roster.Pilots[:1]

	_, err := saver.Save(context.Background(), roster, BackendSQL)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Minimum 2 pilots required.", vErr.Reason)
}

func TestSave_RequiresResolvableFlightID(t *testing.T) {
	saver, _, _ := newSaverFixture()

	roster := validRoster("")
	_, err := saver.Save(context.Background(), roster, BackendSQL)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Flight ID is missing", vErr.Reason)
}

func TestSave_ResolvesIDFromNestedFlightInfo(t *testing.T) {
	saver, sql, _ := newSaverFixture()

	roster := validRoster("")
	roster.FlightInfo = &entity.FlightSnapshot{FlightNumber: "tk 2020"}

	backend, err := saver.Save(context.Background(), roster, BackendSQL)
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, backend)

	require.Len(t, sql.upserts, 1)
	assert.Equal(t, "TK2020", sql.upserts[0].flightID)
}

func TestSave_NormalizesIDInBothLocations(t *testing.T) {
	saver, sql, _ := newSaverFixture()

	roster := validRoster("tk 1001 ")
	roster.FlightInfo = &entity.FlightSnapshot{FlightNumber: "tk 1001 "}

	_, err := saver.Save(context.Background(), roster, BackendSQL)
	require.NoError(t, err)

	require.Len(t, sql.upserts, 1)
	saved := sql.upserts[0].roster
	assert.Equal(t, "TK1001", saved.FlightID)
	assert.Equal(t, "TK1001", saved.FlightInfo.FlightNumber)
	assert.False(t, saved.GeneratedDate.IsZero(), "save stamps the generation date")
}

func TestSave_SelectsBackend(t *testing.T) {
	saver, sql, mongo := newSaverFixture()

	backend, err := saver.Save(context.Background(), validRoster("TK1001"), "MONGO")
	require.NoError(t, err)
	assert.Equal(t, BackendMongo, backend)
	assert.Empty(t, sql.upserts)
	require.Len(t, mongo.upserts, 1)

	// Anything that is not mongo falls back to the relational store
	backend, err = saver.Save(context.Background(), validRoster("TK1001"), "")
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, backend)
	require.Len(t, sql.upserts, 1)
	assert.Len(t, mongo.upserts, 1, "backends stay independent")
}

func TestSave_SurfacesPersistenceErrors(t *testing.T) {
	saver, sql, _ := newSaverFixture()
	sql.err = errors.New("disk full")

	_, err := saver.Save(context.Background(), validRoster("TK1001"), BackendSQL)
	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "storage failures are not validation errors")
}
