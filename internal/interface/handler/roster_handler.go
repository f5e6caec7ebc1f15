package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"
	"roster-service/internal/usecase"
	"roster-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RosterHandler exposes the roster REST surface
type RosterHandler struct {
	generator *usecase.RosterGenerator
	saver     *usecase.RosterSaver
	catalog   *usecase.FlightCatalog
	pilotRepo repository.PilotRepository
	crewRepo  repository.CrewRepository
	logger    logger.Logger
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(
	generator *usecase.RosterGenerator,
	saver *usecase.RosterSaver,
	catalog *usecase.FlightCatalog,
	pilotRepo repository.PilotRepository,
	crewRepo repository.CrewRepository,
	logger logger.Logger,
) *RosterHandler {
	return &RosterHandler{
		generator: generator,
		saver:     saver,
		catalog:   catalog,
		pilotRepo: pilotRepo,
		crewRepo:  crewRepo,
		logger:    logger,
	}
}

// Generate handles GET /api/roster/generate/:flightId
func (h *RosterHandler) Generate(c *gin.Context) {
	forceNew, _ := strconv.ParseBool(c.Query("forceNew"))

	roster, err := h.generator.Generate(c.Request.Context(), c.Param("flightId"), forceNew)
	if err != nil {
		if errors.Is(err, usecase.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		h.logger.Error("Roster generation failed", "flightId", c.Param("flightId"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roster)
}

// Save handles POST /api/roster/save?dbType=sql|mongo
func (h *RosterHandler) Save(c *gin.Context) {
	var roster entity.Roster
	if err := c.ShouldBindJSON(&roster); err != nil {
		c.String(http.StatusBadRequest, "Invalid roster payload: %s", err.Error())
		return
	}

	backend, err := h.saver.Save(c.Request.Context(), &roster, c.DefaultQuery("dbType", usecase.BackendSQL))
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			c.String(http.StatusBadRequest, vErr.Reason)
			return
		}
		h.logger.Error("Roster save failed", "flightId", roster.FlightID, "error", err)
		c.String(http.StatusInternalServerError, "Save failed: %s", err.Error())
		return
	}
	c.String(http.StatusOK, "Saved to %s", backend)
}

// ListFlights handles GET /api/roster/flights
func (h *RosterHandler) ListFlights(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListFlights(c.Request.Context()))
}

// CandidatePilots handles GET /api/roster/candidates/pilots/:vehicleType.
// The pool is passed through unfiltered; vehicleType and the optional
// date/currentFlightId query params are accepted for interface
// compatibility with the upstream-facing UI.
func (h *RosterHandler) CandidatePilots(c *gin.Context) {
	pilots, err := h.pilotRepo.ListPilots(c.Request.Context())
	if err != nil {
		h.logger.Warn("Pilot pool unavailable", "error", err)
		c.JSON(http.StatusOK, []entity.PilotCandidate{})
		return
	}
	c.JSON(http.StatusOK, pilots)
}

// CandidateCrew handles GET /api/roster/candidates/crew
func (h *RosterHandler) CandidateCrew(c *gin.Context) {
	crew, err := h.crewRepo.ListCabinCrew(c.Request.Context())
	if err != nil {
		h.logger.Warn("Crew pool unavailable", "error", err)
		c.JSON(http.StatusOK, []entity.CrewCandidate{})
		return
	}
	c.JSON(http.StatusOK, crew)
}
