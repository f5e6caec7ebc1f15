package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the roster API. Reads are open to any configured
// account; saving requires an admin account.
func (h *RosterHandler) RegisterRoutes(r *gin.Engine, adminAccounts, readerAccounts map[string]string) {
	api := r.Group("/api/roster")

	read := api.Group("")
	read.Use(BasicAuth(MergeAccounts(readerAccounts, adminAccounts)))
	{
		read.GET("/generate/:flightId", h.Generate)
		read.GET("/flights", h.ListFlights)
		read.GET("/candidates/pilots/:vehicleType", h.CandidatePilots)
		read.GET("/candidates/crew", h.CandidateCrew)
	}

	api.POST("/save", BasicAuth(adminAccounts), h.Save)
}
