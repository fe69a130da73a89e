package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// TripHandler handles trip catalog HTTP requests
type TripHandler struct {
	tripService *services.TripService
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// CreateTrip handles POST /trip/add
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.tripService.CreateTrip(c, &trip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Trip created", "trip": trip})
}

// GetTripByID handles GET /trip/get/:id
func (h *TripHandler) GetTripByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	trip, err := h.tripService.GetTripByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trip": trip})
}

// GetAllTrips handles GET /trip/get
func (h *TripHandler) GetAllTrips(c *gin.Context) {
	trips, err := h.tripService.GetAllTrips(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trips": trips})
}

// UpdateTrip handles PUT /trip/update/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Trip
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	trip, err := h.tripService.UpdateTrip(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip updated", "trip": trip})
}

// ToggleTripStatus handles PATCH /trip/:id/toggle-status
func (h *TripHandler) ToggleTripStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	trip, err := h.tripService.ToggleTripStatus(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip status toggled", "trip": trip})
}

// DeleteTrip handles DELETE /trip/delete/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.tripService.DeleteTrip(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip deleted"})
}
