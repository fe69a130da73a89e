package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// ReservationHandler handles the unified booking HTTP requests
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// CreateReservation handles POST /reservation/add
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.reservationService.CreateReservation(c, &reservation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Reservation created", "reservation": created})
}

// GetReservationByID handles GET /reservation/get/:id
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reservation, err := h.reservationService.GetReservationByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// GetAllReservations handles GET /reservation/get
func (h *ReservationHandler) GetAllReservations(c *gin.Context) {
	reservations, err := h.reservationService.GetAllReservations(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetReservationsByUser handles GET /reservation/user/:userId
func (h *ReservationHandler) GetReservationsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	reservations, err := h.reservationService.GetReservationsByUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetReservationsByTrip handles GET /reservation/trip/:tripId
func (h *ReservationHandler) GetReservationsByTrip(c *gin.Context) {
	tripID, ok := parseID(c, "tripId")
	if !ok {
		return
	}
	reservations, err := h.reservationService.GetReservationsByTrip(c, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetReservationsByEvent handles GET /reservation/event/:eventId
func (h *ReservationHandler) GetReservationsByEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}
	reservations, err := h.reservationService.GetReservationsByEvent(c, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetReservationsByStatus handles GET /reservation/filter-status/:status
func (h *ReservationHandler) GetReservationsByStatus(c *gin.Context) {
	reservations, err := h.reservationService.GetReservationsByStatus(c, c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetReservationsByDateRange handles GET /reservation/date-range?start=...&end=...
func (h *ReservationHandler) GetReservationsByDateRange(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "start must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "end must be YYYY-MM-DD"})
		return
	}
	// Make the end date inclusive.
	end = end.AddDate(0, 0, 1)

	reservations, err := h.reservationService.GetReservationsByDateRange(c, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// UpdateReservation handles PUT /reservation/update/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Reservation
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation updated", "reservation": reservation})
}

// UpdateReservationStatus handles PUT /reservation/status/:id
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.reservationService.UpdateReservationStatus(c, id, payload.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation status updated"})
}

// DeleteReservation handles DELETE /reservation/delete/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reservationService.DeleteReservation(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation deleted"})
}
