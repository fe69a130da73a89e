package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// EventReservationHandler handles the event-only booking HTTP requests
type EventReservationHandler struct {
	eventReservationService *services.EventReservationService
}

// NewEventReservationHandler creates a new EventReservationHandler
func NewEventReservationHandler(eventReservationService *services.EventReservationService) *EventReservationHandler {
	return &EventReservationHandler{
		eventReservationService: eventReservationService,
	}
}

// CreateEventReservation handles POST /event-reservations/add
func (h *EventReservationHandler) CreateEventReservation(c *gin.Context) {
	var reservation models.EventReservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.eventReservationService.CreateEventReservation(c, &reservation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Reservation created", "reservation": created})
}

// GetEventReservationByID handles GET /event-reservations/get/:id
func (h *EventReservationHandler) GetEventReservationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reservation, err := h.eventReservationService.GetEventReservationByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// GetAllEventReservations handles GET /event-reservations/get
func (h *EventReservationHandler) GetAllEventReservations(c *gin.Context) {
	reservations, err := h.eventReservationService.GetAllEventReservations(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetEventReservationsByUser handles GET /event-reservations/user/:userId
func (h *EventReservationHandler) GetEventReservationsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	reservations, err := h.eventReservationService.GetEventReservationsByUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetEventReservationsByEvent handles GET /event-reservations/event/:eventId
func (h *EventReservationHandler) GetEventReservationsByEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}
	reservations, err := h.eventReservationService.GetEventReservationsByEvent(c, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// GetEventReservationsByStatus handles GET /event-reservations/filter-status/:status
func (h *EventReservationHandler) GetEventReservationsByStatus(c *gin.Context) {
	reservations, err := h.eventReservationService.GetEventReservationsByStatus(c, c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// UpdateEventReservation handles PUT /event-reservations/update/:id
func (h *EventReservationHandler) UpdateEventReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.EventReservation
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reservation, err := h.eventReservationService.UpdateEventReservation(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation updated", "reservation": reservation})
}

// UpdateEventReservationStatus handles PUT /event-reservations/status/:id
func (h *EventReservationHandler) UpdateEventReservationStatus(c *gin.Context) {
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

	if err := h.eventReservationService.UpdateEventReservationStatus(c, id, payload.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation status updated"})
}

// DeleteEventReservation handles DELETE /event-reservations/delete/:id
func (h *EventReservationHandler) DeleteEventReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.eventReservationService.DeleteEventReservation(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation deleted"})
}
