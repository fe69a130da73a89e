package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// EventHandler handles event catalog HTTP requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /events/add
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.eventService.CreateEvent(c, &event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Event created", "event": event})
}

// GetEventByID handles GET /events/get/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.GetEventByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// GetAllEvents handles GET /events/get. The listing carries active events
// only; ?all=true includes deactivated ones for the back office.
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	var (
		events []*models.Event
		err    error
	)
	if c.Query("all") == "true" {
		events, err = h.eventService.GetAllEvents(c)
	} else {
		events, err = h.eventService.GetActiveEvents(c)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// UpdateEvent handles PUT /events/update/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Event
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event updated", "event": event})
}

// ToggleEventStatus handles PATCH /events/:id/toggle-status
func (h *EventHandler) ToggleEventStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.ToggleEventStatus(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event status toggled", "event": event})
}

// DeleteEvent handles DELETE /events/delete/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted"})
}
