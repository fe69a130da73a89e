package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// SurveyHandler handles survey HTTP requests
type SurveyHandler struct {
	surveyService *services.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(surveyService *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// CreateSurvey handles POST /survey/add
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var survey models.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.surveyService.CreateSurvey(c, &survey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Survey created", "survey": created})
}

// GetSurveyByID handles GET /survey/get/:id
func (h *SurveyHandler) GetSurveyByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	survey, err := h.surveyService.GetSurveyByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "survey": survey})
}

// GetAllSurveys handles GET /survey/get
func (h *SurveyHandler) GetAllSurveys(c *gin.Context) {
	surveys, err := h.surveyService.GetAllSurveys(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "surveys": surveys})
}

// UpdateSurvey handles PUT /survey/update/:id
func (h *SurveyHandler) UpdateSurvey(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Survey
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	survey, err := h.surveyService.UpdateSurvey(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey updated", "survey": survey})
}

// PublishSurvey handles PATCH /survey/publish/:id
func (h *SurveyHandler) PublishSurvey(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.surveyService.PublishSurvey(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey published"})
}

// CompleteSurvey handles PATCH /survey/complete/:id
func (h *SurveyHandler) CompleteSurvey(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.surveyService.CompleteSurvey(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey completed"})
}

// DeleteSurvey handles DELETE /survey/delete/:id
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.surveyService.DeleteSurvey(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey deleted"})
}
