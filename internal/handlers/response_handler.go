package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// ResponseHandler handles survey answer HTTP requests
type ResponseHandler struct {
	responseService *services.ResponseService
}

// NewResponseHandler creates a new ResponseHandler
func NewResponseHandler(responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		responseService: responseService,
	}
}

// CreateResponse handles POST /response/add
func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	var response models.Response
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.responseService.CreateResponse(c, &response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Response recorded", "response": created})
}

// GetResponseByID handles GET /response/get/:id
func (h *ResponseHandler) GetResponseByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	response, err := h.responseService.GetResponseByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

// GetAllResponses handles GET /response/get
func (h *ResponseHandler) GetAllResponses(c *gin.Context) {
	responses, err := h.responseService.GetAllResponses(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "responses": responses})
}

// GetResponsesByQuestion handles GET /response/get-by-question/:questionId
func (h *ResponseHandler) GetResponsesByQuestion(c *gin.Context) {
	questionID, ok := parseID(c, "questionId")
	if !ok {
		return
	}
	responses, err := h.responseService.GetResponsesByQuestion(c, questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "responses": responses})
}

// GetResponsesBySurvey handles GET /response/get-by-survey/:surveyId
func (h *ResponseHandler) GetResponsesBySurvey(c *gin.Context) {
	surveyID, ok := parseID(c, "surveyId")
	if !ok {
		return
	}
	responses, err := h.responseService.GetResponsesBySurvey(c, surveyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "responses": responses})
}

// GetResponsesByUser handles GET /response/get-by-user/:userId
func (h *ResponseHandler) GetResponsesByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	responses, err := h.responseService.GetResponsesByUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "responses": responses})
}

// UpdateResponse handles PUT /response/update/:id
func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	response, err := h.responseService.UpdateResponse(c, id, payload.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Response updated", "response": response})
}

// DeleteResponse handles DELETE /response/delete/:id
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.responseService.DeleteResponse(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Response deleted"})
}
