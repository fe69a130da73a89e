package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionHandler handles survey question HTTP requests
type QuestionHandler struct {
	surveyService *services.SurveyService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(surveyService *services.SurveyService) *QuestionHandler {
	return &QuestionHandler{
		surveyService: surveyService,
	}
}

// AddQuestion handles POST /question/add
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if question.SurveyID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "surveyId is required"})
		return
	}

	created, err := h.surveyService.AddQuestion(c, &question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Question added", "question": created})
}

// GetQuestionByID handles GET /question/get/:id
func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	question, err := h.surveyService.GetQuestionByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "question": question})
}

// GetQuestionsBySurvey handles GET /question/survey/:surveyId
func (h *QuestionHandler) GetQuestionsBySurvey(c *gin.Context) {
	surveyID, ok := parseID(c, "surveyId")
	if !ok {
		return
	}
	questions, err := h.surveyService.GetQuestionsBySurvey(c, surveyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// UpdateQuestion handles PUT /question/update/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Question
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	question, err := h.surveyService.UpdateQuestion(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Question updated", "question": question})
}

// ReorderQuestions handles PATCH /question/reorder/:surveyId
func (h *QuestionHandler) ReorderQuestions(c *gin.Context) {
	surveyID, ok := parseID(c, "surveyId")
	if !ok {
		return
	}

	var payload struct {
		QuestionOrders []struct {
			ID    string `json:"_id" binding:"required"`
			Order int    `json:"order"`
		} `json:"questionOrders" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	orders := make([]models.QuestionOrder, 0, len(payload.QuestionOrders))
	for _, item := range payload.QuestionOrders {
		id, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid question ID format"})
			return
		}
		orders = append(orders, models.QuestionOrder{ID: id, Order: item.Order})
	}

	if err := h.surveyService.ReorderQuestions(c, surveyID, orders); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Questions reordered"})
}

// DeleteQuestion handles DELETE /question/delete/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.surveyService.DeleteQuestion(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Question deleted"})
}
