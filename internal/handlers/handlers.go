package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID reads an ObjectID path parameter, answering 400 on bad input.
func parseID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrHasReservations),
		errors.Is(err, services.ErrDuplicateResponse):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidResetCode),
		errors.Is(err, services.ErrSurveyPublished),
		errors.Is(err, services.ErrInsufficientPoints):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

// actingUserID reads the authenticated user's ID set by the auth middleware.
func actingUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token subject"})
		return primitive.NilObjectID, false
	}
	return id, true
}
