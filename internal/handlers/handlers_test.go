package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/services"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"email taken", services.ErrEmailTaken, http.StatusConflict},
		{"has reservations", services.ErrHasReservations, http.StatusConflict},
		{"duplicate response", services.ErrDuplicateResponse, http.StatusConflict},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"survey published", services.ErrSurveyPublished, http.StatusBadRequest},
		{"insufficient points", services.ErrInsufficientPoints, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
