package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/config"
)

func TestBookingStatusRoutesUsePut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(&config.Config{}, &Handlers{})

	mounted := make(map[string]bool)
	for _, r := range router.Routes() {
		mounted[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"PUT /reservation/status/:id",
		"PUT /event-reservations/status/:id",
		"PATCH /community/:postId/like",
		"DELETE /community/:postId",
	} {
		if !mounted[want] {
			t.Errorf("route %q not mounted", want)
		}
	}
}
