package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// DashboardHandler handles the operator dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetUserStats handles GET /dashboard/user-stats
func (h *DashboardHandler) GetUserStats(c *gin.Context) {
	stats, err := h.dashboardService.GetUserStats(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetTripStats handles GET /dashboard/trip-stats
func (h *DashboardHandler) GetTripStats(c *gin.Context) {
	stats, err := h.dashboardService.GetTripStats(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetDailyRevenue handles GET /dashboard/monthly-revenue
func (h *DashboardHandler) GetDailyRevenue(c *gin.Context) {
	revenue, err := h.dashboardService.GetDailyRevenue(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "revenue": revenue})
}

// GetSurveyStats handles GET /dashboard/survey-stats
func (h *DashboardHandler) GetSurveyStats(c *gin.Context) {
	stats, err := h.dashboardService.GetSurveyStats(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetRewardStats handles GET /dashboard/reward-stats
func (h *DashboardHandler) GetRewardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetRewardStats(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetCommunityStats handles GET /dashboard/community-stats
func (h *DashboardHandler) GetCommunityStats(c *gin.Context) {
	stats, err := h.dashboardService.GetCommunityStats(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
