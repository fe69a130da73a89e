package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClaimedRewardHandler handles reward redemption HTTP requests
type ClaimedRewardHandler struct {
	claimedRewardService *services.ClaimedRewardService
}

// NewClaimedRewardHandler creates a new ClaimedRewardHandler
func NewClaimedRewardHandler(claimedRewardService *services.ClaimedRewardService) *ClaimedRewardHandler {
	return &ClaimedRewardHandler{
		claimedRewardService: claimedRewardService,
	}
}

// ClaimReward handles POST /claimed-reward/add
func (h *ClaimedRewardHandler) ClaimReward(c *gin.Context) {
	var payload struct {
		UserID   string `json:"userId" binding:"required"`
		RewardID string `json:"rewardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid userId format"})
		return
	}
	rewardID, err := primitive.ObjectIDFromHex(payload.RewardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid rewardId format"})
		return
	}

	claim, err := h.claimedRewardService.ClaimReward(c, userID, rewardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Reward claimed", "claimedReward": claim})
}

// GetClaimedRewardByID handles GET /claimed-reward/get/:id
func (h *ClaimedRewardHandler) GetClaimedRewardByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claim, err := h.claimedRewardService.GetClaimedRewardByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claimedReward": claim})
}

// GetAllClaimedRewards handles GET /claimed-reward/get
func (h *ClaimedRewardHandler) GetAllClaimedRewards(c *gin.Context) {
	claims, err := h.claimedRewardService.GetAllClaimedRewards(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claimedRewards": claims})
}

// GetClaimedRewardsByUser handles GET /claimed-reward/user/:userId
func (h *ClaimedRewardHandler) GetClaimedRewardsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	claims, err := h.claimedRewardService.GetClaimedRewardsByUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claimedRewards": claims})
}
