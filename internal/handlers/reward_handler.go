package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// RewardHandler handles reward catalog HTTP requests
type RewardHandler struct {
	rewardService *services.RewardService
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// CreateReward handles POST /reward/add
func (h *RewardHandler) CreateReward(c *gin.Context) {
	var reward models.Reward
	if err := c.ShouldBindJSON(&reward); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.rewardService.CreateReward(c, &reward); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Reward created", "reward": reward})
}

// GetRewardByID handles GET /reward/get/:id
func (h *RewardHandler) GetRewardByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reward, err := h.rewardService.GetRewardByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reward": reward})
}

// GetAllRewards handles GET /reward/get
func (h *RewardHandler) GetAllRewards(c *gin.Context) {
	rewards, err := h.rewardService.GetAllRewards(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rewards": rewards})
}

// UpdateReward handles PUT /reward/update/:id
func (h *RewardHandler) UpdateReward(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload models.Reward
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	reward, err := h.rewardService.UpdateReward(c, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reward updated", "reward": reward})
}

// DeactivateReward handles PATCH /reward/:id/deactivate-reward
func (h *RewardHandler) DeactivateReward(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reward, err := h.rewardService.DeactivateReward(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reward deactivated", "reward": reward})
}

// DeleteReward handles DELETE /reward/delete/:id
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.rewardService.DeleteReward(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reward deleted"})
}
