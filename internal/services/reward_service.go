package services

import (
	"context"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardService handles the reward catalog
type RewardService struct {
	rewardRepo repositories.RewardRepository
}

// NewRewardService creates a new RewardService
func NewRewardService(rewardRepo repositories.RewardRepository) *RewardService {
	return &RewardService{
		rewardRepo: rewardRepo,
	}
}

// CreateReward validates and creates a reward
func (s *RewardService) CreateReward(ctx context.Context, reward *models.Reward) error {
	if reward.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if reward.PointsRequired <= 0 {
		return fmt.Errorf("%w: pointsRequired must be positive", ErrInvalidInput)
	}
	reward.IsActive = true
	return s.rewardRepo.Create(ctx, reward)
}

// GetRewardByID retrieves a reward by ID
func (s *RewardService) GetRewardByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return reward, nil
}

// GetAllRewards retrieves all rewards, cheapest first
func (s *RewardService) GetAllRewards(ctx context.Context) ([]*models.Reward, error) {
	return s.rewardRepo.FindAll(ctx)
}

// UpdateReward updates an existing reward
func (s *RewardService) UpdateReward(ctx context.Context, id primitive.ObjectID, updated *models.Reward) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Title != "" {
		reward.Title = updated.Title
	}
	if updated.Description != "" {
		reward.Description = updated.Description
	}
	if updated.Image != "" {
		reward.Image = updated.Image
	}
	if updated.Category != "" {
		reward.Category = updated.Category
	}
	if updated.PointsRequired > 0 {
		reward.PointsRequired = updated.PointsRequired
	}

	if err := s.rewardRepo.Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// DeactivateReward takes a reward off the catalog without deleting it
func (s *RewardService) DeactivateReward(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	reward.IsActive = false
	if err := s.rewardRepo.Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// DeleteReward deletes a reward by ID
func (s *RewardService) DeleteReward(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.rewardRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.rewardRepo.Delete(ctx, id)
}
