package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClaimedRewardService handles redeeming loyalty points for rewards
type ClaimedRewardService struct {
	claimedRewardRepo repositories.ClaimedRewardRepository
	rewardRepo        repositories.RewardRepository
	userRepo          repositories.UserRepository
	notifications     *NotificationService
}

// NewClaimedRewardService creates a new ClaimedRewardService
func NewClaimedRewardService(
	claimedRewardRepo repositories.ClaimedRewardRepository,
	rewardRepo repositories.RewardRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *ClaimedRewardService {
	return &ClaimedRewardService{
		claimedRewardRepo: claimedRewardRepo,
		rewardRepo:        rewardRepo,
		userRepo:          userRepo,
		notifications:     notifications,
	}
}

// ClaimReward debits the reward's cost from the user's balance and records
// the claim. The debit is a single conditional write, so two concurrent
// claims can never spend the same points twice. Event-category claims also
// email the user their ticket details.
func (s *ClaimedRewardService) ClaimReward(ctx context.Context, userID, rewardID primitive.ObjectID) (*models.ClaimedReward, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	reward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		return nil, translate(err)
	}

	if err := s.userRepo.DebitPoints(ctx, user.ID, reward.PointsRequired); err != nil {
		if errors.Is(err, repositories.ErrInsufficientPoints) {
			return nil, ErrInsufficientPoints
		}
		return nil, err
	}

	claim := &models.ClaimedReward{
		RewardID:       reward.ID,
		UserID:         user.ID,
		Status:         models.ClaimClaimed,
		ExpirationDate: time.Now().Add(models.ClaimValidity),
	}
	if err := s.claimedRewardRepo.Create(ctx, claim); err != nil {
		return nil, err
	}

	if reward.Category == "event" {
		go func() {
			if err := s.notifications.SendClaimConfirmation(user, reward, claim); err != nil {
				log.Printf("failed to send claim email to %s: %v", user.Email, err)
			}
		}()
	}

	claim.Reward = reward
	claim.User = user
	return claim, nil
}

// GetClaimedRewardByID retrieves a claim with its reward and user populated
func (s *ClaimedRewardService) GetClaimedRewardByID(ctx context.Context, id primitive.ObjectID) (*models.ClaimedReward, error) {
	claim, err := s.claimedRewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	s.populate(ctx, claim)
	return claim, nil
}

// GetAllClaimedRewards retrieves all claims, populated
func (s *ClaimedRewardService) GetAllClaimedRewards(ctx context.Context) ([]*models.ClaimedReward, error) {
	claims, err := s.claimedRewardRepo.FindAll(ctx)
	return s.populated(ctx, claims, err)
}

// GetClaimedRewardsByUser retrieves a user's claims
func (s *ClaimedRewardService) GetClaimedRewardsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.ClaimedReward, error) {
	claims, err := s.claimedRewardRepo.FindByUserID(ctx, userID)
	return s.populated(ctx, claims, err)
}

func (s *ClaimedRewardService) populated(ctx context.Context, claims []*models.ClaimedReward, err error) ([]*models.ClaimedReward, error) {
	if err != nil {
		return nil, err
	}
	for _, c := range claims {
		s.populate(ctx, c)
	}
	return claims, nil
}

func (s *ClaimedRewardService) populate(ctx context.Context, c *models.ClaimedReward) {
	if reward, err := s.rewardRepo.FindByID(ctx, c.RewardID); err == nil {
		c.Reward = reward
	}
	if user, err := s.userRepo.FindByID(ctx, c.UserID); err == nil {
		c.User = user
	}
}
