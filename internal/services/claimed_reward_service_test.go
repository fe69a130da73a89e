package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
)

func newClaimFixture() (*ClaimedRewardService, *fakeUserRepo, *fakeRewardRepo, *mailer.MockMailer) {
	userRepo := newFakeUserRepo()
	rewardRepo := newFakeRewardRepo()
	claimRepo := newFakeClaimedRewardRepo()
	mock := mailer.NewMockMailer()
	svc := NewClaimedRewardService(claimRepo, rewardRepo, userRepo, NewNotificationService(mock))
	return svc, userRepo, rewardRepo, mock
}

func TestClaimRewardDebitsPoints(t *testing.T) {
	svc, userRepo, rewardRepo, _ := newClaimFixture()
	ctx := context.Background()

	user := &models.User{Name: "Ines", Email: "ines@example.com", Points: 300}
	userRepo.Create(ctx, user)
	reward := &models.Reward{Title: "Spa Day", Category: "wellness", PointsRequired: 250}
	rewardRepo.Create(ctx, reward)

	claim, err := svc.ClaimReward(ctx, user.ID, reward.ID)
	if err != nil {
		t.Fatalf("ClaimReward: %v", err)
	}

	if claim.Status != models.ClaimClaimed {
		t.Errorf("status = %q, want %q", claim.Status, models.ClaimClaimed)
	}
	wantExpiry := time.Now().Add(models.ClaimValidity)
	if diff := claim.ExpirationDate.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration = %v, want about %v", claim.ExpirationDate, wantExpiry)
	}

	stored, _ := userRepo.FindByID(ctx, user.ID)
	if stored.Points != 50 {
		t.Errorf("points = %d, want 50", stored.Points)
	}
}

func TestClaimRewardInsufficientPoints(t *testing.T) {
	svc, userRepo, rewardRepo, _ := newClaimFixture()
	ctx := context.Background()

	user := &models.User{Name: "Karim", Email: "karim@example.com", Points: 100}
	userRepo.Create(ctx, user)
	reward := &models.Reward{Title: "City Tour", Category: "travel", PointsRequired: 500}
	rewardRepo.Create(ctx, reward)

	if _, err := svc.ClaimReward(ctx, user.ID, reward.ID); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("err = %v, want %v", err, ErrInsufficientPoints)
	}

	stored, _ := userRepo.FindByID(ctx, user.ID)
	if stored.Points != 100 {
		t.Errorf("points after rejected claim = %d, want 100", stored.Points)
	}
}

func TestClaimedRewardFindersPopulate(t *testing.T) {
	svc, userRepo, rewardRepo, _ := newClaimFixture()
	ctx := context.Background()

	user := &models.User{Name: "Rayen", Email: "rayen@example.com", Points: 900}
	userRepo.Create(ctx, user)
	reward := &models.Reward{Title: "Museum Pass", Category: "culture", PointsRequired: 300}
	rewardRepo.Create(ctx, reward)

	claim, err := svc.ClaimReward(ctx, user.ID, reward.ID)
	if err != nil {
		t.Fatalf("ClaimReward: %v", err)
	}

	all, err := svc.GetAllClaimedRewards(ctx)
	if err != nil {
		t.Fatalf("GetAllClaimedRewards: %v", err)
	}
	if len(all) != 1 || all[0].Reward == nil || all[0].Reward.Title != "Museum Pass" {
		t.Errorf("all claims: reward not populated: %+v", all)
	}

	byUser, err := svc.GetClaimedRewardsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetClaimedRewardsByUser: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != claim.ID {
		t.Errorf("by user: got %+v, want the single claim", byUser)
	}
	if byUser[0].User == nil || byUser[0].User.Email != user.Email {
		t.Error("by user: user not populated")
	}
}

func TestClaimRewardEmailsEventTickets(t *testing.T) {
	svc, userRepo, rewardRepo, mock := newClaimFixture()
	ctx := context.Background()

	user := &models.User{Name: "Yasmine", Email: "yasmine@example.com", Points: 1000}
	userRepo.Create(ctx, user)
	concert := &models.Reward{Title: "Concert Ticket", Category: "event", PointsRequired: 400}
	rewardRepo.Create(ctx, concert)
	spa := &models.Reward{Title: "Spa Day", Category: "wellness", PointsRequired: 400}
	rewardRepo.Create(ctx, spa)

	if _, err := svc.ClaimReward(ctx, user.ID, concert.ID); err != nil {
		t.Fatalf("ClaimReward(event): %v", err)
	}
	if _, err := svc.ClaimReward(ctx, user.ID, spa.ID); err != nil {
		t.Fatalf("ClaimReward(wellness): %v", err)
	}

	// The email goes out asynchronously.
	deadline := time.Now().Add(time.Second)
	for len(mock.Sent()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	sent := mock.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d emails, want 1 (event category only)", len(sent))
	}
	if sent[0].To != user.Email {
		t.Errorf("email to %q, want %q", sent[0].To, user.Email)
	}
}
