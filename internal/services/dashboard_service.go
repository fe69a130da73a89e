package services

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
)

// Dashboard list sizes and lookback windows.
const (
	topListLimit     = 5
	seriesMonths     = 6
	activeUserWindow = 30 * 24 * time.Hour
)

// DashboardService assembles the operator dashboard payloads from the
// aggregation queries
type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo repositories.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

// GetUserStats builds the user dashboard payload
func (s *DashboardService) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	stats := &models.UserStats{}
	var err error

	if stats.TotalUsers, err = s.dashboardRepo.CountUsers(ctx); err != nil {
		return nil, err
	}
	midnight := time.Now().Truncate(24 * time.Hour)
	if stats.NewUsersToday, err = s.dashboardRepo.CountUsersCreatedSince(ctx, midnight); err != nil {
		return nil, err
	}
	active, err := s.dashboardRepo.ActiveUserIDsSince(ctx, time.Now().Add(-activeUserWindow))
	if err != nil {
		return nil, err
	}
	stats.ActiveUsers = len(active)
	if stats.UsersByLocation, err = s.dashboardRepo.UsersByLocation(ctx); err != nil {
		return nil, err
	}
	if stats.PreferenceBreakdown, err = s.dashboardRepo.PreferenceBreakdown(ctx); err != nil {
		return nil, err
	}
	if stats.TopUsers, err = s.dashboardRepo.TopUsersByPoints(ctx, topListLimit); err != nil {
		return nil, err
	}

	if stats.UserEngagement.SurveysCompleted, err = s.dashboardRepo.CountSurveysByStatus(ctx, models.SurveyCompleted); err != nil {
		return nil, err
	}
	if stats.UserEngagement.ReservationsMade, err = s.dashboardRepo.CountReservations(ctx); err != nil {
		return nil, err
	}
	if stats.UserEngagement.CommunityPosts, err = s.dashboardRepo.CountPosts(ctx); err != nil {
		return nil, err
	}
	if stats.UserEngagement.RewardsRedeemed, err = s.dashboardRepo.CountClaims(ctx); err != nil {
		return nil, err
	}

	if stats.RegisterOverTime, err = s.monthlySeries(ctx, s.dashboardRepo.UsersCreatedBetween); err != nil {
		return nil, err
	}
	if stats.UserActivity, err = s.monthlySeries(ctx, s.activityBetween); err != nil {
		return nil, err
	}
	return stats, nil
}

// activityBetween counts reservations plus posts in the window
func (s *DashboardService) activityBetween(ctx context.Context, start, end time.Time) (int64, error) {
	reservations, err := s.dashboardRepo.ReservationsCreatedBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}
	posts, err := s.dashboardRepo.PostsCreatedBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return reservations + posts, nil
}

// monthlySeries builds a six-month series, oldest month first
func (s *DashboardService) monthlySeries(ctx context.Context, count func(context.Context, time.Time, time.Time) (int64, error)) (models.TimeSeries, error) {
	series := models.TimeSeries{
		Labels: make([]string, 0, seriesMonths),
		Data:   make([]int64, 0, seriesMonths),
	}
	now := time.Now()
	for i := seriesMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		n, err := count(ctx, start, end)
		if err != nil {
			return models.TimeSeries{}, err
		}
		series.Labels = append(series.Labels, start.Format("Jan"))
		series.Data = append(series.Data, n)
	}
	return series, nil
}

// GetTripStats builds the trip and booking dashboard payload
func (s *DashboardService) GetTripStats(ctx context.Context) (*models.TripStats, error) {
	stats := &models.TripStats{}
	var err error

	if stats.TotalTrips, err = s.dashboardRepo.CountTrips(ctx); err != nil {
		return nil, err
	}
	if stats.TripTypeBreakdown, err = s.dashboardRepo.TripTypeBreakdown(ctx); err != nil {
		return nil, err
	}
	if stats.ReservationRevenue, err = s.dashboardRepo.ConfirmedRevenueByTrip(ctx); err != nil {
		return nil, err
	}
	if stats.ReservationsPerMonth, err = s.dashboardRepo.ReservationsPerMonth(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetDailyRevenue builds the merged trip and event revenue series
func (s *DashboardService) GetDailyRevenue(ctx context.Context) ([]models.DailyRevenue, error) {
	return s.dashboardRepo.DailyConfirmedRevenue(ctx)
}

// GetSurveyStats builds the survey dashboard payload
func (s *DashboardService) GetSurveyStats(ctx context.Context) (*models.SurveyStats, error) {
	stats := &models.SurveyStats{}
	var err error

	if stats.TotalSurveys, err = s.dashboardRepo.CountSurveys(ctx); err != nil {
		return nil, err
	}
	if stats.SurveysByStatus, err = s.dashboardRepo.SurveysByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.TopSurveys, err = s.dashboardRepo.TopSurveysByRespondents(ctx, topListLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetRewardStats builds the reward dashboard payload
func (s *DashboardService) GetRewardStats(ctx context.Context) (*models.RewardStats, error) {
	stats := &models.RewardStats{}
	var err error

	if stats.TotalRewards, err = s.dashboardRepo.CountRewards(ctx); err != nil {
		return nil, err
	}
	if stats.RewardsByCategory, err = s.dashboardRepo.RewardsByCategory(ctx); err != nil {
		return nil, err
	}
	if stats.TopRewards, err = s.dashboardRepo.TopRewardsByPoints(ctx, topListLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetCommunityStats builds the community dashboard payload
func (s *DashboardService) GetCommunityStats(ctx context.Context) (*models.CommunityStats, error) {
	stats := &models.CommunityStats{}
	var err error

	if stats.TotalPosts, err = s.dashboardRepo.CountPosts(ctx); err != nil {
		return nil, err
	}
	if stats.TopLikedPosts, err = s.dashboardRepo.TopLikedPosts(ctx, topListLimit); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.dashboardRepo.CountComments(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
