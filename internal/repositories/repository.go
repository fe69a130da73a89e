package repositories

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetCode(ctx context.Context, code string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ClearResetCode removes the password reset code and its expiry from
	// the document. Update cannot do this: its $set drops emptied
	// omitempty fields instead of overwriting them.
	ClearResetCode(ctx context.Context, id primitive.ObjectID) error
	// IncrementPoints atomically adds delta to the user's balance.
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error
	// DebitPoints atomically subtracts cost, but only when the current
	// balance covers it. Returns ErrInsufficientPoints otherwise.
	DebitPoints(ctx context.Context, id primitive.ObjectID, cost int) error
}

// AdminRepository defines the interface for admin data operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindAll(ctx context.Context) ([]*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TripRepository defines the interface for trip catalog operations
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error)
	FindAll(ctx context.Context) ([]*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventRepository defines the interface for event catalog operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindAll(ctx context.Context) ([]*models.Event, error)
	FindActive(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RewardRepository defines the interface for reward catalog operations
type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error)
	FindAll(ctx context.Context) ([]*models.Reward, error)
	Update(ctx context.Context, reward *models.Reward) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReservationRepository defines the interface for unified reservation records
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	FindAll(ctx context.Context) ([]*models.Reservation, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reservation, error)
	FindByTripID(ctx context.Context, tripID primitive.ObjectID) ([]*models.Reservation, error)
	FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.Reservation, error)
	FindByStatus(ctx context.Context, status string) ([]*models.Reservation, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Reservation, error)
	CountByTripID(ctx context.Context, tripID primitive.ObjectID) (int64, error)
	CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, reservation *models.Reservation) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventReservationRepository defines the interface for event-only reservations
type EventReservationRepository interface {
	Create(ctx context.Context, reservation *models.EventReservation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventReservation, error)
	FindAll(ctx context.Context) ([]*models.EventReservation, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.EventReservation, error)
	FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventReservation, error)
	FindByStatus(ctx context.Context, status string) ([]*models.EventReservation, error)
	CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, reservation *models.EventReservation) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ClaimedRewardRepository defines the interface for claimed reward records
type ClaimedRewardRepository interface {
	Create(ctx context.Context, claim *models.ClaimedReward) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClaimedReward, error)
	FindAll(ctx context.Context) ([]*models.ClaimedReward, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ClaimedReward, error)
}

// SurveyRepository defines the interface for survey operations
type SurveyRepository interface {
	Create(ctx context.Context, survey *models.Survey) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error)
	FindAll(ctx context.Context) ([]*models.Survey, error)
	Update(ctx context.Context, survey *models.Survey) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// QuestionRepository defines the interface for survey question operations
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	CreateMany(ctx context.Context, questions []*models.Question) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
	FindBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error
}

// ResponseRepository defines the interface for survey response operations
type ResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error)
	FindAll(ctx context.Context) ([]*models.Response, error)
	FindByQuestionID(ctx context.Context, questionID primitive.ObjectID) ([]*models.Response, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Response, error)
	FindByQuestionAndUser(ctx context.Context, questionID, userID primitive.ObjectID) (*models.Response, error)
	Update(ctx context.Context, response *models.Response) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CommunityPostRepository defines the interface for community feed operations
type CommunityPostRepository interface {
	Create(ctx context.Context, post *models.CommunityPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error)
	FindAll(ctx context.Context) ([]*models.CommunityPost, error)
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error
	AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DashboardRepository defines the read-only aggregation queries backing the
// operator dashboard. Everything is computed on demand; nothing is cached.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error)
	UsersByLocation(ctx context.Context) (map[string]int64, error)
	PreferenceBreakdown(ctx context.Context) ([]models.CategoryCount, error)
	TopUsersByPoints(ctx context.Context, limit int) ([]*models.User, error)
	UsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)

	CountTrips(ctx context.Context) (int64, error)
	TripTypeBreakdown(ctx context.Context) ([]models.CategoryCount, error)

	CountReservations(ctx context.Context) (int64, error)
	ReservationsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	ActiveUserIDsSince(ctx context.Context, since time.Time) ([]string, error)
	ConfirmedRevenueByTrip(ctx context.Context) ([]models.RevenueByTarget, error)
	ReservationsPerMonth(ctx context.Context) ([]models.MonthCount, error)
	DailyConfirmedRevenue(ctx context.Context) ([]models.DailyRevenue, error)

	CountSurveys(ctx context.Context) (int64, error)
	CountSurveysByStatus(ctx context.Context, status string) (int64, error)
	SurveysByStatus(ctx context.Context) ([]models.CategoryCount, error)
	TopSurveysByRespondents(ctx context.Context, limit int) ([]*models.Survey, error)

	CountRewards(ctx context.Context) (int64, error)
	RewardsByCategory(ctx context.Context) ([]models.CategoryCount, error)
	TopRewardsByPoints(ctx context.Context, limit int) ([]*models.Reward, error)
	CountClaims(ctx context.Context) (int64, error)

	CountPosts(ctx context.Context) (int64, error)
	PostsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	TopLikedPosts(ctx context.Context, limit int) ([]models.LikedPost, error)
	CountComments(ctx context.Context) (int64, error)
}
