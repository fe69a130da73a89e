package mongodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository runs the read-only aggregation queries behind the
// operator dashboard. It spans several collections on purpose; everything is
// computed on demand against current store contents.
type DashboardRepository struct {
	users             *mongo.Collection
	trips             *mongo.Collection
	reservations      *mongo.Collection
	eventReservations *mongo.Collection
	surveys           *mongo.Collection
	rewards           *mongo.Collection
	claims            *mongo.Collection
	posts             *mongo.Collection
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		users:             db.Collection("users"),
		trips:             db.Collection("trips"),
		reservations:      db.Collection("reservations"),
		eventReservations: db.Collection("eventreservations"),
		surveys:           db.Collection("surveys"),
		rewards:           db.Collection("rewards"),
		claims:            db.Collection("claimedrewards"),
		posts:             db.Collection("communityposts"),
	}
}

// CountUsers counts all users
func (r *DashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

// CountUsersCreatedSince counts users registered at or after since
func (r *DashboardRepository) CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}

// UsersCreatedBetween counts users registered inside [start, end)
func (r *DashboardRepository) UsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}})
}

// UsersByLocation groups users by their recorded location
func (r *DashboardRepository) UsersByLocation(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"location": bson.M{"$exists": true, "$ne": ""}}}},
		{{Key: "$group", Value: bson.M{"_id": "$location", "count": bson.M{"$sum": 1}}}},
	}
	rows, err := aggregate[models.CategoryCount](ctx, r.users, pipeline)
	if err != nil {
		return nil, err
	}
	byLocation := make(map[string]int64, len(rows))
	for _, row := range rows {
		byLocation[row.Category] = row.Count
	}
	return byLocation, nil
}

// PreferenceBreakdown unwinds travel preferences and counts each
func (r *DashboardRepository) PreferenceBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$travelPreferences"}},
		{{Key: "$group", Value: bson.M{"_id": "$travelPreferences", "count": bson.M{"$sum": 1}}}},
	}
	return aggregate[models.CategoryCount](ctx, r.users, pipeline)
}

// TopUsersByPoints returns the highest point balances
func (r *DashboardRepository) TopUsersByPoints(ctx context.Context, limit int) ([]*models.User, error) {
	opts := options.Find().SetSort(bson.M{"points": -1}).SetLimit(int64(limit))
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountTrips counts all trips
func (r *DashboardRepository) CountTrips(ctx context.Context) (int64, error) {
	return r.trips.CountDocuments(ctx, bson.M{})
}

// TripTypeBreakdown groups trips by type
func (r *DashboardRepository) TripTypeBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$tripType", "count": bson.M{"$sum": 1}}}},
	}
	return aggregate[models.CategoryCount](ctx, r.trips, pipeline)
}

// CountReservations counts all reservations
func (r *DashboardRepository) CountReservations(ctx context.Context) (int64, error) {
	return r.reservations.CountDocuments(ctx, bson.M{})
}

// ReservationsCreatedBetween counts reservations created inside [start, end)
func (r *DashboardRepository) ReservationsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.reservations.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}})
}

// ActiveUserIDsSince returns the distinct users who reserved or posted since
// the given time. Used for the "active users" dashboard counter.
func (r *DashboardRepository) ActiveUserIDsSince(ctx context.Context, since time.Time) ([]string, error) {
	filter := bson.M{"createdAt": bson.M{"$gte": since}}
	seen := make(map[string]struct{})

	fromReservations, err := r.reservations.Distinct(ctx, "userId", filter)
	if err != nil {
		return nil, err
	}
	fromPosts, err := r.posts.Distinct(ctx, "userId", filter)
	if err != nil {
		return nil, err
	}
	for _, v := range append(fromReservations, fromPosts...) {
		seen[fmt.Sprint(v)] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids, nil
}

// ConfirmedRevenueByTrip sums confirmed reservation totals per trip
func (r *DashboardRepository) ConfirmedRevenueByTrip(ctx context.Context) ([]models.RevenueByTarget, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ReservationConfirmed}}},
		{{Key: "$group", Value: bson.M{"_id": "$tripId", "total": bson.M{"$sum": "$totalPrice"}}}},
	}
	return aggregate[models.RevenueByTarget](ctx, r.reservations, pipeline)
}

// ReservationsPerMonth buckets reservations by calendar month
func (r *DashboardRepository) ReservationsPerMonth(ctx context.Context) ([]models.MonthCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$month": "$createdAt"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	return aggregate[models.MonthCount](ctx, r.reservations, pipeline)
}

type dailyRevenueRow struct {
	ID struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
		Day   int `bson:"day"`
	} `bson:"_id"`
	Total float64 `bson:"total"`
}

// DailyConfirmedRevenue merges confirmed trip and event reservation totals
// into one day-labelled series, sorted by date.
func (r *DashboardRepository) DailyConfirmedRevenue(ctx context.Context) ([]models.DailyRevenue, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ReservationConfirmed}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
				"day":   bson.M{"$dayOfMonth": "$createdAt"},
			},
			"total": bson.M{"$sum": "$totalPrice"},
		}}},
	}

	tripRows, err := aggregate[dailyRevenueRow](ctx, r.reservations, pipeline)
	if err != nil {
		return nil, err
	}
	eventRows, err := aggregate[dailyRevenueRow](ctx, r.eventReservations, pipeline)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*models.DailyRevenue)
	bucket := func(row dailyRevenueRow) *models.DailyRevenue {
		label := fmt.Sprintf("%04d-%02d-%02d", row.ID.Year, row.ID.Month, row.ID.Day)
		if b, ok := merged[label]; ok {
			return b
		}
		b := &models.DailyRevenue{Label: label}
		merged[label] = b
		return b
	}
	for _, row := range tripRows {
		bucket(row).Trip = row.Total
	}
	for _, row := range eventRows {
		bucket(row).Event = row.Total
	}

	result := make([]models.DailyRevenue, 0, len(merged))
	for _, b := range merged {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Label < result[j].Label })
	return result, nil
}

// CountSurveys counts all surveys
func (r *DashboardRepository) CountSurveys(ctx context.Context) (int64, error) {
	return r.surveys.CountDocuments(ctx, bson.M{})
}

// CountSurveysByStatus counts surveys in a given status
func (r *DashboardRepository) CountSurveysByStatus(ctx context.Context, status string) (int64, error) {
	return r.surveys.CountDocuments(ctx, bson.M{"status": status})
}

// SurveysByStatus groups surveys by lifecycle status
func (r *DashboardRepository) SurveysByStatus(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	return aggregate[models.CategoryCount](ctx, r.surveys, pipeline)
}

// TopSurveysByRespondents returns the most answered surveys
func (r *DashboardRepository) TopSurveysByRespondents(ctx context.Context, limit int) ([]*models.Survey, error) {
	opts := options.Find().SetSort(bson.M{"numberOfRespondents": -1}).SetLimit(int64(limit))
	cursor, err := r.surveys.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*models.Survey
	if err = cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// CountRewards counts all rewards
func (r *DashboardRepository) CountRewards(ctx context.Context) (int64, error) {
	return r.rewards.CountDocuments(ctx, bson.M{})
}

// RewardsByCategory groups rewards by category
func (r *DashboardRepository) RewardsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
	}
	return aggregate[models.CategoryCount](ctx, r.rewards, pipeline)
}

// TopRewardsByPoints returns the most expensive rewards
func (r *DashboardRepository) TopRewardsByPoints(ctx context.Context, limit int) ([]*models.Reward, error) {
	opts := options.Find().SetSort(bson.M{"pointsRequired": -1}).SetLimit(int64(limit))
	cursor, err := r.rewards.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*models.Reward
	if err = cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// CountClaims counts all claimed rewards
func (r *DashboardRepository) CountClaims(ctx context.Context) (int64, error) {
	return r.claims.CountDocuments(ctx, bson.M{})
}

// CountPosts counts all community posts
func (r *DashboardRepository) CountPosts(ctx context.Context) (int64, error) {
	return r.posts.CountDocuments(ctx, bson.M{})
}

// PostsCreatedBetween counts posts created inside [start, end)
func (r *DashboardRepository) PostsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.posts.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}})
}

// TopLikedPosts projects posts to their like counts and returns the top ones
func (r *DashboardRepository) TopLikedPosts(ctx context.Context, limit int) ([]models.LikedPost, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"text":      1,
			"likeCount": bson.M{"$size": "$likes"},
		}}},
		{{Key: "$sort", Value: bson.M{"likeCount": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	return aggregate[models.LikedPost](ctx, r.posts, pipeline)
}

// CountComments sums the embedded comment arrays across all posts
func (r *DashboardRepository) CountComments(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"commentCount": bson.M{"$sum": bson.M{"$size": "$comments"}},
		}}},
	}
	rows, err := aggregate[struct {
		CommentCount int64 `bson:"commentCount"`
	}](ctx, r.posts, pipeline)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].CommentCount, nil
}

func aggregate[T any](ctx context.Context, c *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []T
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
