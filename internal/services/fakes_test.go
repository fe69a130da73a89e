package services

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes backing the service tests.

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[primitive.ObjectID]*models.Admin)}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()
	copied := *admin
	r.admins[admin.ID] = &copied
	return nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) FindAll(ctx context.Context) ([]*models.Admin, error) {
	out := make([]*models.Admin, 0, len(r.admins))
	for _, admin := range r.admins {
		copied := *admin
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	if _, ok := r.admins[admin.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	admin.UpdatedAt = time.Now()
	copied := *admin
	r.admins[admin.ID] = &copied
	return nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.admins[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.admins, id)
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindByResetCode(ctx context.Context, code string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetCode != "" && user.ResetCode == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

// Update mirrors the Mongo implementation's $set semantics: the reset code
// fields carry omitempty tags, so emptied values never reach the document.
func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	copied := *user
	if copied.ResetCode == "" {
		copied.ResetCode = stored.ResetCode
	}
	if copied.ResetCodeExpires.IsZero() {
		copied.ResetCodeExpires = stored.ResetCodeExpires
	}
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ClearResetCode(ctx context.Context, id primitive.ObjectID) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.ResetCode = ""
	user.ResetCodeExpires = time.Time{}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Points += delta
	return nil
}

func (r *fakeUserRepo) DebitPoints(ctx context.Context, id primitive.ObjectID, cost int) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if user.Points < cost {
		return repositories.ErrInsufficientPoints
	}
	user.Points -= cost
	return nil
}

type fakeTripRepo struct {
	trips map[primitive.ObjectID]*models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[primitive.ObjectID]*models.Trip)}
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *fakeTripRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *trip
	return &copied, nil
}

func (r *fakeTripRepo) FindAll(ctx context.Context) ([]*models.Trip, error) {
	trips := make([]*models.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		copied := *trip
		trips = append(trips, &copied)
	}
	return trips, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, trip *models.Trip) error {
	if _, ok := r.trips[trip.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.trips, id)
	return nil
}

type fakeEventRepo struct {
	events map[primitive.ObjectID]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[primitive.ObjectID]*models.Event)}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context) ([]*models.Event, error) {
	events := make([]*models.Event, 0, len(r.events))
	for _, event := range r.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func (r *fakeEventRepo) FindActive(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	for _, event := range r.events {
		if event.IsActive {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.events, id)
	return nil
}

type fakeRewardRepo struct {
	rewards map[primitive.ObjectID]*models.Reward
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{rewards: make(map[primitive.ObjectID]*models.Reward)}
}

func (r *fakeRewardRepo) Create(ctx context.Context, reward *models.Reward) error {
	reward.ID = primitive.NewObjectID()
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	copied := *reward
	r.rewards[reward.ID] = &copied
	return nil
}

func (r *fakeRewardRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	reward, ok := r.rewards[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *reward
	return &copied, nil
}

func (r *fakeRewardRepo) FindAll(ctx context.Context) ([]*models.Reward, error) {
	rewards := make([]*models.Reward, 0, len(r.rewards))
	for _, reward := range r.rewards {
		copied := *reward
		rewards = append(rewards, &copied)
	}
	return rewards, nil
}

func (r *fakeRewardRepo) Update(ctx context.Context, reward *models.Reward) error {
	if _, ok := r.rewards[reward.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *reward
	r.rewards[reward.ID] = &copied
	return nil
}

func (r *fakeRewardRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.rewards, id)
	return nil
}

type fakeReservationRepo struct {
	reservations map[primitive.ObjectID]*models.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[primitive.ObjectID]*models.Reservation)}
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *reservation
	return &copied, nil
}

func (r *fakeReservationRepo) FindAll(ctx context.Context) ([]*models.Reservation, error) {
	return r.filter(func(*models.Reservation) bool { return true }), nil
}

func (r *fakeReservationRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool { return res.UserID == userID }), nil
}

func (r *fakeReservationRepo) FindByTripID(ctx context.Context, tripID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool { return res.TripID == tripID }), nil
}

func (r *fakeReservationRepo) FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool { return res.EventID == eventID }), nil
}

func (r *fakeReservationRepo) FindByStatus(ctx context.Context, status string) ([]*models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool { return res.Status == status }), nil
}

func (r *fakeReservationRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Reservation, error) {
	return r.filter(func(res *models.Reservation) bool {
		return !res.CreatedAt.Before(start) && res.CreatedAt.Before(end)
	}), nil
}

func (r *fakeReservationRepo) CountByTripID(ctx context.Context, tripID primitive.ObjectID) (int64, error) {
	return int64(len(r.filter(func(res *models.Reservation) bool { return res.TripID == tripID }))), nil
}

func (r *fakeReservationRepo) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return int64(len(r.filter(func(res *models.Reservation) bool { return res.EventID == eventID }))), nil
}

func (r *fakeReservationRepo) Update(ctx context.Context, reservation *models.Reservation) error {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	reservation, ok := r.reservations[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	reservation.Status = status
	return nil
}

func (r *fakeReservationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.reservations, id)
	return nil
}

func (r *fakeReservationRepo) filter(keep func(*models.Reservation) bool) []*models.Reservation {
	result := []*models.Reservation{}
	for _, reservation := range r.reservations {
		if keep(reservation) {
			copied := *reservation
			result = append(result, &copied)
		}
	}
	return result
}

type fakeEventReservationRepo struct {
	reservations map[primitive.ObjectID]*models.EventReservation
}

func newFakeEventReservationRepo() *fakeEventReservationRepo {
	return &fakeEventReservationRepo{reservations: make(map[primitive.ObjectID]*models.EventReservation)}
}

func (r *fakeEventReservationRepo) Create(ctx context.Context, reservation *models.EventReservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeEventReservationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventReservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *reservation
	return &copied, nil
}

func (r *fakeEventReservationRepo) FindAll(ctx context.Context) ([]*models.EventReservation, error) {
	return r.filter(func(*models.EventReservation) bool { return true }), nil
}

func (r *fakeEventReservationRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.EventReservation, error) {
	return r.filter(func(res *models.EventReservation) bool { return res.UserID == userID }), nil
}

func (r *fakeEventReservationRepo) FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventReservation, error) {
	return r.filter(func(res *models.EventReservation) bool { return res.EventID == eventID }), nil
}

func (r *fakeEventReservationRepo) FindByStatus(ctx context.Context, status string) ([]*models.EventReservation, error) {
	return r.filter(func(res *models.EventReservation) bool { return res.Status == status }), nil
}

func (r *fakeEventReservationRepo) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return int64(len(r.filter(func(res *models.EventReservation) bool { return res.EventID == eventID }))), nil
}

func (r *fakeEventReservationRepo) Update(ctx context.Context, reservation *models.EventReservation) error {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeEventReservationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	reservation, ok := r.reservations[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	reservation.Status = status
	return nil
}

func (r *fakeEventReservationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.reservations, id)
	return nil
}

func (r *fakeEventReservationRepo) filter(keep func(*models.EventReservation) bool) []*models.EventReservation {
	result := []*models.EventReservation{}
	for _, reservation := range r.reservations {
		if keep(reservation) {
			copied := *reservation
			result = append(result, &copied)
		}
	}
	return result
}

type fakeClaimedRewardRepo struct {
	claims map[primitive.ObjectID]*models.ClaimedReward
}

func newFakeClaimedRewardRepo() *fakeClaimedRewardRepo {
	return &fakeClaimedRewardRepo{claims: make(map[primitive.ObjectID]*models.ClaimedReward)}
}

func (r *fakeClaimedRewardRepo) Create(ctx context.Context, claim *models.ClaimedReward) error {
	claim.ID = primitive.NewObjectID()
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = time.Now()
	copied := *claim
	r.claims[claim.ID] = &copied
	return nil
}

func (r *fakeClaimedRewardRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClaimedReward, error) {
	claim, ok := r.claims[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *claim
	return &copied, nil
}

func (r *fakeClaimedRewardRepo) FindAll(ctx context.Context) ([]*models.ClaimedReward, error) {
	claims := make([]*models.ClaimedReward, 0, len(r.claims))
	for _, claim := range r.claims {
		copied := *claim
		claims = append(claims, &copied)
	}
	return claims, nil
}

func (r *fakeClaimedRewardRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ClaimedReward, error) {
	claims := []*models.ClaimedReward{}
	for _, claim := range r.claims {
		if claim.UserID == userID {
			copied := *claim
			claims = append(claims, &copied)
		}
	}
	return claims, nil
}

type fakeSurveyRepo struct {
	surveys map[primitive.ObjectID]*models.Survey
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{surveys: make(map[primitive.ObjectID]*models.Survey)}
}

func (r *fakeSurveyRepo) Create(ctx context.Context, survey *models.Survey) error {
	survey.ID = primitive.NewObjectID()
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()
	copied := *survey
	copied.Questions = nil
	r.surveys[survey.ID] = &copied
	return nil
}

func (r *fakeSurveyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *survey
	return &copied, nil
}

func (r *fakeSurveyRepo) FindAll(ctx context.Context) ([]*models.Survey, error) {
	surveys := make([]*models.Survey, 0, len(r.surveys))
	for _, survey := range r.surveys {
		copied := *survey
		surveys = append(surveys, &copied)
	}
	return surveys, nil
}

func (r *fakeSurveyRepo) Update(ctx context.Context, survey *models.Survey) error {
	if _, ok := r.surveys[survey.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *survey
	copied.Questions = nil
	r.surveys[survey.ID] = &copied
	return nil
}

func (r *fakeSurveyRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	survey, ok := r.surveys[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	survey.Status = status
	return nil
}

func (r *fakeSurveyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.surveys, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[primitive.ObjectID]*models.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[primitive.ObjectID]*models.Question)}
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	question.ID = primitive.NewObjectID()
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	copied := *question
	r.questions[question.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) CreateMany(ctx context.Context, questions []*models.Question) error {
	for _, q := range questions {
		if err := r.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeQuestionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *question
	return &copied, nil
}

func (r *fakeQuestionRepo) FindBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*models.Question, error) {
	questions := []*models.Question{}
	for _, q := range r.questions {
		if q.SurveyID == surveyID {
			copied := *q
			questions = append(questions, &copied)
		}
	}
	for i := 0; i < len(questions); i++ {
		for j := i + 1; j < len(questions); j++ {
			if questions[j].Order < questions[i].Order {
				questions[i], questions[j] = questions[j], questions[i]
			}
		}
	}
	return questions, nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, question *models.Question) error {
	if _, ok := r.questions[question.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *question
	r.questions[question.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.questions, id)
	return nil
}

func (r *fakeQuestionRepo) DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error {
	for id, q := range r.questions {
		if q.SurveyID == surveyID {
			delete(r.questions, id)
		}
	}
	return nil
}

type fakeResponseRepo struct {
	responses map[primitive.ObjectID]*models.Response
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: make(map[primitive.ObjectID]*models.Response)}
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *models.Response) error {
	response.ID = primitive.NewObjectID()
	response.AnsweredAt = time.Now()
	copied := *response
	r.responses[response.ID] = &copied
	return nil
}

func (r *fakeResponseRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	response, ok := r.responses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *response
	return &copied, nil
}

func (r *fakeResponseRepo) FindAll(ctx context.Context) ([]*models.Response, error) {
	responses := make([]*models.Response, 0, len(r.responses))
	for _, response := range r.responses {
		copied := *response
		responses = append(responses, &copied)
	}
	return responses, nil
}

func (r *fakeResponseRepo) FindByQuestionID(ctx context.Context, questionID primitive.ObjectID) ([]*models.Response, error) {
	responses := []*models.Response{}
	for _, response := range r.responses {
		if response.QuestionID == questionID {
			copied := *response
			responses = append(responses, &copied)
		}
	}
	return responses, nil
}

func (r *fakeResponseRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Response, error) {
	responses := []*models.Response{}
	for _, response := range r.responses {
		if response.UserID == userID {
			copied := *response
			responses = append(responses, &copied)
		}
	}
	return responses, nil
}

func (r *fakeResponseRepo) FindByQuestionAndUser(ctx context.Context, questionID, userID primitive.ObjectID) (*models.Response, error) {
	for _, response := range r.responses {
		if response.QuestionID == questionID && response.UserID == userID {
			copied := *response
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeResponseRepo) Update(ctx context.Context, response *models.Response) error {
	if _, ok := r.responses[response.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *response
	r.responses[response.ID] = &copied
	return nil
}

func (r *fakeResponseRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.responses, id)
	return nil
}

type fakeCommunityPostRepo struct {
	posts map[primitive.ObjectID]*models.CommunityPost
}

func newFakeCommunityPostRepo() *fakeCommunityPostRepo {
	return &fakeCommunityPostRepo{posts: make(map[primitive.ObjectID]*models.CommunityPost)}
}

func (r *fakeCommunityPostRepo) Create(ctx context.Context, post *models.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeCommunityPostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *post
	return &copied, nil
}

func (r *fakeCommunityPostRepo) FindAll(ctx context.Context) ([]*models.CommunityPost, error) {
	posts := make([]*models.CommunityPost, 0, len(r.posts))
	for _, post := range r.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (r *fakeCommunityPostRepo) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, id := range post.Likes {
		if id == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return nil
}

func (r *fakeCommunityPostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	likes := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	return nil
}

func (r *fakeCommunityPostRepo) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error {
	post, ok := r.posts[postID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (r *fakeCommunityPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.posts, id)
	return nil
}

// Interface checks keep the fakes honest.
var (
	_ repositories.AdminRepository            = (*fakeAdminRepo)(nil)
	_ repositories.UserRepository             = (*fakeUserRepo)(nil)
	_ repositories.TripRepository             = (*fakeTripRepo)(nil)
	_ repositories.EventRepository            = (*fakeEventRepo)(nil)
	_ repositories.RewardRepository           = (*fakeRewardRepo)(nil)
	_ repositories.ReservationRepository      = (*fakeReservationRepo)(nil)
	_ repositories.EventReservationRepository = (*fakeEventReservationRepo)(nil)
	_ repositories.ClaimedRewardRepository    = (*fakeClaimedRewardRepo)(nil)
	_ repositories.SurveyRepository           = (*fakeSurveyRepo)(nil)
	_ repositories.QuestionRepository         = (*fakeQuestionRepo)(nil)
	_ repositories.ResponseRepository         = (*fakeResponseRepo)(nil)
	_ repositories.CommunityPostRepository    = (*fakeCommunityPostRepo)(nil)
)
