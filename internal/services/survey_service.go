package services

import (
	"context"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyService handles surveys and their embedded question lists
type SurveyService struct {
	surveyRepo   repositories.SurveyRepository
	questionRepo repositories.QuestionRepository
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(surveyRepo repositories.SurveyRepository, questionRepo repositories.QuestionRepository) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
	}
}

// CreateSurvey creates a draft survey together with its questions. Questions
// without an explicit order get their position in the submitted list.
func (s *SurveyService) CreateSurvey(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	if survey.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	for i, q := range survey.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		if q.Order == 0 {
			q.Order = i + 1
		}
	}

	survey.Status = models.SurveyDraft
	survey.IsActive = true
	survey.NumberOfRespondents = 0
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}

	for _, q := range survey.Questions {
		q.SurveyID = survey.ID
	}
	if err := s.questionRepo.CreateMany(ctx, survey.Questions); err != nil {
		return nil, err
	}
	return survey, nil
}

// GetSurveyByID retrieves a survey with its questions in display order
func (s *SurveyService) GetSurveyByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	questions, err := s.questionRepo.FindBySurveyID(ctx, id)
	if err != nil {
		return nil, err
	}
	survey.Questions = questions
	return survey, nil
}

// GetAllSurveys retrieves all surveys with their questions
func (s *SurveyService) GetAllSurveys(ctx context.Context) ([]*models.Survey, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, survey := range surveys {
		questions, err := s.questionRepo.FindBySurveyID(ctx, survey.ID)
		if err != nil {
			return nil, err
		}
		survey.Questions = questions
	}
	return surveys, nil
}

// UpdateSurvey updates the survey fields and reconciles its question list
// against the submitted one: questions carrying an ID are updated, questions
// without an ID are inserted, and stored questions missing from the payload
// are deleted. A nil question list leaves the stored questions untouched.
func (s *SurveyService) UpdateSurvey(ctx context.Context, id primitive.ObjectID, updated *models.Survey) (*models.Survey, error) {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Title != "" {
		survey.Title = updated.Title
	}
	if updated.Description != "" {
		survey.Description = updated.Description
	}
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}

	if updated.Questions != nil {
		if err := s.reconcileQuestions(ctx, survey.ID, updated.Questions); err != nil {
			return nil, err
		}
	}

	questions, err := s.questionRepo.FindBySurveyID(ctx, survey.ID)
	if err != nil {
		return nil, err
	}
	survey.Questions = questions
	return survey, nil
}

func (s *SurveyService) reconcileQuestions(ctx context.Context, surveyID primitive.ObjectID, incoming []*models.Question) error {
	existing, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return err
	}
	stored := make(map[primitive.ObjectID]*models.Question, len(existing))
	for _, q := range existing {
		stored[q.ID] = q
	}

	keep := make(map[primitive.ObjectID]bool, len(incoming))
	var inserts []*models.Question
	for i, q := range incoming {
		if err := validateQuestion(q); err != nil {
			return err
		}
		if q.Order == 0 {
			q.Order = i + 1
		}
		q.SurveyID = surveyID

		if q.ID.IsZero() {
			inserts = append(inserts, q)
			continue
		}
		old, ok := stored[q.ID]
		if !ok {
			return fmt.Errorf("%w: question %s does not belong to this survey", ErrInvalidInput, q.ID.Hex())
		}
		keep[q.ID] = true
		old.Text = q.Text
		old.Type = q.Type
		old.Options = q.Options
		old.Order = q.Order
		if err := s.questionRepo.Update(ctx, old); err != nil {
			return err
		}
	}

	for _, q := range existing {
		if !keep[q.ID] {
			if err := s.questionRepo.Delete(ctx, q.ID); err != nil {
				return err
			}
		}
	}

	return s.questionRepo.CreateMany(ctx, inserts)
}

// PublishSurvey moves a survey to the published status
func (s *SurveyService) PublishSurvey(ctx context.Context, id primitive.ObjectID) error {
	return translate(s.surveyRepo.UpdateStatus(ctx, id, models.SurveyPublished))
}

// CompleteSurvey moves a survey to the completed status
func (s *SurveyService) CompleteSurvey(ctx context.Context, id primitive.ObjectID) error {
	return translate(s.surveyRepo.UpdateStatus(ctx, id, models.SurveyCompleted))
}

// DeleteSurvey removes a survey and its questions. Published surveys are
// protected; recorded responses are kept.
func (s *SurveyService) DeleteSurvey(ctx context.Context, id primitive.ObjectID) error {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if survey.Status == models.SurveyPublished {
		return ErrSurveyPublished
	}
	if err := s.questionRepo.DeleteBySurveyID(ctx, id); err != nil {
		return err
	}
	return s.surveyRepo.Delete(ctx, id)
}

// AddQuestion appends a question to a survey. Without an explicit order it
// goes to the end of the list.
func (s *SurveyService) AddQuestion(ctx context.Context, question *models.Question) (*models.Question, error) {
	if _, err := s.surveyRepo.FindByID(ctx, question.SurveyID); err != nil {
		return nil, translate(err)
	}
	if err := validateQuestion(question); err != nil {
		return nil, err
	}
	if question.Order == 0 {
		existing, err := s.questionRepo.FindBySurveyID(ctx, question.SurveyID)
		if err != nil {
			return nil, err
		}
		question.Order = len(existing) + 1
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetQuestionByID retrieves a question by ID
func (s *SurveyService) GetQuestionByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return question, nil
}

// GetQuestionsBySurvey retrieves a survey's questions in display order
func (s *SurveyService) GetQuestionsBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]*models.Question, error) {
	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		return nil, translate(err)
	}
	return s.questionRepo.FindBySurveyID(ctx, surveyID)
}

// UpdateQuestion updates a question's text, type, options and order
func (s *SurveyService) UpdateQuestion(ctx context.Context, id primitive.ObjectID, updated *models.Question) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Text != "" {
		question.Text = updated.Text
	}
	if updated.Type != "" {
		question.Type = updated.Type
	}
	question.Options = updated.Options
	if updated.Order > 0 {
		question.Order = updated.Order
	}
	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion deletes a question by ID
func (s *SurveyService) DeleteQuestion(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.questionRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.questionRepo.Delete(ctx, id)
}

// ReorderQuestions applies the submitted display orders to the listed
// questions. Questions left out of the list keep their current order.
func (s *SurveyService) ReorderQuestions(ctx context.Context, surveyID primitive.ObjectID, orders []models.QuestionOrder) error {
	if len(orders) == 0 {
		return fmt.Errorf("%w: questionOrders is required", ErrInvalidInput)
	}
	existing, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return err
	}
	stored := make(map[primitive.ObjectID]*models.Question, len(existing))
	for _, q := range existing {
		stored[q.ID] = q
	}

	for _, o := range orders {
		q, ok := stored[o.ID]
		if !ok {
			return fmt.Errorf("%w: question %s does not belong to this survey", ErrInvalidInput, o.ID.Hex())
		}
		q.Order = o.Order
		if err := s.questionRepo.Update(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// validateQuestion enforces the type/options pairing: choice-style questions
// must carry options, the rest must not.
func validateQuestion(q *models.Question) error {
	if q.Text == "" {
		return fmt.Errorf("%w: question text is required", ErrInvalidInput)
	}
	if !models.ValidQuestionType(q.Type) {
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidInput, q.Type)
	}
	if models.QuestionTypeRequiresOptions(q.Type) {
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question type %q requires options", ErrInvalidInput, q.Type)
		}
	} else {
		q.Options = nil
	}
	return nil
}
