package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResponseService handles survey answers. A user answers each question at
// most once.
type ResponseService struct {
	responseRepo repositories.ResponseRepository
	questionRepo repositories.QuestionRepository
	surveyRepo   repositories.SurveyRepository
	userRepo     repositories.UserRepository
}

// NewResponseService creates a new ResponseService
func NewResponseService(
	responseRepo repositories.ResponseRepository,
	questionRepo repositories.QuestionRepository,
	surveyRepo repositories.SurveyRepository,
	userRepo repositories.UserRepository,
) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
		userRepo:     userRepo,
	}
}

// CreateResponse records an answer. The first answer a user gives on a
// survey also bumps that survey's respondent counter.
func (s *ResponseService) CreateResponse(ctx context.Context, response *models.Response) (*models.Response, error) {
	if response.Value == "" {
		return nil, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}
	question, err := s.questionRepo.FindByID(ctx, response.QuestionID)
	if err != nil {
		return nil, translate(err)
	}
	if _, err := s.userRepo.FindByID(ctx, response.UserID); err != nil {
		return nil, translate(err)
	}

	if _, err := s.responseRepo.FindByQuestionAndUser(ctx, response.QuestionID, response.UserID); err == nil {
		return nil, ErrDuplicateResponse
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	first, err := s.firstAnswerOnSurvey(ctx, question.SurveyID, response.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	if first {
		if err := s.bumpRespondents(ctx, question.SurveyID); err != nil {
			log.Printf("failed to bump respondent count on survey %s: %v", question.SurveyID.Hex(), err)
		}
	}
	return response, nil
}

// firstAnswerOnSurvey reports whether the user has not yet answered any
// question belonging to the survey.
func (s *ResponseService) firstAnswerOnSurvey(ctx context.Context, surveyID, userID primitive.ObjectID) (bool, error) {
	questions, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return false, err
	}
	surveyQuestions := make(map[primitive.ObjectID]bool, len(questions))
	for _, q := range questions {
		surveyQuestions[q.ID] = true
	}

	answered, err := s.responseRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, r := range answered {
		if surveyQuestions[r.QuestionID] {
			return false, nil
		}
	}
	return true, nil
}

func (s *ResponseService) bumpRespondents(ctx context.Context, surveyID primitive.ObjectID) error {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return err
	}
	survey.NumberOfRespondents++
	return s.surveyRepo.Update(ctx, survey)
}

// GetResponseByID retrieves a response by ID
func (s *ResponseService) GetResponseByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	response, err := s.responseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return response, nil
}

// GetAllResponses retrieves all responses
func (s *ResponseService) GetAllResponses(ctx context.Context) ([]*models.Response, error) {
	return s.responseRepo.FindAll(ctx)
}

// GetResponsesByQuestion retrieves all responses to a question
func (s *ResponseService) GetResponsesByQuestion(ctx context.Context, questionID primitive.ObjectID) ([]*models.Response, error) {
	return s.responseRepo.FindByQuestionID(ctx, questionID)
}

// GetResponsesBySurvey retrieves the responses to every question of a survey
func (s *ResponseService) GetResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]*models.Response, error) {
	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		return nil, translate(err)
	}
	questions, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	responses := []*models.Response{}
	for _, q := range questions {
		batch, err := s.responseRepo.FindByQuestionID(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, batch...)
	}
	return responses, nil
}

// GetResponsesByUser retrieves all responses submitted by a user
func (s *ResponseService) GetResponsesByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Response, error) {
	return s.responseRepo.FindByUserID(ctx, userID)
}

// UpdateResponse replaces the answer value
func (s *ResponseService) UpdateResponse(ctx context.Context, id primitive.ObjectID, value string) (*models.Response, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}
	response, err := s.responseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	response.Value = value
	if err := s.responseRepo.Update(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// DeleteResponse deletes a response by ID
func (s *ResponseService) DeleteResponse(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.responseRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.responseRepo.Delete(ctx, id)
}
