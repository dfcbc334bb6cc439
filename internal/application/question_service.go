package application

import (
	"github.com/opinio-app/survey_backend/internal/domain"
)

type QuestionService struct {
	questionRepo domain.QuestionRepository
	surveyRepo   domain.SurveyRepository
}

// NewQuestionService creates a new question service instance.
func NewQuestionService(questionRepo domain.QuestionRepository, surveyRepo domain.SurveyRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
	}
}

// CreateQuestionInput is the payload for question creation.
type CreateQuestionInput struct {
	Title   string                `json:"title"`
	Type    domain.QuestionType   `json:"type"`
	Options []domain.AnswerOption `json:"options"`
}

// UpdateQuestionInput carries partial updates. The question type is fixed at
// creation and cannot appear here.
type UpdateQuestionInput struct {
	Title   *string                `json:"title"`
	Options *[]domain.AnswerOption `json:"options"`
}

// Create adds a question to a survey the caller manages. Options are required
// for choice types and rejected otherwise; they stay in the given order.
func (s *QuestionService) Create(surveyID, userID int, role domain.Role, input CreateQuestionInput) (*domain.Question, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if !canManageSurvey(survey, userID, role) {
		return nil, domain.Forbidden("only the owner or an admin can add questions")
	}

	if err := ValidateQuestionInput(input.Title, input.Type, input.Options); err != nil {
		return nil, err
	}

	question := &domain.Question{
		Title:    input.Title,
		Type:     input.Type,
		SurveyID: surveyID,
		Options:  input.Options,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// ListBySurvey returns the survey's questions, subject to the survey's read
// visibility.
func (s *QuestionService) ListBySurvey(surveyID, userID int, role domain.Role) ([]domain.Question, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if !canReadSurvey(survey, userID, role) {
		return nil, domain.Forbidden("survey is not accessible")
	}
	return s.questionRepo.ListBySurvey(surveyID)
}

// Update changes the title or replaces the options of a question. Replacing
// options on a question that already has answers shifts what positional
// answers mean; the caller owns that risk.
func (s *QuestionService) Update(questionID, userID int, role domain.Role, input UpdateQuestionInput) (*domain.Question, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}

	survey, err := s.surveyRepo.GetByID(question.SurveyID)
	if err != nil {
		return nil, err
	}
	if !canManageSurvey(survey, userID, role) {
		return nil, domain.Forbidden("only the owner or an admin can update questions")
	}

	if input.Title != nil {
		question.Title = *input.Title
	}
	if input.Options != nil {
		question.Options = *input.Options
	}

	if err := ValidateQuestionInput(question.Title, question.Type, question.Options); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// Delete removes a question; its answers go with it through the DB cascade.
func (s *QuestionService) Delete(questionID, userID int, role domain.Role) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return err
	}

	survey, err := s.surveyRepo.GetByID(question.SurveyID)
	if err != nil {
		return err
	}
	if !canManageSurvey(survey, userID, role) {
		return domain.Forbidden("only the owner or an admin can delete questions")
	}

	return s.questionRepo.Delete(questionID)
}
