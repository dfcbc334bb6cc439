package application

import (
	"strings"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type AnswerService struct {
	answerRepo   domain.AnswerRepository
	questionRepo domain.QuestionRepository
	surveyRepo   domain.SurveyRepository
}

// NewAnswerService creates a new answer service instance.
func NewAnswerService(answerRepo domain.AnswerRepository, questionRepo domain.QuestionRepository, surveyRepo domain.SurveyRepository) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
	}
}

// Submit records the caller's answer to a question of a published survey.
// Content is stored as an opaque string; the client interprets it against the
// question type ("Oui"/"Non" for booleans, comma-joined values for
// multi-select). A second submission for the same question replaces the
// first one, which is what the form UI expects.
func (s *AnswerService) Submit(questionID, userID int, content string) (*domain.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.Invalid("answer content is required")
	}

	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}

	survey, err := s.surveyRepo.GetByID(question.SurveyID)
	if err != nil {
		return nil, err
	}
	if survey.Status != domain.SurveyStatusPublished {
		return nil, domain.Forbidden("survey is not open for responses")
	}

	existing, err := s.answerRepo.GetByUserAndQuestion(userID, questionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.answerRepo.UpdateContent(existing.AnswerID, content); err != nil {
			return nil, err
		}
		existing.Content = content
		return existing, nil
	}

	answer := &domain.Answer{
		Content:    content,
		QuestionID: questionID,
		UserID:     userID,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// ListMine returns the caller's answers to one survey, used to refill the
// response form.
func (s *AnswerService) ListMine(surveyID, userID int) ([]domain.Answer, error) {
	if _, err := s.surveyRepo.GetByID(surveyID); err != nil {
		return nil, err
	}
	return s.answerRepo.ListBySurveyAndUser(surveyID, userID)
}
