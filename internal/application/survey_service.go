package application

import (
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
	"go.uber.org/zap"
)

type SurveyService struct {
	surveyRepo   domain.SurveyRepository
	categoryRepo domain.CategoryRepository
	paymentRepo  domain.PaymentRepository
	freeQuota    int
	logger       *zap.Logger
}

// NewSurveyService creates a new survey service instance. freeQuota is how
// many surveys an account may create without purchased quota.
func NewSurveyService(
	surveyRepo domain.SurveyRepository,
	categoryRepo domain.CategoryRepository,
	paymentRepo domain.PaymentRepository,
	freeQuota int,
	logger *zap.Logger,
) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		categoryRepo: categoryRepo,
		paymentRepo:  paymentRepo,
		freeQuota:    freeQuota,
		logger:       logger,
	}
}

// CreateSurveyInput is the payload for survey creation.
type CreateSurveyInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`
	Public      bool   `json:"public"`
}

// UpdateSurveyInput carries partial updates; nil fields keep their value.
type UpdateSurveyInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	CategoryID  *int                 `json:"categoryId"`
	Public      *bool                `json:"public"`
	Status      *domain.SurveyStatus `json:"status"`
}

// Create makes a new draft survey owned by the caller. Creation counts
// against the caller's quota: the free allowance plus every purchased
// survey_count.
func (s *SurveyService) Create(userID int, input CreateSurveyInput) (*domain.Survey, error) {
	if err := ValidateSurveyInput(input.Title, input.CategoryID); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return nil, err
	}

	owned, err := s.surveyRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	purchased, err := s.paymentRepo.SumSurveyCountByUser(userID)
	if err != nil {
		return nil, err
	}
	if owned >= s.freeQuota+purchased {
		return nil, domain.Forbidden(fmt.Sprintf("survey quota reached (%d of %d)", owned, s.freeQuota+purchased))
	}

	survey := &domain.Survey{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.SurveyStatusDraft,
		Public:      input.Public,
		UserID:      userID,
		CategoryID:  input.CategoryID,
	}

	if err := s.surveyRepo.Create(survey); err != nil {
		return nil, err
	}

	s.logger.Info("survey created", zap.Int("surveyId", survey.SurveyID), zap.Int("userId", userID))
	return survey, nil
}

// Get returns the survey. Public published surveys are readable by anyone,
// including anonymous callers (userID 0); everything else needs the owner or
// an admin.
func (s *SurveyService) Get(surveyID, userID int, role domain.Role) (*domain.Survey, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if !canReadSurvey(survey, userID, role) {
		return nil, domain.Forbidden("survey is not accessible")
	}
	return survey, nil
}

// ListMine returns the caller's surveys.
func (s *SurveyService) ListMine(userID int) ([]domain.Survey, error) {
	return s.surveyRepo.ListByUser(userID)
}

// ListPublished returns public published surveys, optionally by category.
func (s *SurveyService) ListPublished(categoryID *int, limit, offset int) ([]domain.Survey, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.surveyRepo.ListPublished(categoryID, limit, offset)
}

// Update applies partial changes for the owner or an admin. Status is an
// unchecked enum write: any member of the enum may replace any other, except
// that only an admin may censor.
func (s *SurveyService) Update(surveyID, userID int, role domain.Role, input UpdateSurveyInput) (*domain.Survey, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if !canManageSurvey(survey, userID, role) {
		return nil, domain.Forbidden("only the owner or an admin can update a survey")
	}

	if input.Title != nil {
		survey.Title = *input.Title
	}
	if input.Description != nil {
		survey.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, err
		}
		survey.CategoryID = *input.CategoryID
	}
	if input.Public != nil {
		survey.Public = *input.Public
	}
	if input.Status != nil {
		if !domain.ValidSurveyStatus(*input.Status) {
			return nil, domain.Invalid(fmt.Sprintf("unknown survey status %q", *input.Status))
		}
		if *input.Status == domain.SurveyStatusCensored && role != domain.RoleAdmin {
			return nil, domain.Forbidden("only an admin can censor a survey")
		}
		survey.Status = *input.Status
	}

	if err := ValidateSurveyInput(survey.Title, survey.CategoryID); err != nil {
		return nil, err
	}

	if err := s.surveyRepo.Update(survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Delete removes the survey for the owner or an admin. Answers and the survey
// row go in one transaction; questions cascade at the DB level.
func (s *SurveyService) Delete(surveyID, userID int, role domain.Role) error {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return err
	}
	if !canManageSurvey(survey, userID, role) {
		return domain.Forbidden("only the owner or an admin can delete a survey")
	}

	if err := s.surveyRepo.DeleteWithAnswers(surveyID); err != nil {
		return err
	}

	s.logger.Info("survey deleted", zap.Int("surveyId", surveyID), zap.Int("userId", userID))
	return nil
}

func canManageSurvey(survey *domain.Survey, userID int, role domain.Role) bool {
	return role == domain.RoleAdmin || survey.UserID == userID
}

func canReadSurvey(survey *domain.Survey, userID int, role domain.Role) bool {
	if survey.Public && survey.Status == domain.SurveyStatusPublished {
		return true
	}
	return canManageSurvey(survey, userID, role)
}
