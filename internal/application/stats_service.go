package application

import (
	"math"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type StatsService struct {
	answerRepo domain.AnswerRepository
	surveyRepo domain.SurveyRepository
}

// NewStatsService creates a new stats service instance.
func NewStatsService(answerRepo domain.AnswerRepository, surveyRepo domain.SurveyRepository) *StatsService {
	return &StatsService{
		answerRepo: answerRepo,
		surveyRepo: surveyRepo,
	}
}

// SurveyStats aggregates the survey's responses for the owner or an admin.
// The aggregation runs per request; nothing is cached.
func (s *StatsService) SurveyStats(surveyID, userID int, role domain.Role) (*domain.SurveyStats, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if !canManageSurvey(survey, userID, role) {
		return nil, domain.Forbidden("only the owner or an admin can read survey statistics")
	}

	stats, err := s.answerRepo.Stats(surveyID)
	if err != nil {
		return nil, err
	}

	stats.CompletionRate = completionRate(stats.CompleteResponses, stats.TotalResponses)
	return stats, nil
}

// completionRate is complete/total as a percentage with two decimals;
// zero responses yield zero.
func completionRate(complete, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(complete)/float64(total)*10000) / 100
}
