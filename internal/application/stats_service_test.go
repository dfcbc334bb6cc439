package application

import (
	"testing"

	"github.com/opinio-app/survey_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyStatsCountsCompleteAndPartialResponses(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	var qs []*domain.Question
	for _, title := range []string{"Q1", "Q2", "Q3"} {
		q := &domain.Question{Title: title, Type: domain.QuestionTypeText, SurveyID: survey.SurveyID}
		require.NoError(t, questions.Create(q))
		qs = append(qs, q)
	}

	answers := newStubAnswerRepo(questions)
	answerSvc := NewAnswerService(answers, questions, surveys)

	// Two respondents answer everything, a third stops after one question.
	for _, userID := range []int{20, 21} {
		for _, q := range qs {
			_, err := answerSvc.Submit(q.QuestionID, userID, "x")
			require.NoError(t, err)
		}
	}
	_, err := answerSvc.Submit(qs[0].QuestionID, 22, "x")
	require.NoError(t, err)

	svc := NewStatsService(answers, surveys)
	stats, err := svc.SurveyStats(survey.SurveyID, 7, domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.QuestionCount)
	assert.Equal(t, 3, stats.TotalResponses)
	assert.Equal(t, 2, stats.CompleteResponses)
	assert.Equal(t, 1, stats.PartialResponses)
	assert.Equal(t, 66.67, stats.CompletionRate)
}

func TestSurveyStatsWithoutResponses(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	answers := newStubAnswerRepo(questions)

	svc := NewStatsService(answers, surveys)
	stats, err := svc.SurveyStats(survey.SurveyID, 7, domain.RoleUser)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalResponses)
	assert.Zero(t, stats.CompletionRate)
}

func TestSurveyStatsAccess(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	svc := NewStatsService(newStubAnswerRepo(questions), surveys)

	_, err := svc.SurveyStats(survey.SurveyID, 9, domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorForbidden, domain.KindOf(err))

	// Admins can read any survey's statistics.
	_, err = svc.SurveyStats(survey.SurveyID, 9, domain.RoleAdmin)
	assert.NoError(t, err)
}
