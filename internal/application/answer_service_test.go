package application

import (
	"testing"

	"github.com/opinio-app/survey_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswerRequiresPublishedSurvey(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)

	questions := newStubQuestionRepo()
	question := &domain.Question{Title: "Q", Type: domain.QuestionTypeText, SurveyID: survey.SurveyID}
	require.NoError(t, questions.Create(question))

	svc := NewAnswerService(newStubAnswerRepo(questions), questions, surveys)

	_, err := svc.Submit(question.QuestionID, 9, "hello")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorForbidden, domain.KindOf(err))
}

func TestSubmitAnswerStoresOpaqueContent(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	question := &domain.Question{Title: "Satisfied?", Type: domain.QuestionTypeBoolean, SurveyID: survey.SurveyID}
	require.NoError(t, questions.Create(question))

	answers := newStubAnswerRepo(questions)
	svc := NewAnswerService(answers, questions, surveys)

	// The server does not validate content against the question type.
	answer, err := svc.Submit(question.QuestionID, 9, "Oui")
	require.NoError(t, err)
	assert.Equal(t, "Oui", answer.Content)
	assert.Equal(t, 9, answer.UserID)

	_, err = svc.Submit(question.QuestionID, 9, "   ")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorInvalid, domain.KindOf(err))
}

func TestResubmitReplacesAnswer(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	question := &domain.Question{Title: "Q", Type: domain.QuestionTypeText, SurveyID: survey.SurveyID}
	require.NoError(t, questions.Create(question))

	answers := newStubAnswerRepo(questions)
	svc := NewAnswerService(answers, questions, surveys)

	first, err := svc.Submit(question.QuestionID, 9, "first")
	require.NoError(t, err)

	second, err := svc.Submit(question.QuestionID, 9, "second")
	require.NoError(t, err)

	// Same logical answer, updated in place.
	assert.Equal(t, first.AnswerID, second.AnswerID)
	assert.Len(t, answers.answers, 1)
	assert.Equal(t, "second", answers.answers[first.AnswerID].Content)

	// A different user gets their own row.
	_, err = svc.Submit(question.QuestionID, 10, "third")
	require.NoError(t, err)
	assert.Len(t, answers.answers, 2)
}

func TestListMineReturnsOwnAnswersInQuestionOrder(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusPublished)

	questions := newStubQuestionRepo()
	q1 := &domain.Question{Title: "Q1", Type: domain.QuestionTypeText, SurveyID: survey.SurveyID}
	q2 := &domain.Question{Title: "Q2", Type: domain.QuestionTypeText, SurveyID: survey.SurveyID}
	require.NoError(t, questions.Create(q1))
	require.NoError(t, questions.Create(q2))

	answers := newStubAnswerRepo(questions)
	svc := NewAnswerService(answers, questions, surveys)

	_, err := svc.Submit(q1.QuestionID, 9, "a")
	require.NoError(t, err)
	_, err = svc.Submit(q2.QuestionID, 9, "b")
	require.NoError(t, err)
	_, err = svc.Submit(q1.QuestionID, 10, "c")
	require.NoError(t, err)

	mine, err := svc.ListMine(survey.SurveyID, 9)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, q1.QuestionID, mine[0].QuestionID)
	assert.Equal(t, q2.QuestionID, mine[1].QuestionID)
}
