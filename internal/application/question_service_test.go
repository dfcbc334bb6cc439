package application

import (
	"testing"

	"github.com/opinio-app/survey_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSurvey(t *testing.T, surveys *stubSurveyRepo, userID int, status domain.SurveyStatus) *domain.Survey {
	t.Helper()
	survey := &domain.Survey{Title: "S", Status: status, UserID: userID, CategoryID: 1}
	require.NoError(t, surveys.Create(survey))
	return survey
}

func TestCreateQuestionTypes(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)
	svc := NewQuestionService(newStubQuestionRepo(), surveys)

	options := []domain.AnswerOption{{Label: "Oui", Value: "oui"}, {Label: "Non", Value: "non"}}

	tests := []struct {
		name    string
		input   CreateQuestionInput
		wantErr bool
	}{
		{"text", CreateQuestionInput{Title: "Comments?", Type: domain.QuestionTypeText}, false},
		{"boolean", CreateQuestionInput{Title: "Satisfied?", Type: domain.QuestionTypeBoolean}, false},
		{"select with options", CreateQuestionInput{Title: "Pick one", Type: domain.QuestionTypeSelect, Options: options}, false},
		{"multiple choice with options", CreateQuestionInput{Title: "Pick many", Type: domain.QuestionTypeMultipleChoice, Options: options}, false},
		{"select without options", CreateQuestionInput{Title: "Pick one", Type: domain.QuestionTypeSelect}, true},
		{"text with options", CreateQuestionInput{Title: "Comments?", Type: domain.QuestionTypeText, Options: options}, true},
		{"unknown type", CreateQuestionInput{Title: "?", Type: "rating"}, true},
		{"empty title", CreateQuestionInput{Title: " ", Type: domain.QuestionTypeText}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(survey.SurveyID, 7, domain.RoleUser, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.ErrorInvalid, domain.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateQuestionOwnership(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)
	svc := NewQuestionService(newStubQuestionRepo(), surveys)

	_, err := svc.Create(survey.SurveyID, 8, domain.RoleUser, CreateQuestionInput{Title: "Q", Type: domain.QuestionTypeText})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorForbidden, domain.KindOf(err))
}

func TestQuestionOptionsKeepOrder(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)
	questions := newStubQuestionRepo()
	svc := NewQuestionService(questions, surveys)

	options := []domain.AnswerOption{
		{Label: "First", Value: "1"},
		{Label: "Second", Value: "2"},
		{Label: "Third", Value: "3"},
	}
	created, err := svc.Create(survey.SurveyID, 7, domain.RoleUser, CreateQuestionInput{
		Title: "Ordered", Type: domain.QuestionTypeSelect, Options: options,
	})
	require.NoError(t, err)

	listed, err := svc.ListBySurvey(survey.SurveyID, 7, domain.RoleUser)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.QuestionID, listed[0].QuestionID)
	assert.Equal(t, options, listed[0].Options)
}

func TestUpdateQuestionKeepsType(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)
	questions := newStubQuestionRepo()
	svc := NewQuestionService(questions, surveys)

	created, err := svc.Create(survey.SurveyID, 7, domain.RoleUser, CreateQuestionInput{
		Title: "Old title", Type: domain.QuestionTypeBoolean,
	})
	require.NoError(t, err)

	title := "New title"
	updated, err := svc.Update(created.QuestionID, 7, domain.RoleUser, UpdateQuestionInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, domain.QuestionTypeBoolean, updated.Type)
}

func TestDeleteQuestionOwnership(t *testing.T) {
	surveys := newStubSurveyRepo()
	survey := seedSurvey(t, surveys, 7, domain.SurveyStatusDraft)
	questions := newStubQuestionRepo()
	svc := NewQuestionService(questions, surveys)

	created, err := svc.Create(survey.SurveyID, 7, domain.RoleUser, CreateQuestionInput{
		Title: "Q", Type: domain.QuestionTypeText,
	})
	require.NoError(t, err)

	err = svc.Delete(created.QuestionID, 8, domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorForbidden, domain.KindOf(err))

	require.NoError(t, svc.Delete(created.QuestionID, 8, domain.RoleAdmin))
}
