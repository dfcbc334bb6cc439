package domain

import "time"

type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "draft"
	SurveyStatusPublished SurveyStatus = "published"
	SurveyStatusArchived  SurveyStatus = "archived"
	SurveyStatusCensored  SurveyStatus = "censored"
)

// ValidSurveyStatus reports whether s is a member of the status enum.
func ValidSurveyStatus(s SurveyStatus) bool {
	switch s {
	case SurveyStatusDraft, SurveyStatusPublished, SurveyStatusArchived, SurveyStatusCensored:
		return true
	}
	return false
}

// Survey is a collection of questions owned by a user. Status transitions are
// plain enum writes through the update path; there is no transition guard.
type Survey struct {
	SurveyID    int          `json:"surveyId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      SurveyStatus `json:"status"`
	Public      bool         `json:"public"`
	UserID      int          `json:"userId"`
	CategoryID  int          `json:"categoryId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SurveyStats aggregates responses for one survey. A response is one distinct
// answering user; it is complete when the user answered every question.
type SurveyStats struct {
	SurveyID          int     `json:"surveyId"`
	QuestionCount     int     `json:"questionCount"`
	TotalResponses    int     `json:"totalResponses"`
	CompleteResponses int     `json:"completeResponses"`
	PartialResponses  int     `json:"partialResponses"`
	CompletionRate    float64 `json:"completionRate"`
}

// SurveyRepository defines persistence operations for surveys.
type SurveyRepository interface {
	// Create inserts the survey and fills SurveyID, CreatedAt and UpdatedAt.
	Create(survey *Survey) error
	// GetByID returns the survey or a not_found error.
	GetByID(surveyID int) (*Survey, error)
	// ListByUser returns the user's surveys, newest first.
	ListByUser(userID int) ([]Survey, error)
	// ListPublished returns public published surveys, optionally restricted to
	// a category, newest first, with pagination.
	ListPublished(categoryID *int, limit, offset int) ([]Survey, error)
	// Update writes every mutable field and refreshes UpdatedAt.
	Update(survey *Survey) error
	// DeleteWithAnswers removes the survey's answers and the survey row in one
	// transaction; questions go with the survey through the DB cascade.
	DeleteWithAnswers(surveyID int) error
	// CountByUser returns how many surveys the user owns.
	CountByUser(userID int) (int, error)
}
