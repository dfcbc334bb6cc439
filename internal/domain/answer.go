package domain

import "time"

// Answer is a user's response content to one question. Content is stored as an
// opaque string; type-specific interpretation happens client-side.
type Answer struct {
	AnswerID   int       `json:"answerId"`
	Content    string    `json:"content"`
	QuestionID int       `json:"questionId"`
	UserID     int       `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	// Create inserts the answer and fills AnswerID and CreatedAt.
	Create(answer *Answer) error
	// GetByUserAndQuestion returns (nil, nil) when the user has not answered
	// the question yet. Uniqueness is not DB-enforced; when several rows exist
	// the most recent one is returned.
	GetByUserAndQuestion(userID, questionID int) (*Answer, error)
	// UpdateContent replaces the content of an existing answer.
	UpdateContent(answerID int, content string) error
	// ListBySurveyAndUser returns the user's answers to the survey's
	// questions, in question id order.
	ListBySurveyAndUser(surveyID, userID int) ([]Answer, error)
	// Stats aggregates response counts for the survey. CompletionRate is left
	// zero; the service derives it from the counts.
	Stats(surveyID int) (*SurveyStats, error)
}
