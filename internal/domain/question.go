package domain

type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeBoolean        QuestionType = "boolean"
	QuestionTypeSelect         QuestionType = "select"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// ValidQuestionType reports whether t is a member of the type enum.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionTypeText, QuestionTypeBoolean, QuestionTypeSelect, QuestionTypeMultipleChoice:
		return true
	}
	return false
}

// IsChoiceType reports whether the type carries answer options.
func (t QuestionType) IsChoiceType() bool {
	return t == QuestionTypeSelect || t == QuestionTypeMultipleChoice
}

// AnswerOption is one selectable option of a choice question. Options have no
// stable identifier; they are matched by position in stored order.
type AnswerOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is a single prompt within a survey. The type is fixed at creation.
type Question struct {
	QuestionID int            `json:"questionId"`
	Title      string         `json:"title"`
	Type       QuestionType   `json:"type"`
	SurveyID   int            `json:"surveyId"`
	Options    []AnswerOption `json:"options,omitempty"`
}

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	// Create inserts the question and fills QuestionID.
	Create(question *Question) error
	// GetByID returns the question or a not_found error.
	GetByID(questionID int) (*Question, error)
	// ListBySurvey returns the survey's questions in id order.
	ListBySurvey(surveyID int) ([]Question, error)
	// Update writes title and options. The type column is never touched.
	Update(question *Question) error
	// Delete removes the question; its answers go through the DB cascade.
	Delete(questionID int) error
	// CountBySurvey returns how many questions the survey has.
	CountBySurvey(surveyID int) (int, error)
}
