package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/opinio-app/survey_backend/internal/domain"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	currencyRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// FieldError is one failed validation on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors accumulates validation failures for an input payload.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// asInvalid folds accumulated field errors into one invalid-kind error, or
// returns nil when everything passed.
func (e FieldErrors) asInvalid() error {
	if len(e) == 0 {
		return nil
	}
	return domain.Invalid(e.Error())
}

// ValidateRegistration checks the register payload.
func ValidateRegistration(email, name, password string) error {
	var errs FieldErrors
	if !emailRegex.MatchString(email) {
		errs.add("email", "must be a valid email address")
	}
	if strings.TrimSpace(name) == "" {
		errs.add("name", "is required")
	}
	if len(password) < 8 {
		errs.add("password", "must be at least 8 characters")
	}
	return errs.asInvalid()
}

// ValidateSurveyInput checks the survey create/update payload.
func ValidateSurveyInput(title string, categoryID int) error {
	var errs FieldErrors
	if strings.TrimSpace(title) == "" {
		errs.add("title", "is required")
	}
	if len(title) > 255 {
		errs.add("title", "must be at most 255 characters")
	}
	if categoryID <= 0 {
		errs.add("categoryId", "is required")
	}
	return errs.asInvalid()
}

// ValidateQuestionInput checks the question create payload. Choice types
// carry options; the other types must not.
func ValidateQuestionInput(title string, questionType domain.QuestionType, options []domain.AnswerOption) error {
	var errs FieldErrors
	if strings.TrimSpace(title) == "" {
		errs.add("title", "is required")
	}
	if !domain.ValidQuestionType(questionType) {
		errs.add("type", "must be one of text, boolean, select, multiple_choice")
	} else if questionType.IsChoiceType() {
		if len(options) == 0 {
			errs.add("options", "are required for choice questions")
		}
		for i, opt := range options {
			if strings.TrimSpace(opt.Label) == "" {
				errs.add("options", fmt.Sprintf("option %d has an empty label", i))
			}
		}
	} else if len(options) > 0 {
		errs.add("options", "are only allowed on choice questions")
	}
	return errs.asInvalid()
}

// ValidatePaymentInput checks the payment-intent payload: amount in positive
// cents, 3-letter currency code, description between 3 and 255 characters,
// positive granted survey count.
func ValidatePaymentInput(amount int, currency, description string, surveyCount int) error {
	var errs FieldErrors
	if amount <= 0 {
		errs.add("amount", "must be a positive number of cents")
	}
	if !currencyRegex.MatchString(currency) {
		errs.add("currency", "must be a 3-letter code")
	}
	if len(description) < 3 || len(description) > 255 {
		errs.add("description", "must be between 3 and 255 characters")
	}
	if surveyCount <= 0 {
		errs.add("surveyCount", "must be positive")
	}
	return errs.asInvalid()
}
