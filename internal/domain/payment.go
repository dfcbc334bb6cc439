package domain

import "time"

// Payment is a purchase record granting its user additional survey-creation
// quota. UserID is nulled when the account is deleted; UserSnapshotID then
// points at the retained identity snapshot.
type Payment struct {
	PaymentID      int       `json:"paymentId"`
	Amount         int       `json:"amount"` // cents
	Currency       string    `json:"currency"`
	Description    string    `json:"description"`
	SurveyCount    int       `json:"surveyCount"`
	UserID         *int      `json:"userId,omitempty"`
	UserSnapshotID *int      `json:"userSnapshotId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	// Create inserts the payment and fills PaymentID and CreatedAt.
	Create(payment *Payment) error
	// GetByID returns the payment or a not_found error.
	GetByID(paymentID int) (*Payment, error)
	// ListByUser returns the user's payments, newest first.
	ListByUser(userID int) ([]Payment, error)
	// Update writes every mutable field of the payment.
	Update(payment *Payment) error
	// CountByUser returns how many payments reference the user.
	CountByUser(userID int) (int, error)
	// SumSurveyCountByUser returns the total purchased survey quota of the user.
	SumSurveyCountByUser(userID int) (int, error)
}
