package application

import (
	"strings"

	"github.com/opinio-app/survey_backend/internal/domain"
	"go.uber.org/zap"
)

// IntentCreator is the slice of the checkout client the service needs.
type IntentCreator interface {
	CreateIntent(amount int, currency, description string) (intentID, clientSecret string, err error)
}

type PaymentService struct {
	paymentRepo domain.PaymentRepository
	checkout    IntentCreator
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(paymentRepo domain.PaymentRepository, checkout IntentCreator, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		checkout:    checkout,
		logger:      logger,
	}
}

// CreatePaymentInput is the payload for a payment intent.
type CreatePaymentInput struct {
	Amount      int    `json:"amount"` // cents
	Currency    string `json:"currency"`
	Description string `json:"description"`
	SurveyCount int    `json:"surveyCount"`
}

// UpdatePaymentInput carries partial admin corrections. Already-granted quota
// is not recomputed when SurveyCount changes.
type UpdatePaymentInput struct {
	Amount      *int    `json:"amount"`
	Currency    *string `json:"currency"`
	Description *string `json:"description"`
	SurveyCount *int    `json:"surveyCount"`
}

// PaymentIntent is what the checkout frontend needs to collect the payment.
type PaymentIntent struct {
	Payment      *domain.Payment `json:"payment"`
	ClientSecret string          `json:"clientSecret"`
}

// CreateIntent validates the purchase, registers an intent with the provider
// and persists the payment record granting the caller survey quota.
func (s *PaymentService) CreateIntent(userID int, input CreatePaymentInput) (*PaymentIntent, error) {
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if err := ValidatePaymentInput(input.Amount, currency, input.Description, input.SurveyCount); err != nil {
		return nil, err
	}

	intentID, clientSecret, err := s.checkout.CreateIntent(input.Amount, currency, input.Description)
	if err != nil {
		return nil, domain.Internal("failed to create payment intent", err)
	}

	payment := &domain.Payment{
		Amount:      input.Amount,
		Currency:    currency,
		Description: input.Description,
		SurveyCount: input.SurveyCount,
		UserID:      &userID,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment intent created",
		zap.Int("paymentId", payment.PaymentID),
		zap.String("intentId", intentID),
		zap.Int("userId", userID),
	)

	return &PaymentIntent{Payment: payment, ClientSecret: clientSecret}, nil
}

// Get returns a payment for its owner or an admin.
func (s *PaymentService) Get(paymentID, userID int, role domain.Role) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && (payment.UserID == nil || *payment.UserID != userID) {
		return nil, domain.Forbidden("payment belongs to another user")
	}
	return payment, nil
}

// ListMine returns the caller's payments.
func (s *PaymentService) ListMine(userID int) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUser(userID)
}

// Update applies partial admin corrections to a payment. Quota already used
// under the old SurveyCount stays used; granting and correction are not
// reconciled.
func (s *PaymentService) Update(paymentID int, input UpdatePaymentInput) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Currency != nil {
		payment.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.Description != nil {
		payment.Description = *input.Description
	}
	if input.SurveyCount != nil {
		payment.SurveyCount = *input.SurveyCount
	}

	if err := ValidatePaymentInput(payment.Amount, payment.Currency, payment.Description, payment.SurveyCount); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}
