package repository

import (
	"database/sql"
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts the payment and fills PaymentID and CreatedAt.
func (r *paymentRepository) Create(payment *domain.Payment) error {
	query := `
		INSERT INTO payment (amount, currency, description, survey_count, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id, created_at
	`

	err := r.db.QueryRow(
		query,
		payment.Amount,
		payment.Currency,
		payment.Description,
		payment.SurveyCount,
		payment.UserID,
	).Scan(&payment.PaymentID, &payment.CreatedAt)

	if err != nil {
		return domain.Internal("failed to create payment", err)
	}

	return nil
}

// GetByID returns the payment or a not_found error.
func (r *paymentRepository) GetByID(paymentID int) (*domain.Payment, error) {
	query := `
		SELECT payment_id, amount, currency, description, survey_count, user_id, user_snapshot_id, created_at
		FROM payment
		WHERE payment_id = $1
	`

	payment := &domain.Payment{}
	var userID, snapshotID sql.NullInt64

	err := r.db.QueryRow(query, paymentID).Scan(
		&payment.PaymentID,
		&payment.Amount,
		&payment.Currency,
		&payment.Description,
		&payment.SurveyCount,
		&userID,
		&snapshotID,
		&payment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("payment %d not found", paymentID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get payment", err)
	}

	payment.UserID = nullableID(userID)
	payment.UserSnapshotID = nullableID(snapshotID)
	return payment, nil
}

// ListByUser returns the user's payments, newest first.
func (r *paymentRepository) ListByUser(userID int) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, amount, currency, description, survey_count, user_id, user_snapshot_id, created_at
		FROM payment
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, domain.Internal("failed to list payments", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		var uid, snapshotID sql.NullInt64

		err := rows.Scan(
			&payment.PaymentID,
			&payment.Amount,
			&payment.Currency,
			&payment.Description,
			&payment.SurveyCount,
			&uid,
			&snapshotID,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, domain.Internal("failed to scan payment", err)
		}

		payment.UserID = nullableID(uid)
		payment.UserSnapshotID = nullableID(snapshotID)
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to list payments", err)
	}

	return payments, nil
}

// Update writes every mutable field of the payment.
func (r *paymentRepository) Update(payment *domain.Payment) error {
	query := `
		UPDATE payment
		SET amount = $1, currency = $2, description = $3, survey_count = $4
		WHERE payment_id = $5
	`

	result, err := r.db.Exec(
		query,
		payment.Amount,
		payment.Currency,
		payment.Description,
		payment.SurveyCount,
		payment.PaymentID,
	)
	if err != nil {
		return domain.Internal("failed to update payment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("payment %d not found", payment.PaymentID))
	}

	return nil
}

// CountByUser returns how many payments reference the user.
func (r *paymentRepository) CountByUser(userID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM payment WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, domain.Internal("failed to count payments", err)
	}
	return count, nil
}

// SumSurveyCountByUser returns the total purchased survey quota of the user.
func (r *paymentRepository) SumSurveyCountByUser(userID int) (int, error) {
	var sum int
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(survey_count), 0) FROM payment WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	if err != nil {
		return 0, domain.Internal("failed to sum survey quota", err)
	}
	return sum, nil
}

func nullableID(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	id := int(v.Int64)
	return &id
}
