package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and fills UserID and CreatedAt.
func (r *userRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, role, recovery_codes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`

	err := r.db.QueryRow(
		query,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role,
		pq.Array(user.RecoveryCodes),
	).Scan(&user.UserID, &user.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("an account already uses this email")
		}
		return domain.Internal("failed to create user", err)
	}

	return nil
}

// GetByID returns the user or a not_found error.
func (r *userRepository) GetByID(userID int) (*domain.User, error) {
	query := `
		SELECT user_id, email, name, password_hash, role, recovery_codes, created_at
		FROM users
		WHERE user_id = $1
	`

	user := &domain.User{}
	err := r.db.QueryRow(query, userID).Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		pq.Array(&user.RecoveryCodes),
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("user %d not found", userID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get user", err)
	}

	return user, nil
}

// GetByEmail returns (nil, nil) when no account uses the email.
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, name, password_hash, role, recovery_codes, created_at
		FROM users
		WHERE email = $1
	`

	user := &domain.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		pq.Array(&user.RecoveryCodes),
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("failed to get user by email", err)
	}

	return user, nil
}

// DeleteWithSnapshot removes the user inside a single transaction. When
// snapshot is non-nil it is inserted first and the user's payments are
// repointed to it; the user row then goes, cascading surveys, questions
// and answers at the DB level.
func (r *userRepository) DeleteWithSnapshot(userID int, snapshot *domain.UserSnapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return domain.Internal("failed to begin account deletion", err)
	}
	defer tx.Rollback()

	if snapshot != nil {
		err := tx.QueryRow(`
			INSERT INTO user_snapshot (original_user_id, email, name, role, is_anonymized, retention_basis)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING snapshot_id, created_at
		`,
			snapshot.OriginalUserID,
			snapshot.Email,
			snapshot.Name,
			snapshot.Role,
			snapshot.IsAnonymized,
			snapshot.RetentionBasis,
		).Scan(&snapshot.SnapshotID, &snapshot.CreatedAt)
		if err != nil {
			return domain.Internal("failed to create user snapshot", err)
		}

		_, err = tx.Exec(`
			UPDATE payment
			SET user_snapshot_id = $1, user_id = NULL
			WHERE user_id = $2
		`, snapshot.SnapshotID, userID)
		if err != nil {
			return domain.Internal("failed to repoint payments to snapshot", err)
		}
	}

	result, err := tx.Exec(`DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return domain.Internal("failed to delete user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("user %d not found", userID))
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal("failed to commit account deletion", err)
	}

	return nil
}
