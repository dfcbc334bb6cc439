package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type userSnapshotRepository struct {
	db *sql.DB
}

// NewUserSnapshotRepository creates a new snapshot repository instance.
func NewUserSnapshotRepository(db *sql.DB) domain.UserSnapshotRepository {
	return &userSnapshotRepository{db: db}
}

// GetByID returns the snapshot or a not_found error.
func (r *userSnapshotRepository) GetByID(snapshotID int) (*domain.UserSnapshot, error) {
	query := `
		SELECT snapshot_id, original_user_id, email, name, role, is_anonymized, retention_basis, created_at
		FROM user_snapshot
		WHERE snapshot_id = $1
	`

	snapshot := &domain.UserSnapshot{}
	err := r.db.QueryRow(query, snapshotID).Scan(
		&snapshot.SnapshotID,
		&snapshot.OriginalUserID,
		&snapshot.Email,
		&snapshot.Name,
		&snapshot.Role,
		&snapshot.IsAnonymized,
		&snapshot.RetentionBasis,
		&snapshot.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("snapshot %d not found", snapshotID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get snapshot", err)
	}

	return snapshot, nil
}

// GetByOriginalUser returns (nil, nil) when the user never left a snapshot.
func (r *userSnapshotRepository) GetByOriginalUser(originalUserID int) (*domain.UserSnapshot, error) {
	query := `
		SELECT snapshot_id, original_user_id, email, name, role, is_anonymized, retention_basis, created_at
		FROM user_snapshot
		WHERE original_user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	snapshot := &domain.UserSnapshot{}
	err := r.db.QueryRow(query, originalUserID).Scan(
		&snapshot.SnapshotID,
		&snapshot.OriginalUserID,
		&snapshot.Email,
		&snapshot.Name,
		&snapshot.Role,
		&snapshot.IsAnonymized,
		&snapshot.RetentionBasis,
		&snapshot.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("failed to get snapshot by original user", err)
	}

	return snapshot, nil
}

// AnonymizeOlderThan blanks identity fields of snapshots created before cutoff.
func (r *userSnapshotRepository) AnonymizeOlderThan(cutoff time.Time) (int, error) {
	query := `
		UPDATE user_snapshot
		SET email = '', name = '', is_anonymized = true
		WHERE created_at < $1 AND is_anonymized = false
	`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, domain.Internal("failed to anonymize snapshots", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, domain.Internal("failed to check affected rows", err)
	}

	return int(rowsAffected), nil
}
