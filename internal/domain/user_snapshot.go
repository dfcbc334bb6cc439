package domain

import "time"

// RetentionBasisAccounting is the default legal ground for retaining a snapshot.
const RetentionBasisAccounting = "accounting_requirements"

// UserSnapshot is a frozen copy of a deleted account's identity, kept so that
// historical payments stay attributable after the user row is erased. Rows are
// immutable; anonymization of expired snapshots is the single sanctioned update.
type UserSnapshot struct {
	SnapshotID     int       `json:"snapshotId"`
	OriginalUserID int       `json:"originalUserId"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	IsAnonymized   bool      `json:"isAnonymized"`
	RetentionBasis string    `json:"retentionBasis"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserSnapshotRepository defines persistence operations for snapshots.
type UserSnapshotRepository interface {
	// GetByID returns the snapshot or a not_found error.
	GetByID(snapshotID int) (*UserSnapshot, error)
	// GetByOriginalUser returns (nil, nil) when the user never left a snapshot.
	GetByOriginalUser(originalUserID int) (*UserSnapshot, error)
	// AnonymizeOlderThan blanks identity fields of snapshots created before
	// cutoff and returns how many rows were anonymized.
	AnonymizeOlderThan(cutoff time.Time) (int, error)
}
