package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a registered account. The password is stored as a bcrypt hash.
type User struct {
	UserID        int       `json:"userId"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	RecoveryCodes []string  `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts the user and fills UserID and CreatedAt.
	Create(user *User) error
	// GetByID returns the user or a not_found error.
	GetByID(userID int) (*User, error)
	// GetByEmail returns (nil, nil) when no account uses the email.
	GetByEmail(email string) (*User, error)
	// DeleteWithSnapshot removes the user inside a single transaction.
	// When snapshot is non-nil it is inserted first and every payment of the
	// user is repointed to it before the user row is deleted.
	DeleteWithSnapshot(userID int, snapshot *UserSnapshot) error
}
