package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opinio-app/survey_backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenSigner produces a bearer token for the given identity.
type TokenSigner func(userID int, role domain.Role, email string, ttl time.Duration) (string, error)

// EmailSender is the slice of the email client the services need.
type EmailSender interface {
	SendEmail(to, subject, htmlBody string) error
}

const recoveryCodeCount = 5

type AuthService struct {
	userRepo  domain.UserRepository
	signToken TokenSigner
	tokenTTL  time.Duration
	email     EmailSender
	logger    *zap.Logger
}

// AuthResult is what a successful register or login returns.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
	// RecoveryCodes are only set on registration; they are shown once.
	RecoveryCodes []string `json:"recoveryCodes,omitempty"`
}

// NewAuthService creates a new auth service instance. email may be nil when
// no SMTP client is configured.
func NewAuthService(userRepo domain.UserRepository, signToken TokenSigner, email EmailSender, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		signToken: signToken,
		tokenTTL:  7 * 24 * time.Hour,
		email:     email,
		logger:    logger,
	}
}

// Register creates an account with the user role and returns a signed token.
// Admin accounts are promoted directly in the database, never through this path.
func (s *AuthService) Register(email, name, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateRegistration(email, name, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal("failed to hash password", err)
	}

	codes := generateRecoveryCodes(recoveryCodeCount)
	user := &domain.User{
		Email:         email,
		Name:          strings.TrimSpace(name),
		PasswordHash:  string(hash),
		Role:          domain.RoleUser,
		RecoveryCodes: codes,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.UserID, user.Role, user.Email, s.tokenTTL)
	if err != nil {
		return nil, domain.Internal("failed to sign token", err)
	}

	s.sendWelcomeEmail(user)

	return &AuthResult{Token: token, User: user, RecoveryCodes: codes}, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.Invalid("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.Unauthorized("invalid credentials")
	}

	token, err := s.signToken(user.UserID, user.Role, user.Email, s.tokenTTL)
	if err != nil {
		return nil, domain.Internal("failed to sign token", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// sendWelcomeEmail is best effort; registration never fails on SMTP trouble.
func (s *AuthService) sendWelcomeEmail(user *domain.User) {
	if s.email == nil {
		return
	}
	body := "<p>Hello " + user.Name + ",</p><p>Your account is ready. You can start building surveys right away.</p>"
	if err := s.email.SendEmail(user.Email, "Welcome", body); err != nil {
		s.logger.Warn("welcome email failed", zap.Int("userId", user.UserID), zap.Error(err))
	}
}

func generateRecoveryCodes(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		codes[i] = strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	}
	return codes
}
