package application

import (
	"github.com/opinio-app/survey_backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DeletionConfirmationPhrase must be typed verbatim to erase an account.
const DeletionConfirmationPhrase = "DELETE MY ACCOUNT"

type UserService struct {
	userRepo    domain.UserRepository
	paymentRepo domain.PaymentRepository
	email       EmailSender
	logger      *zap.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo domain.UserRepository, paymentRepo domain.PaymentRepository, email EmailSender, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		email:       email,
		logger:      logger,
	}
}

// Get returns the account.
func (s *UserService) Get(userID int) (*domain.User, error) {
	return s.userRepo.GetByID(userID)
}

// DeleteAccount erases the caller's account. The password must verify and the
// confirmation must match the phrase exactly. When the account has payments, a
// snapshot of its identity is created and the payments are repointed to it
// before the user row goes; surveys, questions and answers cascade with it.
// Everything happens in one repository transaction.
func (s *UserService) DeleteAccount(userID int, password, confirmation string) error {
	if confirmation != DeletionConfirmationPhrase {
		return domain.Invalid("confirmation phrase does not match")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Unauthorized("invalid password")
	}

	paymentCount, err := s.paymentRepo.CountByUser(userID)
	if err != nil {
		return err
	}

	var snapshot *domain.UserSnapshot
	if paymentCount > 0 {
		snapshot = &domain.UserSnapshot{
			OriginalUserID: user.UserID,
			Email:          user.Email,
			Name:           user.Name,
			Role:           user.Role,
			RetentionBasis: domain.RetentionBasisAccounting,
		}
	}

	if err := s.userRepo.DeleteWithSnapshot(userID, snapshot); err != nil {
		return err
	}

	s.logger.Info("account deleted",
		zap.Int("userId", userID),
		zap.Bool("snapshotCreated", snapshot != nil),
	)

	s.sendDeletionEmail(user)
	return nil
}

// sendDeletionEmail is best effort; the deletion is already committed.
func (s *UserService) sendDeletionEmail(user *domain.User) {
	if s.email == nil {
		return
	}
	body := "<p>Hello " + user.Name + ",</p><p>Your account and all your surveys have been deleted.</p>"
	if err := s.email.SendEmail(user.Email, "Account deleted", body); err != nil {
		s.logger.Warn("deletion email failed", zap.Int("userId", user.UserID), zap.Error(err))
	}
}
