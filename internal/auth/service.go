package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/examhub/examhub-api/internal/database"
	"github.com/examhub/examhub-api/internal/database/models"
	"github.com/examhub/examhub-api/internal/tasks"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrWeakPassword         = errors.New("password does not satisfy policy")
	ErrInvalidCode          = errors.New("verification code mismatch")
	ErrExpiredCode          = errors.New("verification code expired")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
)

// Service orchestrates the account lifecycle: registration, login, email
// verification, password reset, profile update and deletion. It is
// stateless between requests; all state lives in the user store.
type Service struct {
	store  UserStore
	jwt    TokenService
	mailer Mailer
	queue  TaskEnqueuer
	logger *slog.Logger
}

func NewService(store UserStore, jwt TokenService, mailer Mailer, queue TaskEnqueuer, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		jwt:    jwt,
		mailer: mailer,
		queue:  queue,
		logger: logger,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	Token string
	User  *models.User
}

// Register creates an unverified user with a fresh 4-digit code and hands
// the verification mail to the background queue. Mail delivery is
// fire-and-forget: an enqueue failure is logged, never returned.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !IsStrongPassword(input.Password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.store.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         "user",
		IsVerified:   false,
	}
	user.SetChallenge(GenerateCode(), time.Now().Add(VerificationCodeTTL))

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueVerificationMail(user)

	return user, nil
}

func (s *Service) enqueueVerificationMail(user *models.User) {
	if s.queue == nil {
		s.logger.Warn("task queue unavailable, skipping verification mail", "email", user.Email)
		return
	}

	task, err := tasks.NewVerificationEmailTask(tasks.VerificationEmailPayload{
		Email: user.Email,
		Name:  user.Name,
		Code:  *user.VerificationCode,
	})
	if err != nil {
		s.logger.Error("failed to build verification mail task", "error", err)
		return
	}

	if _, err := s.queue.Enqueue(task); err != nil {
		s.logger.Error("failed to enqueue verification mail", "email", user.Email, "error", err)
	}
}

// Login returns a signed token for valid credentials. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "email", user.Email)

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// VerifyByToken marks the token's subject as verified without a code
// check. This is the link-based alternate to the code flow; see DESIGN.md
// for why it stays a separate operation.
func (s *Service) VerifyByToken(ctx context.Context, tokenString string) error {
	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		return err
	}
	id, err := claims.UserID()
	if err != nil {
		return err
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.store.Save(ctx, user)
}

// VerifyCode confirms email ownership with the outstanding 4-digit code.
// Verifying an already-verified user succeeds without touching the code
// fields; the returned flag distinguishes that case.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (alreadyVerified bool, err error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if user.IsVerified {
		return true, nil
	}

	if user.VerificationCode == nil || *user.VerificationCode != code {
		return false, ErrInvalidCode
	}
	if user.CodeExpiresAt == nil || time.Now().After(*user.CodeExpiresAt) {
		return false, ErrExpiredCode
	}

	user.IsVerified = true
	user.ClearChallenge()
	return false, s.store.Save(ctx, user)
}

// ForgotPassword issues a 15-minute reset code, replacing any outstanding
// code, and mails it synchronously: a transport failure here is the
// caller's problem, unlike the registration mail.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code := GenerateCode()
	user.SetChallenge(code, time.Now().Add(ResetCodeTTL))
	if err := s.store.Save(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		return fmt.Errorf("sending reset mail: %w", err)
	}

	return nil
}

// ResetPassword replaces the password hash after validating the reset
// code. The new password must satisfy the same policy as registration.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if !IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.VerificationCode == nil || *user.VerificationCode != code ||
		user.CodeExpiresAt == nil || time.Now().After(*user.CodeExpiresAt) {
		return ErrInvalidOrExpiredCode
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user.PasswordHash = hash
	user.ClearChallenge()
	return s.store.Save(ctx, user)
}

// UpdateName mutates the display name only.
func (s *Service) UpdateName(ctx context.Context, userID uint64, newName string) (*models.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = newName
	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user row permanently. Deleting an already
// deleted account fails with ErrUserNotFound.
func (s *Service) DeleteAccount(ctx context.Context, userID uint64) error {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, user); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info("account deleted", "user_id", userID)
	return nil
}
