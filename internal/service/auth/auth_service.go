package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/kafka"
	"github.com/ghoomlo/cab-booking/internal/middleware"
	"github.com/ghoomlo/cab-booking/internal/otp"
	"github.com/ghoomlo/cab-booking/internal/repository"
)

// StrategyLocal generates and verifies codes in-process; StrategyProvider
// delegates both to the external verification service.
const (
	StrategyLocal    = "local"
	StrategyProvider = "provider"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Onboard(ctx context.Context, userID string, details domain.OnboardingDetails) (*domain.User, error)
	Remove(ctx context.Context, userID string) error
	SendOTP(ctx context.Context, input SendOTPInput) error
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type AuthService struct {
	users              repository.UserRepository
	verifier           otp.Verifier
	producer           Producer
	notificationsTopic string
	strategy           string
	jwtSecret          []byte
	jwtTTL             time.Duration
}

type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	PhoneNumber string
}

// SendOTPInput addresses a user either by id (local strategy) or by phone
// number (provider strategy).
type SendOTPInput struct {
	UserID      string
	PhoneNumber string
	ContactType string
}

type VerifyOTPInput struct {
	UserID      string
	PhoneNumber string
	Code        string
}

func NewAuthService(
	users repository.UserRepository,
	verifier otp.Verifier,
	producer Producer,
	notificationsTopic string,
	strategy string,
	jwtSecret []byte,
	jwtTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:              users,
		verifier:           verifier,
		producer:           producer,
		notificationsTopic: notificationsTopic,
		strategy:           strategy,
		jwtSecret:          jwtSecret,
		jwtTTL:             jwtTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" || input.PhoneNumber == "" {
		return nil, errors.New("username, password, email and phoneNumber are required")
	}

	salt, err := newSalt()
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(input.Password, salt)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Onboard(ctx context.Context, userID string, details domain.OnboardingDetails) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, details)
}

func (s *AuthService) Remove(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

func (s *AuthService) SendOTP(ctx context.Context, input SendOTPInput) error {
	target, _, err := s.resolveTarget(ctx, input.UserID, input.PhoneNumber, input.ContactType)
	if err != nil {
		return err
	}
	return s.verifier.Send(ctx, target)
}

// VerifyOTP checks the submitted code and, on success, issues an auth token
// for the matched user.
func (s *AuthService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (string, error) {
	target, user, err := s.resolveTarget(ctx, input.UserID, input.PhoneNumber, "")
	if err != nil {
		return "", err
	}

	ok, err := s.verifier.Verify(ctx, target, input.Code)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrInvalidOTP
	}

	token, err := middleware.GenerateToken(s.jwtSecret, user.ID.Hex(), s.jwtTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// resolveTarget loads the user and builds the strategy-appropriate target:
// userId-addressed for local codes, phoneNumber-addressed for the provider.
func (s *AuthService) resolveTarget(ctx context.Context, userID, phoneNumber, contactType string) (otp.Target, *domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	switch {
	case userID != "":
		user, err = s.users.GetByID(ctx, userID)
	case phoneNumber != "":
		user, err = s.users.GetByPhone(ctx, phoneNumber)
	default:
		return otp.Target{}, nil, errors.New("userId or phoneNumber is required")
	}
	if err != nil {
		return otp.Target{}, nil, err
	}

	target := otp.Target{
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Channel:     contactType,
	}
	if s.strategy == StrategyLocal {
		target.UserID = user.ID.Hex()
	}
	return target, user, nil
}

// ForgotPassword issues a single-use reset token and dispatches it to the
// user's email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.users.AddResetToken(ctx, email, token); err != nil {
		return err
	}

	event := kafka.NotificationEvent{
		Kind:    "password_reset",
		Channel: "email",
		To:      user.Email,
		Subject: "Password reset request",
		Body:    fmt.Sprintf("Use this token to reset your Ghoomlo password: %s", token),
		SentAt:  time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, token, event); err != nil {
		logrus.WithError(err).WithField("email", email).Warn("failed to dispatch reset token")
	}
	return nil
}

// ResetPassword consumes the token and rotates the stored hash+salt. An
// unknown or already-consumed token fails with ErrInvalidResetToken and
// leaves the record untouched.
func (s *AuthService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	if newPassword == "" {
		return errors.New("newPassword is required")
	}

	salt, err := newSalt()
	if err != nil {
		return err
	}
	hash, err := hashPassword(newPassword, salt)
	if err != nil {
		return err
	}

	return s.users.ResetPassword(ctx, email, resetToken, hash, salt)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

var _ AuthUseCase = (*AuthService)(nil)
