package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/ghoomlo/cab-booking/internal/kafka"
)

// Store holds one outstanding code per user. A write replaces any prior
// code; reads return "" once the code has expired or been overwritten.
type Store interface {
	SetOTP(ctx context.Context, userID, code string) error
	GetOTP(ctx context.Context, userID string) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// LocalVerifier generates 6-digit codes itself and dispatches them through
// the notifications topic. Codes are not unique across users.
type LocalVerifier struct {
	store    Store
	producer Producer
	topic    string
}

func NewLocalVerifier(store Store, producer Producer, topic string) *LocalVerifier {
	return &LocalVerifier{store: store, producer: producer, topic: topic}
}

func (v *LocalVerifier) Send(ctx context.Context, target Target) error {
	if target.UserID == "" {
		return errors.New("userId is required")
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err := v.store.SetOTP(ctx, target.UserID, code); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	event := kafka.NotificationEvent{
		Kind:   "otp",
		Body:   fmt.Sprintf("Your Ghoomlo verification code is %s", code),
		SentAt: time.Now().UTC(),
	}
	switch target.Channel {
	case "email":
		event.Channel = "email"
		event.To = target.Email
		event.Subject = "Your verification code"
	default:
		event.Channel = "sms"
		event.To = target.PhoneNumber
	}

	if err := v.producer.Publish(ctx, v.topic, uuid.NewString(), event); err != nil {
		return fmt.Errorf("dispatch otp: %w", err)
	}
	return nil
}

// Verify compares the submitted code against the outstanding one. A missing
// or expired code never matches.
func (v *LocalVerifier) Verify(ctx context.Context, target Target, code string) (bool, error) {
	stored, err := v.store.GetOTP(ctx, target.UserID)
	if err != nil {
		return false, fmt.Errorf("load otp: %w", err)
	}
	return stored != "" && stored == code, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

var _ Verifier = (*LocalVerifier)(nil)
