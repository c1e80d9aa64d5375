package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghoomlo/cab-booking/config"
)

// OTPStore keeps the current one-time code per user. Codes are last-writer-
// wins (a fresh SET replaces any outstanding code) and expire after the
// configured TTL, so a code never stays valid indefinitely.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOTPStore(cfg config.RedisConfig, ttl time.Duration) *OTPStore {
	return &OTPStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (s *OTPStore) SetOTP(ctx context.Context, userID, code string) error {
	return s.client.Set(ctx, otpKey(userID), code, s.ttl).Err()
}

// GetOTP returns the outstanding code for the user, or "" when none is
// outstanding (never issued, overwritten, or expired).
func (s *OTPStore) GetOTP(ctx context.Context, userID string) (string, error) {
	code, err := s.client.Get(ctx, otpKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return code, nil
}

func (s *OTPStore) Close() error {
	return s.client.Close()
}

func otpKey(userID string) string {
	return fmt.Sprintf("otp:user:%s", userID)
}
