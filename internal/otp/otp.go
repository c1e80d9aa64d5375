// Package otp provides the two interchangeable verification strategies:
// locally generated codes kept in the OTP store, and full delegation to an
// external verification provider. Exactly one strategy is live at a time,
// selected by configuration.
package otp

import "context"

// Target identifies where a code goes. The local strategy keys codes by
// UserID and dispatches over the named channel; the provider strategy is
// addressed by PhoneNumber alone.
type Target struct {
	UserID      string
	PhoneNumber string
	Email       string
	Channel     string // "phone" or "email"
}

type Verifier interface {
	Send(ctx context.Context, target Target) error
	Verify(ctx context.Context, target Target, code string) (bool, error)
}
