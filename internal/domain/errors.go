package domain

import "errors"

var (
	// ErrNotFound covers lookups by id/email/phone that match nothing.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidResetToken is returned when a reset token is unknown or was
	// already consumed. Both cases are indistinguishable to the caller.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrInvalidOTP is returned when a submitted code does not match the
	// outstanding one, or no code is outstanding.
	ErrInvalidOTP = errors.New("invalid otp")

	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicateRegistration = errors.New("registration number already exists")
)
