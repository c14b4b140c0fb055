package payment

import "errors"

var (
	// -- Local validation, raised before any network call --
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrMissingName    = errors.New("first and last name are required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrMissingOrderID = errors.New("order id is required")

	// -- Transport --
	ErrTimeout = errors.New("payment provider timed out")

	// -- Provider --
	ErrProviderRejected = errors.New("payment provider rejected the request")
	ErrBadResponse      = errors.New("malformed payment provider response")
)
