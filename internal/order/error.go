package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyOrder      = errors.New("order has no items")
	ErrUnknownMethod   = errors.New("unknown payment method")
	ErrMissingCustomer = errors.New("customer name and email are required")

	// -- Remote API --
	ErrBadResponse = errors.New("malformed order API response")

	// -- Payment flow --
	ErrPaymentNotCompleted = errors.New("payment not completed")
)
