package payment

import "context"

// InitRequest describes a hosted-payment-page session to open. Amount
// is in the storefront's major currency unit (TND).
type InitRequest struct {
	Amount      float64
	FirstName   string
	LastName    string
	Email       string
	OrderID     string
	Description string
}

// InitResult is the provider's redirect handle.
type InitResult struct {
	PayURL     string `json:"pay_url"`
	PaymentRef string `json:"payment_ref"`
}

// Gateway wraps a hosted-payment-page provider.
type Gateway interface {
	InitPayment(ctx context.Context, req InitRequest, successURL, failURL string) (*InitResult, error)
	VerifyPayment(ctx context.Context, paymentRef string) (bool, error)
}
