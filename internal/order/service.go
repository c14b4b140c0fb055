package order

import (
	"context"
	"fmt"
	"strings"

	"velora-be/internal/logger"
	"velora-be/internal/payment"
	"velora-be/internal/utils"

	"go.uber.org/zap"
)

// CheckoutResult is the outcome of a checkout attempt. For card
// payments PayURL carries the hosted payment page and the order stays
// in awaiting_payment until confirmed.
type CheckoutResult struct {
	Order      Order         `json:"order"`
	Submission *SubmitResult `json:"submission,omitempty"`
	PayURL     string        `json:"pay_url,omitempty"`
	PaymentRef string        `json:"payment_ref,omitempty"`
	Status     Status        `json:"status"`
}

// Service drives an order through its lifecycle:
// draft -> submitted -> awaiting_payment (card only) -> confirmed.
type Service interface {
	SubmitOrder(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	SubmitOrderWithPayment(ctx context.Context, req SubmitRequest, method PaymentMethod) (*CheckoutResult, error)
	ConfirmPaymentAndUpdateOrder(ctx context.Context, paymentRef string, orderID int64) (*SubmitResult, error)
}

// ServiceConfig carries the checkout wiring.
type ServiceConfig struct {
	SuccessURL      string
	FailURL         string
	DefaultLanguage string
	BypassPayment   bool
}

type service struct {
	api     API
	gateway payment.Gateway
	archive Repository // nil disables the archive
	cfg     ServiceConfig
}

// NewService creates the order service. The archive may be nil.
func NewService(api API, gateway payment.Gateway, archive Repository, cfg ServiceConfig) Service {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "fr"
	}
	return &service{api: api, gateway: gateway, archive: archive, cfg: cfg}
}

func (s *service) SubmitOrder(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}
	req.Customer.Phone = utils.NormalizeTunisianPhone(req.Customer.Phone)

	res, err := s.api.SubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.Success {
		s.archiveOrder(ctx, req, res)
	}
	return res, nil
}

func (s *service) SubmitOrderWithPayment(ctx context.Context, req SubmitRequest, method PaymentMethod) (*CheckoutResult, error) {
	switch method {
	case MethodCard, MethodCashOnDelivery, MethodTest:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	req.Order.PaymentMethod = method

	// Non-card methods, and everything while payment is globally
	// bypassed, skip the external payment step entirely.
	if method != MethodCard || s.cfg.BypassPayment {
		req.Order.Status = StatusPending

		res, err := s.SubmitOrder(ctx, req)
		if err != nil {
			return nil, err
		}

		status := StatusDraft
		if res.Success {
			status = StatusConfirmed
		}
		return &CheckoutResult{
			Order:      req.Order,
			Submission: res,
			Status:     status,
		}, nil
	}

	// Card: submit in awaiting_payment, then open the hosted payment
	// page. Confirmation happens in a separate step once the provider
	// reports success.
	req.Order.Status = StatusAwaitingPayment

	res, err := s.SubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return &CheckoutResult{
			Order:      req.Order,
			Submission: res,
			Status:     StatusDraft,
		}, nil
	}

	initRes, err := s.gateway.InitPayment(ctx, payment.InitRequest{
		Amount:      req.Order.Total,
		FirstName:   req.Customer.FirstName,
		LastName:    req.Customer.LastName,
		Email:       req.Customer.Email,
		OrderID:     req.Order.Reference,
		Description: "Commande " + req.Order.Reference,
	}, s.cfg.SuccessURL, s.cfg.FailURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment: %w", err)
	}

	return &CheckoutResult{
		Order:      req.Order,
		Submission: res,
		PayURL:     initRes.PayURL,
		PaymentRef: initRes.PaymentRef,
		Status:     StatusAwaitingPayment,
	}, nil
}

func (s *service) ConfirmPaymentAndUpdateOrder(ctx context.Context, paymentRef string, orderID int64) (*SubmitResult, error) {
	completed, err := s.gateway.VerifyPayment(ctx, paymentRef)
	if err != nil {
		return nil, err
	}
	if !completed {
		// Expected, recoverable outcome: surfaced as a result, not an
		// error.
		return &SubmitResult{
			Success: false,
			Message: "Le paiement n'a pas été complété",
		}, nil
	}

	res, err := s.api.ConfirmPayment(ctx, paymentRef, orderID)
	if err != nil {
		return nil, err
	}

	if res.Success && s.archive != nil {
		if aerr := s.archive.UpdateStatus(ctx, orderID, StatusConfirmed, paymentRef); aerr != nil {
			logger.FromCtx(ctx).Warn("failed to update archived order status",
				zap.Int64("order_id", orderID), zap.Error(aerr))
		}
	}
	return res, nil
}

// archiveOrder records the submitted snapshot best-effort: the archive
// never fails a checkout.
func (s *service) archiveOrder(ctx context.Context, req SubmitRequest, res *SubmitResult) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveOrder(ctx, req.Order, req.Customer, res); err != nil {
		logger.FromCtx(ctx).Warn("failed to archive order",
			zap.String("order_ref", req.Order.Reference), zap.Error(err))
	}
}

func validateSubmitRequest(req SubmitRequest) error {
	if len(req.Order.Items) == 0 {
		return ErrEmptyOrder
	}
	if strings.TrimSpace(req.Customer.FirstName) == "" ||
		strings.TrimSpace(req.Customer.LastName) == "" ||
		!utils.IsValidEmail(req.Customer.Email) {
		return ErrMissingCustomer
	}
	return nil
}
