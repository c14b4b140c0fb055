package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"velora-be/internal/logger"
	"velora-be/internal/utils"

	"go.uber.org/zap"
)

const (
	initPaymentPath = "/payments/init-payment"
	verifyPath      = "/payments/verify"

	// The provider settles in millimes: 1 TND = 1000.
	minorUnitFactor = 1000

	statusCompleted = "completed"
)

// GatewayConfig carries the provider wiring. Bypass short-circuits all
// network calls and synthesizes successful payments, so the checkout
// flow stays exercisable without a live provider account.
type GatewayConfig struct {
	BaseURL  string
	APIKey   string
	WalletID string
	Theme    string
	Bypass   bool
	Timeout  time.Duration
}

type konnectGateway struct {
	baseURL    string
	apiKey     string
	walletID   string
	theme      string
	bypass     bool
	httpClient *http.Client
}

// NewKonnectGateway builds the hosted-payment-page client.
func NewKonnectGateway(cfg GatewayConfig) Gateway {
	if cfg.APIKey == "" && !cfg.Bypass {
		logger.L().Warn("payment API key is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	theme := cfg.Theme
	if theme == "" {
		theme = "light"
	}
	return &konnectGateway{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		walletID: cfg.WalletID,
		theme:    theme,
		bypass:   cfg.Bypass,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type initPaymentBody struct {
	ReceiverWalletID       string   `json:"receiverWalletId"`
	Amount                 int64    `json:"amount"`
	Token                  string   `json:"token"`
	Type                   string   `json:"type"`
	Description            string   `json:"description"`
	AcceptedPaymentMethods []string `json:"acceptedPaymentMethods"`
	FirstName              string   `json:"firstName"`
	LastName               string   `json:"lastName"`
	Email                  string   `json:"email"`
	OrderID                string   `json:"orderId"`
	SuccessURL             string   `json:"successUrl"`
	FailURL                string   `json:"failUrl"`
	Theme                  string   `json:"theme"`
}

type initPaymentResponse struct {
	PayURL     string `json:"payUrl"`
	PaymentRef string `json:"paymentRef"`
}

func (g *konnectGateway) InitPayment(ctx context.Context, req InitRequest, successURL, failURL string) (*InitResult, error) {
	if err := validateInitRequest(req); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", req.OrderID),
		zap.Float64("amount", req.Amount),
	)

	if g.bypass {
		ref := "TEST_PAYMENT_" + req.OrderID
		log.Info("payment bypass active, synthesizing success redirect",
			zap.String("payment_ref", ref))
		return &InitResult{
			PayURL:     successURL + "?payment_ref=" + url.QueryEscape(ref),
			PaymentRef: ref,
		}, nil
	}

	body := initPaymentBody{
		ReceiverWalletID:       g.walletID,
		Amount:                 int64(math.Round(req.Amount * minorUnitFactor)),
		Token:                  "TND",
		Type:                   "immediate",
		Description:            req.Description,
		AcceptedPaymentMethods: []string{"wallet", "bank_card", "e-DINAR"},
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		OrderID:                req.OrderID,
		SuccessURL:             successURL,
		FailURL:                failURL,
		Theme:                  g.theme,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+initPaymentPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)

	log.Info("initializing hosted payment session")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := providerMessage(bodyBytes)
		log.Error("payment init rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("provider_message", msg))
		return nil, fmt.Errorf("%w: %s", ErrProviderRejected, msg)
	}

	var decoded initPaymentResponse
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if decoded.PayURL == "" || decoded.PaymentRef == "" {
		return nil, fmt.Errorf("%w: missing payUrl or paymentRef", ErrBadResponse)
	}

	log.Info("payment session created", zap.String("payment_ref", decoded.PaymentRef))

	return &InitResult{PayURL: decoded.PayURL, PaymentRef: decoded.PaymentRef}, nil
}

func (g *konnectGateway) VerifyPayment(ctx context.Context, paymentRef string) (bool, error) {
	if g.bypass {
		return true, nil
	}
	if paymentRef == "" {
		return false, fmt.Errorf("%w: empty payment ref", ErrBadResponse)
	}

	jsonBody, err := json.Marshal(map[string]string{"paymentRef": paymentRef})
	if err != nil {
		return false, fmt.Errorf("failed to encode verify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+verifyPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return false, classifyTransportError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("%w: %s", ErrProviderRejected, providerMessage(bodyBytes))
	}

	var decoded struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if decoded.Status == nil {
		return false, fmt.Errorf("%w: missing status", ErrBadResponse)
	}

	return *decoded.Status == statusCompleted, nil
}

func validateInitRequest(req InitRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return ErrMissingName
	}
	if !utils.IsValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return ErrMissingOrderID
	}
	return nil
}

// classifyTransportError separates a timed-out call from other
// transport failures.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("payment provider unreachable: %w", err)
}

// providerMessage pulls the human-readable message off an error body,
// falling back to the raw payload.
func providerMessage(body []byte) string {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	return string(body)
}
