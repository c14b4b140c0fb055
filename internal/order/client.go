package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"velora-be/internal/logger"

	"go.uber.org/zap"
)

// API is the remote order endpoint.
type API interface {
	SubmitOrder(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	ConfirmPayment(ctx context.Context, paymentRef string, orderID int64) (*SubmitResult, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds the order API client. Timeouts are left to the
// transport; the payment gateway is the only bounded call.
func NewClient(endpoint string) API {
	return &client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// apiResponse decodes with a pointer Success so a well-formed failure
// payload can be told apart from a response missing the field entirely.
type apiResponse struct {
	Success     *bool  `json:"success"`
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id"`
	CustomerID  int64  `json:"customer_id"`
	OrderNumber string `json:"order_number"`
}

func (c *client) SubmitOrder(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_ref", req.Order.Reference),
		zap.Float64("total", req.Order.Total),
	)

	log.Info("submitting order")

	res, err := c.post(ctx, req)
	if err != nil {
		log.Error("order submission failed", zap.Error(err))
		return nil, err
	}

	if !res.Success {
		log.Warn("order API declined submission", zap.String("message", res.Message))
	} else {
		log.Info("order accepted",
			zap.Int64("order_id", res.OrderID),
			zap.String("order_number", res.OrderNumber))
	}
	return res, nil
}

func (c *client) ConfirmPayment(ctx context.Context, paymentRef string, orderID int64) (*SubmitResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("payment_ref", paymentRef),
		zap.Int64("order_id", orderID),
	)

	body := map[string]any{
		"payment_ref": paymentRef,
		"order_id":    orderID,
		"action":      "confirm_payment",
	}

	log.Info("confirming payment with order API")

	res, err := c.post(ctx, body)
	if err != nil {
		log.Error("payment confirmation failed", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (c *client) post(ctx context.Context, body any) (*SubmitResult, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("order API unreachable: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("order API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var decoded apiResponse
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if decoded.Success == nil {
		return nil, fmt.Errorf("%w: missing success field", ErrBadResponse)
	}

	return &SubmitResult{
		Success:     *decoded.Success,
		Message:     decoded.Message,
		OrderID:     decoded.OrderID,
		CustomerID:  decoded.CustomerID,
		OrderNumber: decoded.OrderNumber,
	}, nil
}
