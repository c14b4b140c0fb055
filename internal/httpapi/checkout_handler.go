package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"velora-be/internal/cart"
	"velora-be/internal/metrics"
	"velora-be/internal/order"
	"velora-be/internal/payment"
)

type CheckoutHandler struct {
	cart   *cart.Store
	orders order.Service
}

func NewCheckoutHandler(cartStore *cart.Store, orders order.Service) *CheckoutHandler {
	return &CheckoutHandler{cart: cartStore, orders: orders}
}

type CheckoutDTO struct {
	Customer        order.Customer         `json:"customer"`
	DeliveryAddress *order.DeliveryAddress `json:"delivery_address,omitempty"`
	PaymentMethod   order.PaymentMethod    `json:"payment_method"`
	PromoCode       string                 `json:"promo_code"`
	Language        string                 `json:"language"`
}

type ConfirmPaymentDTO struct {
	PaymentRef string `json:"payment_ref"`
	OrderID    int64  `json:"order_id"`
}

// Submit snapshots the cart, prices it, and drives it through the
// order service. The cart is cleared once the order is complete; card
// orders wait for Confirm.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart has no items")
		return
	}

	assembled := order.AssembleOrder(order.AssembleParams{
		Items:           orderItemsFromCart(items),
		Country:         req.Customer.Country,
		PromoCode:       req.PromoCode,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
	})

	res, err := h.orders.SubmitOrderWithPayment(r.Context(), order.SubmitRequest{
		Customer: req.Customer,
		Order:    assembled,
		Language: req.Language,
	}, req.PaymentMethod)
	if err != nil {
		respondCheckoutError(w, err)
		return
	}

	switch res.Status {
	case order.StatusConfirmed:
		metrics.OrdersAccepted.Inc()
		h.cart.ClearCart()
	case order.StatusAwaitingPayment:
		metrics.PaymentsOpened.Inc()
	}

	respondJSON(w, http.StatusOK, res)
}

func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.PaymentRef == "" || req.OrderID == 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "payment_ref and order_id are required")
		return
	}

	res, err := h.orders.ConfirmPaymentAndUpdateOrder(r.Context(), req.PaymentRef, req.OrderID)
	if err != nil {
		respondCheckoutError(w, err)
		return
	}

	if res.Success {
		metrics.OrdersAccepted.Inc()
		h.cart.ClearCart()
	}

	respondJSON(w, http.StatusOK, res)
}

func orderItemsFromCart(items []cart.LineItem) []order.Item {
	out := make([]order.Item, 0, len(items))
	for _, li := range items {
		out = append(out, order.Item{
			Name:      li.Name,
			Reference: li.ProductID,
			Price:     li.Price,
			Size:      li.Size,
			Color:     li.Color,
			Quantity:  li.Quantity,
			Discount:  li.Discount,
		})
	}
	return out
}

// respondCheckoutError maps the error taxonomy onto status codes:
// local validation to 400, provider timeouts to 504, everything else
// upstream to 502.
func respondCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMissingCustomer),
		errors.Is(err, order.ErrUnknownMethod),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrMissingName),
		errors.Is(err, payment.ErrInvalidEmail),
		errors.Is(err, payment.ErrMissingOrderID):
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, payment.ErrTimeout):
		respondError(w, http.StatusGatewayTimeout, "payment_timeout", err.Error())
	default:
		respondError(w, http.StatusBadGateway, "upstream_failed", err.Error())
	}
}
