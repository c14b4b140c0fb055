package order

import "time"

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirmed       Status = "confirmed"
)

type PaymentMethod string

const (
	MethodCard           PaymentMethod = "card"
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	MethodTest           PaymentMethod = "test"
)

// Item is a line-item snapshot taken at order time. The remote API
// never sees live cart rows.
type Item struct {
	Name      string  `json:"name"`
	Reference string  `json:"reference"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity"`
	Discount  int     `json:"discount,omitempty"`
}

// Customer is the billing identity.
type Customer struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// DeliveryAddress is set only when shipping differs from billing.
type DeliveryAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order is the write-once snapshot submitted to the remote API.
type Order struct {
	Reference       string           `json:"reference"`
	Items           []Item           `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	Discount        float64          `json:"discount"`
	DeliveryFee     float64          `json:"delivery_fee"`
	Total           float64          `json:"total"`
	Status          Status           `json:"status"`
	PaymentMethod   PaymentMethod    `json:"payment_method"`
	PaymentRef      string           `json:"payment_ref,omitempty"`
	PromoCode       string           `json:"promo_code,omitempty"`
	DeliveryAddress *DeliveryAddress `json:"delivery_address,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SubmitRequest is the remote order endpoint's body.
type SubmitRequest struct {
	Customer Customer `json:"customer"`
	Order    Order    `json:"order"`
	Language string   `json:"language"`
}

// SubmitResult mirrors the endpoint's declared outcome. Success comes
// from the payload, never from the HTTP status alone.
type SubmitResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id,omitempty"`
	CustomerID  int64  `json:"customer_id,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
}
