package pricing

import (
	"fmt"
	"strings"
	"time"
)

type DiscountKind string

const (
	KindPercentage DiscountKind = "percentage"
	KindFixed      DiscountKind = "fixed"
)

// PromoCode is a checkout discount rule. A fixed code with Value 0 is
// the free-shipping form: validation succeeds with a zero monetary
// discount and the caller applies the shipping effect itself.
type PromoCode struct {
	Code           string       `json:"code"`
	Kind           DiscountKind `json:"kind"`
	Value          float64      `json:"value"`
	MinOrderAmount float64      `json:"min_order_amount,omitempty"`
	MaxDiscount    float64      `json:"max_discount,omitempty"`
	ExpiresAt      *time.Time   `json:"expires_at,omitempty"`
	Active         bool         `json:"active"`
	Description    string       `json:"description,omitempty"`
}

// ValidationResult is a business outcome, not an error: a rejected code
// is an expected, recoverable state.
type ValidationResult struct {
	Valid     bool       `json:"valid"`
	Discount  float64    `json:"discount"`
	Message   string     `json:"message"`
	PromoCode *PromoCode `json:"promo_code,omitempty"`
}

var promoCodes = []PromoCode{
	{
		Code:           "WELCOME10",
		Kind:           KindPercentage,
		Value:          10,
		MinOrderAmount: 50,
		MaxDiscount:    25,
		Active:         true,
		Description:    "10% de réduction sur votre première commande",
	},
	{
		Code:           "SUMMER20",
		Kind:           KindPercentage,
		Value:          20,
		MinOrderAmount: 60,
		MaxDiscount:    40,
		ExpiresAt:      datePtr(2024, time.December, 31),
		Active:         true,
		Description:    "Soldes d'été",
	},
	{
		Code:           "FREESHIP",
		Kind:           KindFixed,
		Value:          0,
		MinOrderAmount: 75,
		Active:         true,
		Description:    "Livraison gratuite",
	},
	{
		Code:           "VIP25",
		Kind:           KindFixed,
		Value:          25,
		MinOrderAmount: 150,
		Active:         true,
		Description:    "25 TND offerts aux clients fidèles",
	},
	{
		Code:   "FLASH30",
		Kind:   KindPercentage,
		Value:  30,
		Active: false,
	},
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
	return &t
}

// ValidatePromoCode checks a code against the current time.
func ValidatePromoCode(code string, orderAmount float64) ValidationResult {
	return ValidatePromoCodeAt(code, orderAmount, time.Now())
}

// ValidatePromoCodeAt applies the rejection rules in priority order:
// unknown or inactive, then expired, then below the minimum order
// amount. Percentage discounts are clamped to MaxDiscount when set.
func ValidatePromoCodeAt(code string, orderAmount float64, now time.Time) ValidationResult {
	promo := findPromoCode(code)
	if promo == nil || !promo.Active {
		return ValidationResult{Message: "Code promo invalide"}
	}

	if promo.ExpiresAt != nil && now.After(*promo.ExpiresAt) {
		return ValidationResult{Message: "Ce code promo a expiré"}
	}

	if orderAmount < promo.MinOrderAmount {
		return ValidationResult{
			Message: fmt.Sprintf("Montant minimum de commande: %.2f TND", promo.MinOrderAmount),
		}
	}

	discount := promo.Value
	if promo.Kind == KindPercentage {
		discount = orderAmount * promo.Value / 100
		if promo.MaxDiscount > 0 && discount > promo.MaxDiscount {
			discount = promo.MaxDiscount
		}
	}

	return ValidationResult{
		Valid:     true,
		Discount:  discount,
		Message:   "Code promo appliqué",
		PromoCode: promo,
	}
}

func findPromoCode(code string) *PromoCode {
	for i := range promoCodes {
		if strings.EqualFold(promoCodes[i].Code, code) {
			return &promoCodes[i]
		}
	}
	return nil
}

// IsFreeShipping reports whether a validated code carries the
// free-shipping effect rather than a monetary discount.
func IsFreeShipping(promo *PromoCode) bool {
	return promo != nil && promo.Kind == KindFixed && promo.Value == 0
}
