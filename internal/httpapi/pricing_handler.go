package httpapi

import (
	"encoding/json"
	"net/http"

	"velora-be/internal/cart"
	"velora-be/internal/pricing"
)

type PricingHandler struct {
	cart *cart.Store
}

func NewPricingHandler(cartStore *cart.Store) *PricingHandler {
	return &PricingHandler{cart: cartStore}
}

type ValidatePromoDTO struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// QuoteDTO prices the current cart for a destination.
type QuoteDTO struct {
	Country   string `json:"country"`
	PromoCode string `json:"promo_code"`
}

type QuoteResponse struct {
	Subtotal     float64                  `json:"subtotal"`
	Discount     float64                  `json:"discount"`
	DeliveryFee  float64                  `json:"delivery_fee"`
	Total        float64                  `json:"total"`
	TaxIncluded  float64                  `json:"tax_included"`
	FreeShipping bool                     `json:"free_shipping"`
	Zone         pricing.Zone             `json:"zone"`
	Promo        *pricing.ValidationResult `json:"promo,omitempty"`
}

func (h *PricingHandler) Zones(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pricing.Zones())
}

func (h *PricingHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_code", "code is required")
		return
	}

	// A rejected code is a normal outcome, not an HTTP error.
	respondJSON(w, http.StatusOK, pricing.ValidatePromoCode(req.Code, req.Amount))
}

func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Country == "" {
		respondError(w, http.StatusBadRequest, "invalid_country", "country is required")
		return
	}

	subtotal := h.cart.TotalPrice()

	var (
		discount     float64
		freeShipping bool
		promoResult  *pricing.ValidationResult
	)
	if req.PromoCode != "" {
		res := pricing.ValidatePromoCode(req.PromoCode, subtotal)
		promoResult = &res
		if res.Valid {
			discount = res.Discount
			freeShipping = pricing.IsFreeShipping(res.PromoCode)
		}
	}

	deliveryFee := pricing.DeliveryPriceForCountry(req.Country, subtotal)
	if freeShipping {
		deliveryFee = 0
	}

	goods := subtotal - discount
	if goods < 0 {
		goods = 0
	}
	total := goods + deliveryFee

	respondJSON(w, http.StatusOK, QuoteResponse{
		Subtotal:     subtotal,
		Discount:     discount,
		DeliveryFee:  deliveryFee,
		Total:        total,
		TaxIncluded:  pricing.CalculateTax(goods),
		FreeShipping: freeShipping || deliveryFee == 0,
		Zone:         pricing.ZoneForCountry(req.Country),
		Promo:        promoResult,
	})
}
