package order

import (
	"time"

	"velora-be/internal/pricing"
	"velora-be/internal/utils"
)

// AssembleParams is a priced-cart snapshot plus delivery data.
type AssembleParams struct {
	Items           []Item
	Country         string
	PromoCode       string
	PaymentMethod   PaymentMethod
	DeliveryAddress *DeliveryAddress
}

// AssembleOrder prices a draft order: subtotal from the line items,
// promo discount, zone delivery fee (waived by a free-shipping code),
// and the final total. The result carries a fresh reference and starts
// in the draft state.
func AssembleOrder(p AssembleParams) Order {
	var subtotal float64
	for _, it := range p.Items {
		subtotal += it.Price * float64(it.Quantity)
	}

	var discount float64
	freeShipping := false
	promoApplied := ""
	if p.PromoCode != "" {
		res := pricing.ValidatePromoCode(p.PromoCode, subtotal)
		if res.Valid {
			discount = res.Discount
			freeShipping = pricing.IsFreeShipping(res.PromoCode)
			promoApplied = res.PromoCode.Code
		}
	}

	country := p.Country
	if p.DeliveryAddress != nil && p.DeliveryAddress.Country != "" {
		country = p.DeliveryAddress.Country
	}

	deliveryFee := pricing.DeliveryPriceForCountry(country, subtotal)
	if freeShipping {
		deliveryFee = 0
	}

	goods := subtotal - discount
	if goods < 0 {
		goods = 0
	}

	return Order{
		Reference:       utils.GenerateOrderReference(),
		Items:           p.Items,
		Subtotal:        subtotal,
		Discount:        discount,
		DeliveryFee:     deliveryFee,
		Total:           goods + deliveryFee,
		Status:          StatusDraft,
		PaymentMethod:   p.PaymentMethod,
		PromoCode:       promoApplied,
		DeliveryAddress: p.DeliveryAddress,
		CreatedAt:       time.Now().UTC(),
	}
}
