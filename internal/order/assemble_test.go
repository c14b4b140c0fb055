package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assembleItems() []Item {
	return []Item{
		{Name: "Linen Shirt", Reference: "p-1", Price: 45, Size: "M", Quantity: 2},
		{Name: "Belt", Reference: "p-2", Price: 10, Size: "U", Quantity: 1},
	}
}

func TestAssembleOrder_Pricing(t *testing.T) {
	o := AssembleOrder(AssembleParams{
		Items:         assembleItems(),
		Country:       "France",
		PaymentMethod: MethodCard,
	})

	assert.InDelta(t, 100, o.Subtotal, 1e-9)
	assert.Equal(t, float64(0), o.Discount)
	// 100 is above the France free-shipping threshold.
	assert.Equal(t, float64(0), o.DeliveryFee)
	assert.InDelta(t, 100, o.Total, 1e-9)
	assert.Equal(t, StatusDraft, o.Status)
	assert.True(t, strings.HasPrefix(o.Reference, "CMD-"))
}

func TestAssembleOrder_DeliveryBelowThreshold(t *testing.T) {
	o := AssembleOrder(AssembleParams{
		Items:   []Item{{Name: "Belt", Reference: "p-2", Price: 10, Size: "U", Quantity: 1}},
		Country: "France",
	})

	assert.InDelta(t, 4.90, o.DeliveryFee, 1e-9)
	assert.InDelta(t, 14.90, o.Total, 1e-9)
}

func TestAssembleOrder_PromoDiscount(t *testing.T) {
	o := AssembleOrder(AssembleParams{
		Items:     assembleItems(),
		Country:   "France",
		PromoCode: "WELCOME10",
	})

	assert.InDelta(t, 10, o.Discount, 1e-9)
	assert.Equal(t, "WELCOME10", o.PromoCode)
	assert.InDelta(t, 90, o.Total, 1e-9)
}

func TestAssembleOrder_InvalidPromoIgnored(t *testing.T) {
	o := AssembleOrder(AssembleParams{
		Items:     assembleItems(),
		Country:   "France",
		PromoCode: "NOPE",
	})

	assert.Equal(t, float64(0), o.Discount)
	assert.Empty(t, o.PromoCode)
}

func TestAssembleOrder_FreeShippingPromo(t *testing.T) {
	// 80 is below the Europe threshold, so delivery would cost 9.90
	// without the code.
	items := []Item{{Name: "Linen Shirt", Reference: "p-1", Price: 80, Size: "M", Quantity: 1}}

	o := AssembleOrder(AssembleParams{
		Items:     items,
		Country:   "Germany",
		PromoCode: "FREESHIP",
	})

	assert.Equal(t, float64(0), o.Discount)
	assert.Equal(t, float64(0), o.DeliveryFee)
	assert.InDelta(t, 80, o.Total, 1e-9)
}

func TestAssembleOrder_DeliveryAddressCountryWins(t *testing.T) {
	o := AssembleOrder(AssembleParams{
		Items:           []Item{{Name: "Belt", Reference: "p-2", Price: 10, Size: "U", Quantity: 1}},
		Country:         "France",
		DeliveryAddress: &DeliveryAddress{Address: "5 rue X", City: "Tokyo", Country: "Japan"},
	})

	// Billing says France, shipping says Japan: the parcel price follows
	// the shipping country.
	assert.InDelta(t, 19.90, o.DeliveryFee, 1e-9)
}
