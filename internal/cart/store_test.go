package cart

import (
	"testing"

	"velora-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt() LineItem {
	return LineItem{
		ProductID:     "p-1",
		Name:          "Linen Shirt",
		Size:          "M",
		Color:         "white",
		Price:         45,
		OriginalPrice: 60,
		Discount:      25,
		Image:         "shirt.jpg",
	}
}

func TestStore_AddToCart_MergesSameKey(t *testing.T) {
	s := NewStore(nil)

	s.AddToCart(tshirt(), 1)
	s.AddToCart(tshirt(), 2)
	s.AddToCart(tshirt(), 3)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 6, s.TotalItems())
}

func TestStore_AddToCart_DistinctVariants(t *testing.T) {
	s := NewStore(nil)

	s.AddToCart(tshirt(), 1)

	blue := tshirt()
	blue.Color = "blue"
	s.AddToCart(blue, 1)

	large := tshirt()
	large.Size = "L"
	s.AddToCart(large, 1)

	assert.Len(t, s.Items(), 3)
	assert.Equal(t, 3, s.TotalItems())
}

func TestStore_AddToCart_IgnoresNonPositiveQuantity(t *testing.T) {
	s := NewStore(nil)

	s.AddToCart(tshirt(), 0)
	s.AddToCart(tshirt(), -2)

	assert.Empty(t, s.Items())
}

func TestStore_DerivedTotals(t *testing.T) {
	s := NewStore(nil)

	s.AddToCart(tshirt(), 2) // 45 each, was 60

	full := LineItem{ProductID: "p-2", Name: "Belt", Size: "U", Price: 20}
	s.AddToCart(full, 1) // no original price: falls back to unit price

	assert.InDelta(t, 110, s.TotalPrice(), 1e-9)
	assert.InDelta(t, 140, s.OriginalTotalPrice(), 1e-9)
	assert.InDelta(t, 30, s.TotalDiscount(), 1e-9)
	assert.Equal(t, 3, s.TotalItems())
}

func TestStore_TotalDiscount_NeverNegative(t *testing.T) {
	s := NewStore(nil)

	// Original price below the current price must not yield a negative
	// discount.
	odd := tshirt()
	odd.Price = 80
	odd.OriginalPrice = 60
	s.AddToCart(odd, 1)

	assert.Equal(t, float64(0), s.TotalDiscount())
}

func TestStore_UpdateQuantity(t *testing.T) {
	t.Run("ReplacesInPlace", func(t *testing.T) {
		s := NewStore(nil)
		s.AddToCart(tshirt(), 5)

		s.UpdateQuantity("p-1", "M", "white", 2)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		s := NewStore(nil)
		s.AddToCart(tshirt(), 5)

		s.UpdateQuantity("p-1", "M", "white", 0)

		assert.Empty(t, s.Items())
	})

	t.Run("NonMatchingKeyIsNoOp", func(t *testing.T) {
		s := NewStore(nil)
		s.AddToCart(tshirt(), 5)

		s.UpdateQuantity("p-404", "M", "white", 1)
		s.UpdateQuantity("p-1", "XXL", "white", 1)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})
}

func TestStore_RemoveFromCart(t *testing.T) {
	t.Run("DefaultRemovesAllColors", func(t *testing.T) {
		s := NewStore(nil)
		s.AddToCart(tshirt(), 1)
		blue := tshirt()
		blue.Color = "blue"
		s.AddToCart(blue, 1)

		s.RemoveFromCart("p-1", "M", "white")

		assert.Empty(t, s.Items())
	})

	t.Run("ColorScopedKeepsOtherColors", func(t *testing.T) {
		s := NewStore(nil, WithColorScopedRemoval())
		s.AddToCart(tshirt(), 1)
		blue := tshirt()
		blue.Color = "blue"
		s.AddToCart(blue, 1)

		s.RemoveFromCart("p-1", "M", "white")

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "blue", items[0].Color)
	})

	t.Run("MissingLineIsNoOp", func(t *testing.T) {
		s := NewStore(nil)
		s.AddToCart(tshirt(), 1)

		s.RemoveFromCart("p-404", "M", "white")

		assert.Len(t, s.Items(), 1)
	})
}

func TestStore_ClearCart(t *testing.T) {
	s := NewStore(nil)
	s.AddToCart(tshirt(), 3)

	s.ClearCart()

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, float64(0), s.TotalPrice())
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	snapshots, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := NewStore(snapshots)
	s.AddToCart(tshirt(), 2)
	belt := LineItem{ProductID: "p-2", Name: "Belt", Size: "U", Price: 20}
	s.AddToCart(belt, 1)

	// A fresh store over the same snapshot dir sees identical lines.
	reloaded := NewStore(snapshots)
	assert.ElementsMatch(t, s.Items(), reloaded.Items())
	assert.InDelta(t, s.TotalPrice(), reloaded.TotalPrice(), 1e-9)
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	snapshots, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, snapshots.Save("unrelated", "keep"))

	// Simulate a corrupt snapshot by storing the wrong shape.
	require.NoError(t, snapshots.Save(snapshotKey, "not a line item list"))

	s := NewStore(snapshots)
	assert.Empty(t, s.Items())
}
