package cart

import (
	"errors"
	"sync"

	"velora-be/internal/logger"
	"velora-be/internal/storage"

	"go.uber.org/zap"
)

const snapshotKey = "cart"

// Option configures a Store.
type Option func(*Store)

// WithColorScopedRemoval makes RemoveFromCart and UpdateQuantity match
// on color as well as (product, size). The default matches every color
// variant sharing the same product and size.
func WithColorScopedRemoval() Option {
	return func(s *Store) { s.colorScoped = true }
}

// Store is the single source of truth for the shopping cart. Every
// mutation is one atomic transition; derived totals are recomputed from
// the line items on demand and can never drift.
type Store struct {
	mu          sync.RWMutex
	items       []LineItem
	snapshots   storage.Store
	colorScoped bool
}

// NewStore rehydrates the cart from the snapshot store. A missing or
// corrupt snapshot starts the cart empty.
func NewStore(snapshots storage.Store, opts ...Option) *Store {
	s := &Store{snapshots: snapshots}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	if s.snapshots == nil {
		return
	}

	var items []LineItem
	err := s.snapshots.Load(snapshotKey, &items)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return
	default:
		logger.L().Warn("discarding unreadable cart snapshot", zap.Error(err))
		return
	}

	// Enforce the quantity invariant on rehydrated rows.
	for _, li := range items {
		if li.Quantity > 0 {
			s.items = append(s.items, li)
		}
	}
}

// persist writes the snapshot best-effort. The in-memory state is the
// authority; a failed write is logged, never propagated.
func (s *Store) persist() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(snapshotKey, s.items); err != nil {
		logger.L().Warn("failed to persist cart snapshot", zap.Error(err))
	}
}

func (s *Store) matches(li LineItem, productID, size, color string) bool {
	if li.ProductID != productID || li.Size != size {
		return false
	}
	if s.colorScoped && li.Color != color {
		return false
	}
	return true
}

// AddToCart merges quantity into the line keyed by (product, size,
// color), creating it if absent. Quantities below 1 are ignored;
// rejecting them is the caller's job.
func (s *Store) AddToCart(item LineItem, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.key()
	for i := range s.items {
		if s.items[i].key() == key {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist()
}

// RemoveFromCart removes every line matching the selector. Removing a
// line that does not exist is a no-op.
func (s *Store) RemoveFromCart(productID, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID, size, color)
}

func (s *Store) removeLocked(productID, size, color string) {
	kept := s.items[:0]
	removed := false
	for _, li := range s.items {
		if s.matches(li, productID, size, color) {
			removed = true
			continue
		}
		kept = append(kept, li)
	}
	s.items = kept
	if removed {
		s.persist()
	}
}

// UpdateQuantity replaces the quantity of matching lines. A quantity of
// zero or less removes them instead; a non-matching selector is a no-op.
func (s *Store) UpdateQuantity(productID, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID, size, color)
		return
	}

	changed := false
	for i := range s.items {
		if s.matches(s.items[i], productID, size, color) {
			s.items[i].Quantity = quantity
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// ClearCart resets to the empty state unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the current line items.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, li := range s.items {
		total += li.Price * float64(li.Quantity)
	}
	return total
}

// OriginalTotalPrice uses the pre-discount unit price where present.
func (s *Store) OriginalTotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, li := range s.items {
		total += li.originalUnitPrice() * float64(li.Quantity)
	}
	return total
}

// TotalDiscount is the gap between original and current totals, never
// negative.
func (s *Store) TotalDiscount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total, original float64
	for _, li := range s.items {
		total += li.Price * float64(li.Quantity)
		original += li.originalUnitPrice() * float64(li.Quantity)
	}
	if original <= total {
		return 0
	}
	return original - total
}
