package wishlist

import (
	"errors"
	"sync"

	"velora-be/internal/logger"
	"velora-be/internal/storage"

	"go.uber.org/zap"
)

const snapshotKey = "wishlist"

// Item is a liked product reference. The wishlist is a set keyed by
// product id; there is no quantity.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Store tracks liked products with set semantics.
type Store struct {
	mu        sync.RWMutex
	items     []Item
	snapshots storage.Store
}

// NewStore rehydrates the wishlist from the snapshot store. A missing
// or corrupt snapshot starts the wishlist empty.
func NewStore(snapshots storage.Store) *Store {
	s := &Store{snapshots: snapshots}
	s.restore()
	return s
}

func (s *Store) restore() {
	if s.snapshots == nil {
		return
	}

	var items []Item
	err := s.snapshots.Load(snapshotKey, &items)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return
	default:
		logger.L().Warn("discarding unreadable wishlist snapshot", zap.Error(err))
		return
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ProductID == "" || seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		s.items = append(s.items, it)
	}
}

func (s *Store) persist() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(snapshotKey, s.items); err != nil {
		logger.L().Warn("failed to persist wishlist snapshot", zap.Error(err))
	}
}

// Add is a no-op when the product is already liked.
func (s *Store) Add(item Item) {
	if item.ProductID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ProductID == item.ProductID {
			return
		}
	}
	s.items = append(s.items, item)
	s.persist()
}

// Remove is idempotent.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	if removed {
		s.persist()
	}
}

// Contains reports whether the product is liked.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of liked products.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of the current wishlist.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Clear resets to empty.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}
