package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ranchers-app/storefront/internal/domain"
)

var ErrMalformedItem = errors.New("malformed cart item")

// Snapshot is an immutable view of the cart handed to readers and
// subscribers. Total always matches Items.
type Snapshot struct {
	Items []domain.CartItem
	Total float64
}

// Store is the single in-memory authority for one session's cart. The
// derived total is recomputed under the same lock as every mutation, so no
// reader ever observes a stale total.
type Store struct {
	mu    sync.RWMutex
	items []domain.CartItem
	total float64

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Snapshot))}
}

// Items returns a copy of the current ordered contents.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.items)
}

// Total returns the derived total, Σ price × quantity.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Len reports the number of items without copying them.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// SetItems replaces the cart contents wholesale. Structural violations fail
// fast with ErrMalformedItem and leave the cart untouched.
func (s *Store) SetItems(items []domain.CartItem) error {
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	s.mu.Lock()
	s.items = normalizeItems(items)
	s.total = sumItems(s.items)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// AddItem appends one item, preserving selection order.
func (s *Store) AddItem(item domain.CartItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.Quantity = item.EffectiveQuantity()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.total += item.Subtotal()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// RemoveItem drops the item at the given position.
func (s *Store) RemoveItem(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return fmt.Errorf("no cart item at position %d", index)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.total = sumItems(s.items)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Clear resets the cart to empty. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.total = 0
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns items and total captured atomically.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every mutation with the resulting
// snapshot. The returned func cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Items: copyItems(s.items), Total: s.total}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func validateItem(item domain.CartItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrMalformedItem)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price %.2f is negative", ErrMalformedItem, item.Price)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d is negative", ErrMalformedItem, item.Quantity)
	}
	return nil
}

func normalizeItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	for i, item := range items {
		item.Quantity = item.EffectiveQuantity()
		out[i] = item
	}
	return out
}

func sumItems(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	if len(items) == 0 {
		return []domain.CartItem{}
	}
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
