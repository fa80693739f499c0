// Package store holds the in-memory state containers behind the UI: cart,
// favorites, session and notifications. Each store owns its state
// exclusively, applies transitions atomically and notifies subscribers with
// a snapshot of the new state before the mutating call returns.
package store

import (
	"sync"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

type CartStore struct {
	mu    sync.Mutex
	state domain.CartState
	subs  []func(domain.CartState)
}

func NewCart() *CartStore {
	return &CartStore{state: domain.EmptyCart()}
}

// Add puts one more of item into the cart.
func (s *CartStore) Add(item domain.MenuItem) {
	s.apply(func(state domain.CartState) domain.CartState {
		return state.Add(item)
	})
}

// Remove drops the whole line for itemID; unknown IDs are a no-op.
func (s *CartStore) Remove(itemID string) {
	s.apply(func(state domain.CartState) domain.CartState {
		return state.Remove(itemID)
	})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartStore) SetQuantity(itemID string, quantity int) {
	s.apply(func(state domain.CartState) domain.CartState {
		return state.SetQuantity(itemID, quantity)
	})
}

func (s *CartStore) Clear() {
	s.apply(func(domain.CartState) domain.CartState {
		return domain.EmptyCart()
	})
}

// State returns a snapshot safe for the caller to keep.
func (s *CartStore) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshotCart(s.state)
}

// Subscribe registers fn to be called with a snapshot after every
// transition. Subscriptions live for the store's lifetime.
func (s *CartStore) Subscribe(fn func(domain.CartState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

func (s *CartStore) apply(transition func(domain.CartState) domain.CartState) {
	s.mu.Lock()
	s.state = transition(s.state)
	snapshot := snapshotCart(s.state)
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func snapshotCart(state domain.CartState) domain.CartState {
	lines := make([]domain.CartLine, len(state.Lines))
	copy(lines, state.Lines)

	return domain.CartState{
		Lines:       lines,
		TotalItems:  state.TotalItems,
		TotalAmount: state.TotalAmount,
	}
}
