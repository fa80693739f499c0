package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine tracks one distinct menu item and how many of it are in the cart.
// Quantity is always >= 1; a transition that would drop it to zero removes
// the line instead.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// CartState is an ordered sequence of lines plus the two derived aggregates.
// TotalItems is the sum of quantities and TotalAmount the sum of
// price x quantity over all lines; every transition keeps both exact.
// Totals assume a single-currency menu, which is what the catalog provides.
type CartState struct {
	Lines       []CartLine
	TotalItems  int
	TotalAmount decimal.Decimal
}

func EmptyCart() CartState {
	return CartState{TotalAmount: decimal.Zero}
}

// Add puts one more of item into the cart: an existing line grows by one,
// otherwise a new line with quantity 1 is appended.
func (s CartState) Add(item MenuItem) CartState {
	next := s.clone()

	found := false
	for i := range next.Lines {
		if next.Lines[i].Item.ID == item.ID {
			next.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next.Lines = append(next.Lines, CartLine{Item: item, Quantity: 1})
	}

	next.TotalItems++
	next.TotalAmount = next.TotalAmount.Add(item.Price.Amount)

	return next
}

// Remove drops the line with the given item ID entirely. Unknown IDs are a
// no-op.
func (s CartState) Remove(itemID string) CartState {
	next := s.clone()

	for i, line := range next.Lines {
		if line.Item.ID != itemID {
			continue
		}

		next.TotalItems -= line.Quantity
		next.TotalAmount = next.TotalAmount.Sub(line.Item.Price.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
		next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
		break
	}

	return next
}

// SetQuantity replaces a line's quantity. A quantity of zero or less behaves
// exactly like Remove; unknown IDs are a no-op.
func (s CartState) SetQuantity(itemID string, quantity int) CartState {
	if quantity <= 0 {
		return s.Remove(itemID)
	}

	next := s.clone()

	for i := range next.Lines {
		line := &next.Lines[i]
		if line.Item.ID != itemID {
			continue
		}

		diff := quantity - line.Quantity
		line.Quantity = quantity
		next.TotalItems += diff
		next.TotalAmount = next.TotalAmount.Add(line.Item.Price.Amount.Mul(decimal.NewFromInt(int64(diff))))
		break
	}

	return next
}

func (s CartState) clone() CartState {
	lines := make([]CartLine, len(s.Lines))
	copy(lines, s.Lines)

	return CartState{
		Lines:       lines,
		TotalItems:  s.TotalItems,
		TotalAmount: s.TotalAmount,
	}
}
