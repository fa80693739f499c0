package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// USD builds a dollar amount from its decimal string form, e.g. "12.99".
// Panics on malformed input, so it is only for static menu data and tests.
func USD(amount string) Money {
	return Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func (m Money) Mul(n int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(n)), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Display renders the price the way the menu shows it, e.g. "$12.99".
// Non-dollar currencies fall back to the ISO code prefix.
func (m Money) Display() string {
	if m.Currency == currency.USD {
		return "$" + m.Amount.StringFixed(2)
	}
	return m.Currency.String() + " " + m.Amount.StringFixed(2)
}

// ParseDisplayPrice converts a display form such as "$12.99" back into Money.
// It belongs to the presentation boundary; stores only ever see Money.
func ParseDisplayPrice(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)

	unit := currency.USD
	switch {
	case strings.HasPrefix(trimmed, "$"):
		trimmed = strings.TrimPrefix(trimmed, "$")
	case len(trimmed) > 3 && trimmed[3] == ' ':
		parsed, err := currency.ParseISO(trimmed[:3])
		if err != nil {
			return Money{}, fmt.Errorf("currency.ParseISO: %w", err)
		}
		unit = parsed
		trimmed = trimmed[4:]
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(trimmed))
	if err != nil {
		return Money{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	return Money{Amount: amount, Currency: unit}, nil
}
