package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

func TestMoneyDisplay(t *testing.T) {
	assert.Equal(t, "$12.99", domain.USD("12.99").Display())
	assert.Equal(t, "$3.50", domain.USD("3.5").Display())

	eur := domain.NewMoney(domain.USD("7.25").Amount, currency.EUR)
	assert.Equal(t, "EUR 7.25", eur.Display())
}

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.Money
		wantError bool
	}{
		{name: "dollar prefix", input: "$12.99", want: domain.USD("12.99")},
		{name: "padded", input: "  $4.50 ", want: domain.USD("4.50")},
		{name: "iso prefix", input: "EUR 7.25", want: domain.NewMoney(domain.USD("7.25").Amount, currency.EUR)},
		{name: "bare number", input: "10.99", want: domain.USD("10.99")},
		{name: "garbage", input: "$twelve", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDisplayPrice(tt.input)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.True(t, tt.want.Amount.Equal(got.Amount))
			assert.Equal(t, tt.want.Currency.String(), got.Currency.String())
		})
	}
}

func TestMoneyMul(t *testing.T) {
	got := domain.USD("12.99").Mul(3)
	assert.True(t, domain.USD("38.97").Amount.Equal(got.Amount))
	assert.Equal(t, currency.USD.String(), got.Currency.String())
}
