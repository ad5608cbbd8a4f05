package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weihanlim/cupcake-go/internal/domain/pricing"
)

func newTestEngine() *pricing.Engine {
	prices := map[string]decimal.Decimal{
		"strawberries": decimal.NewFromFloat(5.00),
		"blueberries":  decimal.NewFromFloat(10.00),
		"oranges":      decimal.NewFromFloat(6.00),
	}
	lookup := func(id string) (decimal.Decimal, bool) {
		p, ok := prices[id]
		return p, ok
	}
	return pricing.NewEngine(decimal.NewFromFloat(20.00), "RM", lookup)
}

func TestCakePrice_ScalesWithQuantity(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		quantity int
		unit     float64
		want     string
	}{
		{"zero quantity", 0, 2.00, "0"},
		{"single default-price cupcake", 1, 2.00, "2"},
		{"six default-price cupcakes", 6, 2.00, "12"},
		{"twelve vanilla cupcakes", 12, 15.20, "182.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.CakePrice(tt.quantity, false, decimal.NewFromFloat(tt.unit))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCakePrice_BundleIgnoresQuantity(t *testing.T) {
	engine := newTestEngine()

	for _, quantity := range []int{0, 1, 6, 12, 100} {
		got := engine.CakePrice(quantity, true, decimal.NewFromFloat(15.20))
		assert.True(t, got.Equal(decimal.NewFromFloat(20.00)),
			"bundle price must be flat, got %s for quantity %d", got, quantity)
	}
}

func TestToppingsPrice_SumsSelection(t *testing.T) {
	engine := newTestEngine()

	assert.True(t, engine.ToppingsPrice(nil).IsZero())
	assert.True(t, engine.ToppingsPrice([]string{}).IsZero())

	got := engine.ToppingsPrice([]string{"strawberries"})
	assert.Equal(t, "5", got.String())

	got = engine.ToppingsPrice([]string{"strawberries", "blueberries", "oranges"})
	assert.Equal(t, "21", got.String())
}

func TestToppingsPrice_UnknownIDContributesZero(t *testing.T) {
	engine := newTestEngine()

	got := engine.ToppingsPrice([]string{"sprinkles", "strawberries"})
	assert.Equal(t, "5", got.String())
}

func TestTotalPrice_SumBeforeRounding(t *testing.T) {
	engine := newTestEngine()

	cake := decimal.NewFromFloat(12.00)
	toppings := decimal.NewFromFloat(5.00)

	got := engine.TotalPrice(cake, toppings, false)
	assert.Equal(t, "17", got.String())
}

func TestTotalPrice_RoundsHalfAwayFromZero(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		cake     float64
		toppings float64
		want     string
	}{
		{22.50, 5.00, "28"}, // 27.50 rounds up, not to even
		{2.00, 0.50, "3"},   // exact half rounds away from zero
		{2.00, 0.49, "2"},
		{10.80, 0.00, "11"},
		{15.20, 0.00, "15"},
	}

	for _, tt := range tests {
		got := engine.TotalPrice(decimal.NewFromFloat(tt.cake), decimal.NewFromFloat(tt.toppings), true)
		assert.Equal(t, tt.want, got.String(), "total of %.2f + %.2f rounded", tt.cake, tt.toppings)
	}
}

func TestFormatCurrency(t *testing.T) {
	engine := newTestEngine()

	assert.Equal(t, "RM12.00", engine.FormatCurrency(decimal.NewFromFloat(12.00), false))
	assert.Equal(t, "RM0.00", engine.FormatCurrency(decimal.Zero, false))
	assert.Equal(t, "RM182.40", engine.FormatCurrency(decimal.NewFromFloat(182.4), false))
	assert.Equal(t, "RM28", engine.FormatCurrency(decimal.NewFromFloat(27.50), true))
	assert.Equal(t, "RM27", engine.FormatCurrency(decimal.NewFromFloat(27.49), true))
}

func TestEngine_IsDeterministic(t *testing.T) {
	engine := newTestEngine()
	ids := []string{"strawberries", "oranges"}

	first := engine.ToppingsPrice(ids)
	for i := 0; i < 10; i++ {
		require.True(t, engine.ToppingsPrice(ids).Equal(first))
	}
}
