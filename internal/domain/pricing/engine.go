package pricing

import (
	"github.com/shopspring/decimal"
)

// ToppingPriceLookup resolves a topping id to its unit price.
// Unknown ids report ok=false and contribute zero to the toppings price;
// strict validation of topping ids is the controller's concern, not the
// engine's.
type ToppingPriceLookup func(id string) (decimal.Decimal, bool)

// Engine computes the derived prices of an order. It holds only static
// pricing configuration and keeps no state between calls: identical
// inputs always produce identical outputs.
type Engine struct {
	bundlePrice    decimal.Decimal
	currencyPrefix string
	toppingPrice   ToppingPriceLookup
}

// NewEngine creates a pricing engine.
func NewEngine(bundlePrice decimal.Decimal, currencyPrefix string, toppingPrice ToppingPriceLookup) *Engine {
	return &Engine{
		bundlePrice:    bundlePrice,
		currencyPrefix: currencyPrefix,
		toppingPrice:   toppingPrice,
	}
}

// CakePrice returns the flat bundle price when isBundle is set, otherwise
// quantity × pricePerCupcake. No clamping and no rounding; rounding is a
// display concern applied by the caller.
func (e *Engine) CakePrice(quantity int, isBundle bool, pricePerCupcake decimal.Decimal) decimal.Decimal {
	if isBundle {
		return e.bundlePrice
	}
	return pricePerCupcake.Mul(decimal.NewFromInt(int64(quantity)))
}

// ToppingsPrice sums the unit prices of the selected toppings.
func (e *Engine) ToppingsPrice(ids []string) decimal.Decimal {
	total := decimal.Zero
	for _, id := range ids {
		if price, ok := e.toppingPrice(id); ok {
			total = total.Add(price)
		}
	}
	return total
}

// TotalPrice adds cake and toppings prices. When rounded is set the sum is
// rounded to the nearest whole currency unit, half away from zero.
func (e *Engine) TotalPrice(cake, toppings decimal.Decimal, rounded bool) decimal.Decimal {
	total := cake.Add(toppings)
	if rounded {
		return total.Round(0)
	}
	return total
}

// FormatCurrency renders an amount with the currency prefix: two decimals
// normally, zero decimals when the rounded display preference is active.
func (e *Engine) FormatCurrency(amount decimal.Decimal, rounded bool) string {
	if rounded {
		return e.currencyPrefix + amount.Round(0).StringFixed(0)
	}
	return e.currencyPrefix + amount.StringFixed(2)
}

// BundlePrice exposes the configured flat bundle price.
func (e *Engine) BundlePrice() decimal.Decimal {
	return e.bundlePrice
}
