package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the snapshot of an in-progress cupcake order published to
// rendering collaborators. Snapshots are value copies; observers must
// never mutate them.
//
// Invariant: CakePrice, ToppingsPrice and TotalPrice always equal the
// pricing engine's output for the other fields. The controller re-derives
// all three before a snapshot becomes observable, so a snapshot is never
// stale.
type Order struct {
	// ID identifies the order attempt; a new id is issued on every reset.
	ID uuid.UUID

	// Quantity is the number of cupcakes, always >= 0.
	Quantity int

	// FlavorID is the selected flavor id, empty until a flavor is chosen.
	// catalog.BundleFlavorID selects the all-flavors bundle.
	FlavorID string

	// IsBundle mirrors FlavorID == catalog.BundleFlavorID.
	IsBundle bool

	// SelectedToppingIDs preserves selection order and holds no duplicates.
	SelectedToppingIDs []string

	// PricePerCupcake is the unit price used for non-bundle cake pricing.
	PricePerCupcake decimal.Decimal

	// IsRounded is a display preference: it changes the formatted total
	// only, never the underlying cake or topping prices.
	IsRounded bool

	// Derived, formatted currency strings.
	CakePrice     string
	ToppingsPrice string
	TotalPrice    string
}

// NewDefault returns the default order: quantity 0, no flavor, no
// toppings, the base price per cupcake, unrounded display. The derived
// price strings are left for the controller to fill before publishing.
func NewDefault(basePricePerCupcake decimal.Decimal) Order {
	return Order{
		ID:              uuid.New(),
		PricePerCupcake: basePricePerCupcake,
	}
}

// Clone returns a deep copy safe to hand to subscribers.
func (o Order) Clone() Order {
	out := o
	if o.SelectedToppingIDs != nil {
		out.SelectedToppingIDs = make([]string, len(o.SelectedToppingIDs))
		copy(out.SelectedToppingIDs, o.SelectedToppingIDs)
	}
	return out
}

// HasFlavor reports whether a flavor has been chosen yet.
func (o Order) HasFlavor() bool {
	return o.FlavorID != ""
}

// SameSelections reports whether two orders agree on every field except
// the order id. Used to check reset semantics, where the id is expected
// to differ.
func (o Order) SameSelections(other Order) bool {
	if o.Quantity != other.Quantity ||
		o.FlavorID != other.FlavorID ||
		o.IsBundle != other.IsBundle ||
		o.IsRounded != other.IsRounded ||
		!o.PricePerCupcake.Equal(other.PricePerCupcake) ||
		o.CakePrice != other.CakePrice ||
		o.ToppingsPrice != other.ToppingsPrice ||
		o.TotalPrice != other.TotalPrice ||
		len(o.SelectedToppingIDs) != len(other.SelectedToppingIDs) {
		return false
	}
	for i, id := range o.SelectedToppingIDs {
		if other.SelectedToppingIDs[i] != id {
			return false
		}
	}
	return true
}
