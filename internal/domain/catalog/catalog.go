package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/domain/shared"
)

// BundleFlavorID is the pseudo-flavor representing "all flavors".
// It is priced as a flat fee, never as quantity × unit price.
const BundleFlavorID = "all-flavors"

// Catalog is the read-only reference data for the order flow: the list
// of flavors (including the bundle pseudo-item) and toppings, keyed by id.
// Built once at startup; lookups never mutate it.
type Catalog struct {
	flavors      []Item
	toppings     []Item
	flavorIndex  map[string]int
	toppingIndex map[string]int
}

// New builds a catalog from ordered flavor and topping lists.
// Ids must be unique within their category and prices non-negative.
func New(flavors, toppings []Item) (*Catalog, error) {
	c := &Catalog{
		flavors:      make([]Item, len(flavors)),
		toppings:     make([]Item, len(toppings)),
		flavorIndex:  make(map[string]int, len(flavors)),
		toppingIndex: make(map[string]int, len(toppings)),
	}
	copy(c.flavors, flavors)
	copy(c.toppings, toppings)

	if err := index(c.flavors, c.flavorIndex, "flavor"); err != nil {
		return nil, err
	}
	if err := index(c.toppings, c.toppingIndex, "topping"); err != nil {
		return nil, err
	}
	return c, nil
}

func index(items []Item, idx map[string]int, kind string) error {
	for i, item := range items {
		if item.ID == "" {
			return shared.NewValidationError(kind, "id must not be empty")
		}
		if item.UnitPrice.IsNegative() {
			return shared.NewValidationError(kind, fmt.Sprintf("%q has a negative price", item.ID))
		}
		if _, dup := idx[item.ID]; dup {
			return shared.NewValidationError(kind, fmt.Sprintf("duplicate id %q", item.ID))
		}
		idx[item.ID] = i
	}
	return nil
}

// Flavor returns the flavor with the given id, including the bundle pseudo-item.
func (c *Catalog) Flavor(id string) (Item, error) {
	i, ok := c.flavorIndex[id]
	if !ok {
		return Item{}, shared.NewNotFoundError("flavor", id)
	}
	return c.flavors[i], nil
}

// Topping returns the topping with the given id.
func (c *Catalog) Topping(id string) (Item, error) {
	i, ok := c.toppingIndex[id]
	if !ok {
		return Item{}, shared.NewNotFoundError("topping", id)
	}
	return c.toppings[i], nil
}

// Flavors returns the flavors in catalog order. The returned slice is a copy.
func (c *Catalog) Flavors() []Item {
	out := make([]Item, len(c.flavors))
	copy(out, c.flavors)
	return out
}

// Toppings returns the toppings in catalog order. The returned slice is a copy.
func (c *Catalog) Toppings() []Item {
	out := make([]Item, len(c.toppings))
	copy(out, c.toppings)
	return out
}

// HasTopping reports whether a topping id exists.
func (c *Catalog) HasTopping(id string) bool {
	_, ok := c.toppingIndex[id]
	return ok
}

// ToppingUnitPrice is the lenient price lookup used by the pricing engine:
// unknown ids report ok=false rather than an error.
func (c *Catalog) ToppingUnitPrice(id string) (decimal.Decimal, bool) {
	i, ok := c.toppingIndex[id]
	if !ok {
		return decimal.Zero, false
	}
	return c.toppings[i].UnitPrice, true
}
