package order

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
	"github.com/weihanlim/cupcake-go/internal/domain/pricing"
	"github.com/weihanlim/cupcake-go/internal/domain/shared"
)

// Controller owns the single in-progress order. Every intent is applied
// as an atomic replace-and-publish: the working copy is mutated, all
// three derived price strings are recomputed, and only then is the new
// snapshot published. A rejected intent leaves the previously published
// snapshot untouched.
//
// The controller is explicitly constructed and injected into the
// rendering layer; there is no ambient global instance.
type Controller struct {
	catalog   *catalog.Catalog
	engine    *pricing.Engine
	basePrice decimal.Decimal

	mu      sync.Mutex
	current domain.Order
	store   *Store
}

// Confirmation is the result of the submit stub: the order id plus the
// share-ready summary text. Nothing is sent anywhere.
type Confirmation struct {
	OrderID string
	Summary string
}

// NewController creates a controller with a freshly derived default order.
func NewController(cat *catalog.Catalog, engine *pricing.Engine, basePricePerCupcake decimal.Decimal) *Controller {
	c := &Controller{
		catalog:   cat,
		engine:    engine,
		basePrice: basePricePerCupcake,
	}
	c.current = c.defaultOrder()
	c.store = NewStore(c.current)
	return c
}

// Store exposes the snapshot stream for rendering collaborators.
func (c *Controller) Store() *Store {
	return c.store
}

// Snapshot returns the currently published order.
func (c *Controller) Snapshot() domain.Order {
	return c.store.Get()
}

// SetQuantity sets the number of cupcakes and recomputes prices.
func (c *Controller) SetQuantity(n int) error {
	if n < 0 {
		return shared.NewValidationError("quantity", fmt.Sprintf("must not be negative, got %d", n))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	next.Quantity = n
	c.apply(next)
	return nil
}

// SelectFlavor sets the flavor, derives the bundle flag from the sentinel
// id and adopts the flavor's catalog unit price. The reference split this
// into a select call plus a separate price push; the catalog lookup is
// folded in here, with UpdatePricePerCupcake retained for protocol parity.
func (c *Controller) SelectFlavor(id string) error {
	item, err := c.catalog.Flavor(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	next.FlavorID = id
	next.IsBundle = id == catalog.BundleFlavorID
	next.PricePerCupcake = item.UnitPrice
	c.apply(next)
	return nil
}

// UpdatePricePerCupcake overrides the unit price used for non-bundle cake
// pricing and recomputes prices.
func (c *Controller) UpdatePricePerCupcake(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("price", fmt.Sprintf("must not be negative, got %s", price))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	next.PricePerCupcake = price
	c.apply(next)
	return nil
}

// SetSelectedToppings replaces the topping selection wholesale. Unknown
// topping ids are rejected; this is stricter than the reference, which
// silently priced them at zero. Duplicates collapse to their first
// occurrence, preserving selection order.
func (c *Controller) SetSelectedToppings(ids []string) error {
	deduped := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !c.catalog.HasTopping(id) {
			return shared.NewValidationError("toppings", fmt.Sprintf("unknown topping %q", id))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	next.SelectedToppingIDs = deduped
	c.apply(next)
	return nil
}

// ToggleRoundPrice flips the rounded-display preference. Only the
// formatted total changes; cake and topping prices keep two decimals.
func (c *Controller) ToggleRoundPrice() {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	next.IsRounded = !next.IsRounded
	c.apply(next)
}

// Reset restores the default order under a fresh order id. Invoked
// directly or through the navigation machine's cancel hook.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apply(c.defaultOrder())
}

// Submit is the send stub: it validates that a flavor was chosen and
// returns a confirmation without mutating or transmitting anything.
func (c *Controller) Submit() (Confirmation, error) {
	snap := c.Snapshot()
	if !snap.HasFlavor() {
		return Confirmation{}, shared.NewValidationError("flavor", "no flavor selected")
	}
	return Confirmation{
		OrderID: snap.ID.String(),
		Summary: domain.Summary(snap, c.catalog),
	}, nil
}

// apply re-derives every cached price field and publishes the snapshot.
// Callers hold c.mu.
func (c *Controller) apply(next domain.Order) {
	next = c.derive(next)
	c.current = next
	c.store.Publish(next)
}

// derive fills the three cached price strings from the engine's output
// for the order's current inputs.
func (c *Controller) derive(o domain.Order) domain.Order {
	cake := c.engine.CakePrice(o.Quantity, o.IsBundle, o.PricePerCupcake)
	toppings := c.engine.ToppingsPrice(o.SelectedToppingIDs)
	total := c.engine.TotalPrice(cake, toppings, o.IsRounded)

	o.CakePrice = c.engine.FormatCurrency(cake, false)
	o.ToppingsPrice = c.engine.FormatCurrency(toppings, false)
	o.TotalPrice = c.engine.FormatCurrency(total, o.IsRounded)
	return o
}

func (c *Controller) defaultOrder() domain.Order {
	return c.derive(domain.NewDefault(c.basePrice))
}
