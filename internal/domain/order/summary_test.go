package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
	"github.com/weihanlim/cupcake-go/internal/domain/order"
)

func summaryCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(
		[]catalog.Item{
			{ID: catalog.BundleFlavorID, DisplayName: "All-Flavors Bundle", UnitPrice: decimal.NewFromFloat(20.00)},
			{ID: "vanilla", DisplayName: "Vanilla", UnitPrice: decimal.NewFromFloat(15.20)},
			{ID: "coffee", DisplayName: "Coffee", UnitPrice: decimal.NewFromFloat(24.80)},
		},
		[]catalog.Item{
			{ID: "strawberries", DisplayName: "Strawberries", UnitPrice: decimal.NewFromFloat(5.00)},
			{ID: "oranges", DisplayName: "Oranges", UnitPrice: decimal.NewFromFloat(6.00)},
		},
	)
	require.NoError(t, err)
	return cat
}

func TestSummary_SingleFlavor(t *testing.T) {
	cat := summaryCatalog(t)
	o := order.NewDefault(decimal.NewFromFloat(2.00))
	o.Quantity = 6
	o.FlavorID = "vanilla"
	o.SelectedToppingIDs = []string{"strawberries", "oranges"}
	o.TotalPrice = "RM102.20"

	got := order.Summary(o, cat)

	assert.Contains(t, got, "Quantity: 6 cupcakes")
	assert.Contains(t, got, "Flavor: Vanilla")
	assert.Contains(t, got, "Toppings: Strawberries, Oranges")
	assert.Contains(t, got, "Total: RM102.20")
	assert.NotContains(t, got, "Includes:")
}

func TestSummary_BundleListsEveryRealFlavor(t *testing.T) {
	cat := summaryCatalog(t)
	o := order.NewDefault(decimal.NewFromFloat(2.00))
	o.Quantity = 6
	o.FlavorID = catalog.BundleFlavorID
	o.IsBundle = true
	o.TotalPrice = "RM20.00"

	got := order.Summary(o, cat)

	assert.Contains(t, got, "Flavor: All-Flavors Bundle")
	assert.Contains(t, got, "Includes: Vanilla, Coffee")
	assert.NotContains(t, got, "All-Flavors Bundle, Vanilla", "bundle must not list itself")
}

func TestSummary_EdgeWording(t *testing.T) {
	cat := summaryCatalog(t)

	o := order.NewDefault(decimal.NewFromFloat(2.00))
	o.Quantity = 1
	got := order.Summary(o, cat)
	assert.Contains(t, got, "Quantity: 1 cupcake\n")
	assert.Contains(t, got, "Flavor: not selected")
	assert.Contains(t, got, "Toppings: none")
}

func TestClone_IsDeep(t *testing.T) {
	o := order.NewDefault(decimal.NewFromFloat(2.00))
	o.SelectedToppingIDs = []string{"strawberries"}

	clone := o.Clone()
	clone.SelectedToppingIDs[0] = "mutated"

	assert.Equal(t, "strawberries", o.SelectedToppingIDs[0])
}

func TestSameSelections_IgnoresID(t *testing.T) {
	a := order.NewDefault(decimal.NewFromFloat(2.00))
	b := order.NewDefault(decimal.NewFromFloat(2.00))
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.SameSelections(b))

	b.Quantity = 1
	assert.False(t, a.SameSelections(b))
}
