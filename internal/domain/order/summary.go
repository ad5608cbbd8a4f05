package order

import (
	"fmt"
	"strings"

	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
)

// Summary renders the share-ready order summary used by the send action
// and the summary screen: quantity, flavor (with bundle contents when the
// all-flavors bundle is selected), toppings and the displayed total.
func Summary(o Order, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("New cupcake order\n")
	fmt.Fprintf(&b, "Quantity: %s\n", pluralCupcakes(o.Quantity))
	fmt.Fprintf(&b, "Flavor: %s\n", flavorLine(o, cat))
	if o.IsBundle {
		fmt.Fprintf(&b, "Includes: %s\n", bundleContents(cat))
	}
	fmt.Fprintf(&b, "Toppings: %s\n", toppingsLine(o, cat))
	fmt.Fprintf(&b, "Total: %s", o.TotalPrice)

	return b.String()
}

func pluralCupcakes(quantity int) string {
	if quantity == 1 {
		return "1 cupcake"
	}
	return fmt.Sprintf("%d cupcakes", quantity)
}

func flavorLine(o Order, cat *catalog.Catalog) string {
	if !o.HasFlavor() {
		return "not selected"
	}
	if item, err := cat.Flavor(o.FlavorID); err == nil {
		return item.DisplayName
	}
	return o.FlavorID
}

// bundleContents lists every real flavor, skipping the bundle pseudo-item.
func bundleContents(cat *catalog.Catalog) string {
	var names []string
	for _, item := range cat.Flavors() {
		if item.ID == catalog.BundleFlavorID {
			continue
		}
		names = append(names, item.DisplayName)
	}
	return strings.Join(names, ", ")
}

func toppingsLine(o Order, cat *catalog.Catalog) string {
	if len(o.SelectedToppingIDs) == 0 {
		return "none"
	}
	names := make([]string, 0, len(o.SelectedToppingIDs))
	for _, id := range o.SelectedToppingIDs {
		if item, err := cat.Topping(id); err == nil {
			names = append(names, item.DisplayName)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
