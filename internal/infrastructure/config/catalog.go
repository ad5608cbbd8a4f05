package config

import (
	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
)

// BuildCatalog converts the configuration into the domain catalog. The
// all-flavors bundle pseudo-item is synthesized first in the flavor list
// with the configured flat price.
func BuildCatalog(cfg *Config) (*catalog.Catalog, error) {
	flavors := make([]catalog.Item, 0, len(cfg.Catalog.Flavors)+1)
	flavors = append(flavors, catalog.Item{
		ID:          catalog.BundleFlavorID,
		DisplayName: "All-Flavors Bundle",
		Description: "One of every flavor at a flat price",
		UnitPrice:   decimal.NewFromFloat(cfg.Pricing.BundlePrice),
	})
	for _, item := range cfg.Catalog.Flavors {
		flavors = append(flavors, toItem(item))
	}

	toppings := make([]catalog.Item, 0, len(cfg.Catalog.Toppings))
	for _, item := range cfg.Catalog.Toppings {
		toppings = append(toppings, toItem(item))
	}

	return catalog.New(flavors, toppings)
}

func toItem(item ItemConfig) catalog.Item {
	return catalog.Item{
		ID:          item.ID,
		DisplayName: item.Name,
		Description: item.Description,
		UnitPrice:   decimal.NewFromFloat(item.Price),
	}
}
