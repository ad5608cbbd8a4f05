package config

// Reference data from the original bakery menu. Any value left unset in
// the config file or environment falls back to these.

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	if cfg.Currency.Prefix == "" {
		cfg.Currency.Prefix = "RM"
	}
	if cfg.Pricing.DefaultPricePerCupcake == 0 {
		cfg.Pricing.DefaultPricePerCupcake = 2.00
	}
	if cfg.Pricing.BundlePrice == 0 {
		cfg.Pricing.BundlePrice = 20.00
	}

	if len(cfg.Catalog.Flavors) == 0 {
		cfg.Catalog.Flavors = []ItemConfig{
			{ID: "vanilla", Name: "Vanilla", Description: "Classic vanilla, smooth and delicate", Price: 15.20},
			{ID: "chocolate", Name: "Chocolate", Description: "Rich chocolate made from quality cocoa", Price: 10.80},
			{ID: "red-velvet", Name: "Red Velvet", Description: "Elegant red velvet with cocoa and cream cheese", Price: 20.60},
			{ID: "salted-caramel", Name: "Salted Caramel", Description: "Sweet caramel with just the right sea salt", Price: 18.90},
			{ID: "coffee", Name: "Coffee", Description: "A coffee-flavored cake for coffee lovers", Price: 24.80},
		}
	}
	if len(cfg.Catalog.Toppings) == 0 {
		cfg.Catalog.Toppings = []ItemConfig{
			{ID: "strawberries", Name: "Strawberries", Description: "Fresh strawberries", Price: 5.00},
			{ID: "blueberries", Name: "Blueberries", Description: "Fresh blueberries", Price: 10.00},
			{ID: "oranges", Name: "Oranges", Description: "Fresh orange slices", Price: 6.00},
		}
	}

	if len(cfg.Wizard.QuantityPresets) == 0 {
		cfg.Wizard.QuantityPresets = []int{1, 6, 12}
	}
}
