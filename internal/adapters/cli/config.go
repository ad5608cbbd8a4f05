package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weihanlim/cupcake-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config inspection command
func NewConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after defaults and overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "currency.prefix: %s\n", cfg.Currency.Prefix)
			fmt.Fprintf(out, "pricing.default_price_per_cupcake: %.2f\n", cfg.Pricing.DefaultPricePerCupcake)
			fmt.Fprintf(out, "pricing.bundle_price: %.2f\n", cfg.Pricing.BundlePrice)
			fmt.Fprintf(out, "wizard.quantity_presets: %v\n", cfg.Wizard.QuantityPresets)
			fmt.Fprintf(out, "logging.verbose: %v\n", cfg.Logging.Verbose)

			fmt.Fprintf(out, "catalog.flavors (%d):\n", len(cfg.Catalog.Flavors))
			for _, item := range cfg.Catalog.Flavors {
				fmt.Fprintf(out, "  %s: %s (%.2f)\n", item.ID, item.Name, item.Price)
			}
			fmt.Fprintf(out, "catalog.toppings (%d):\n", len(cfg.Catalog.Toppings))
			for _, item := range cfg.Catalog.Toppings {
				fmt.Fprintf(out, "  %s: %s (%.2f)\n", item.ID, item.Name, item.Price)
			}
			return nil
		},
	})

	return configCmd
}
