package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog listing command
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List flavors and toppings with prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(configPath, verbose)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			prefix := app.Config.Currency.Prefix

			fmt.Fprintln(out, "Flavors:")
			for _, item := range app.Catalog.Flavors() {
				fmt.Fprintf(out, "  %-16s %-20s %s%s  %s\n",
					item.ID, item.DisplayName, prefix, item.UnitPrice.StringFixed(2), item.Description)
			}

			fmt.Fprintln(out, "Toppings:")
			for _, item := range app.Catalog.Toppings() {
				fmt.Fprintf(out, "  %-16s %-20s %s%s  %s\n",
					item.ID, item.DisplayName, prefix, item.UnitPrice.StringFixed(2), item.Description)
			}
			return nil
		},
	}
}
