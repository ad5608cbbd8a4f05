package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cupcake-wizard",
		Short: "Cupcake wizard - place a bakery cupcake order step by step",
		Long: `Cupcake wizard walks through a cupcake order:
quantity, flavor, toppings, then a summary with a share-ready receipt.

Examples:
  cupcake-wizard order
  cupcake-wizard catalog
  cupcake-wizard config show
  cupcake-wizard order --config ./config.yaml --verbose`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/cupcake)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every intent as it is handled")

	rootCmd.AddCommand(NewOrderCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
