package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Currency CurrencyConfig `mapstructure:"currency"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Wizard   WizardConfig   `mapstructure:"wizard"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CurrencyConfig controls how amounts are rendered.
type CurrencyConfig struct {
	Prefix string `mapstructure:"prefix" validate:"required"`
}

// PricingConfig carries the base prices the engine needs.
type PricingConfig struct {
	// DefaultPricePerCupcake applies until a flavor is chosen.
	DefaultPricePerCupcake float64 `mapstructure:"default_price_per_cupcake" validate:"gte=0"`

	// BundlePrice is the flat fee for the all-flavors bundle.
	BundlePrice float64 `mapstructure:"bundle_price" validate:"gte=0"`
}

// ItemConfig describes one flavor or topping.
type ItemConfig struct {
	ID          string  `mapstructure:"id" validate:"required"`
	Name        string  `mapstructure:"name" validate:"required"`
	Description string  `mapstructure:"description"`
	Price       float64 `mapstructure:"price" validate:"gte=0"`
}

// CatalogConfig lists the orderable items.
type CatalogConfig struct {
	Flavors  []ItemConfig `mapstructure:"flavors" validate:"min=1,dive"`
	Toppings []ItemConfig `mapstructure:"toppings" validate:"dive"`
}

// WizardConfig tunes the interactive wizard.
type WizardConfig struct {
	QuantityPresets []int `mapstructure:"quantity_presets" validate:"min=1,dive,gte=1"`
}

// LoggingConfig controls intent logging.
type LoggingConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/cupcake")
	}

	v.SetEnvPrefix("CUPCAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is fine; env vars and defaults still apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
