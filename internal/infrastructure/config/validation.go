package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration, including the
// cross-item rules the struct tags cannot express.
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	if err := v.Validate(cfg); err != nil {
		return err
	}

	if err := uniqueIDs(cfg.Catalog.Flavors, "flavor"); err != nil {
		return err
	}
	return uniqueIDs(cfg.Catalog.Toppings, "topping")
}

func uniqueIDs(items []ItemConfig, kind string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
