package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is an immutable catalog entry: a flavor or a topping.
// Items are loaded once at startup and never mutated afterwards.
type Item struct {
	ID          string
	DisplayName string
	Description string
	UnitPrice   decimal.Decimal
}

func (i Item) String() string {
	return fmt.Sprintf("%s (%s)", i.DisplayName, i.ID)
}
