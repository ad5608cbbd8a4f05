package navigation

// Screen identifies one step of the order wizard.
type Screen string

const (
	// ScreenWelcome is the landing screen shown before an order starts.
	ScreenWelcome Screen = "WELCOME"

	// ScreenChooseQuantity selects how many cupcakes to order.
	ScreenChooseQuantity Screen = "CHOOSE_QUANTITY"

	// ScreenChooseFlavor selects the flavor or the all-flavors bundle.
	ScreenChooseFlavor Screen = "CHOOSE_FLAVOR"

	// ScreenChooseToppings selects any number of toppings.
	ScreenChooseToppings Screen = "CHOOSE_TOPPINGS"

	// ScreenSummary reviews the order before the send stub.
	ScreenSummary Screen = "SUMMARY"
)

func (s Screen) String() string {
	return string(s)
}
