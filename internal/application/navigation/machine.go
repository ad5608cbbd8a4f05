package navigation

import "sync"

// forwardTransitions is the Next edge of the wizard. ChooseQuantity has
// no quantity > 0 gate here; the reference allowed advancing with
// quantity 0 and that behavior is preserved. Flavor gating on the flavor
// screen is a collaborator concern, also matching the reference.
var forwardTransitions = map[Screen]Screen{
	ScreenChooseQuantity: ScreenChooseFlavor,
	ScreenChooseFlavor:   ScreenChooseToppings,
	ScreenChooseToppings: ScreenSummary,
}

// cancelable lists the screens from which the cancel intent is valid.
var cancelable = map[Screen]struct{}{
	ScreenChooseFlavor:   {},
	ScreenChooseToppings: {},
	ScreenSummary:        {},
}

// Machine is the screen-sequencing state machine: the current screen plus
// a back-stack of previously visited screens. ScreenWelcome is never
// stored on the stack and the stack never holds consecutive duplicates.
//
// A cancel hook (typically Controller.Reset) runs whenever an order is
// cancelled, after the machine has returned to ScreenChooseQuantity.
type Machine struct {
	mu       sync.Mutex
	current  Screen
	back     []Screen
	onCancel func()
}

// NewMachine creates a machine on the welcome screen.
func NewMachine(onCancel func()) *Machine {
	return &Machine{
		current:  ScreenWelcome,
		onCancel: onCancel,
	}
}

// Current returns the active screen.
func (m *Machine) Current() Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// CanNavigateBack reports whether the back intent would move somewhere.
func (m *Machine) CanNavigateBack() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != ScreenWelcome
}

// StartOrder moves from the welcome screen into the quantity step.
func (m *Machine) StartOrder() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != ScreenWelcome {
		return NewTransitionError(m.current, "start an order")
	}
	m.navigateTo(ScreenChooseQuantity)
	return nil
}

// Next advances to the following wizard step.
func (m *Machine) Next() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	to, ok := forwardTransitions[m.current]
	if !ok {
		return NewTransitionError(m.current, "advance")
	}
	m.navigateTo(to)
	return nil
}

// Cancel abandons the order: the machine pops back to the quantity step
// and the cancel hook resets the order state. Valid from the flavor,
// toppings and summary screens.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	if _, ok := cancelable[m.current]; !ok {
		m.mu.Unlock()
		return NewTransitionError(m.current, "cancel")
	}

	m.current = ScreenChooseQuantity
	m.back = m.back[:0]
	m.mu.Unlock()

	if m.onCancel != nil {
		m.onCancel()
	}
	return nil
}

// NavigateUp pops one screen off the back-stack; from the quantity step
// it returns to the welcome screen. It reports whether navigation
// happened: at the welcome screen with an empty stack it is a no-op.
func (m *Machine) NavigateUp() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := len(m.back); n > 0 {
		m.current = m.back[n-1]
		m.back = m.back[:n-1]
		return true
	}
	if m.current != ScreenWelcome {
		m.current = ScreenWelcome
		return true
	}
	return false
}

// navigateTo pushes the current screen and activates to. Re-navigating
// to the active screen is a no-op; Welcome is never stored on the stack.
// Callers hold m.mu.
func (m *Machine) navigateTo(to Screen) {
	if to == m.current {
		return
	}
	if m.current != ScreenWelcome {
		if n := len(m.back); n == 0 || m.back[n-1] != m.current {
			m.back = append(m.back, m.current)
		}
	}
	m.current = to
}
