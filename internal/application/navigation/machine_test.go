package navigation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weihanlim/cupcake-go/internal/application/navigation"
)

func TestMachine_HappyPathForward(t *testing.T) {
	m := navigation.NewMachine(nil)
	assert.Equal(t, navigation.ScreenWelcome, m.Current())
	assert.False(t, m.CanNavigateBack())

	require.NoError(t, m.StartOrder())
	assert.Equal(t, navigation.ScreenChooseQuantity, m.Current())
	assert.True(t, m.CanNavigateBack())

	require.NoError(t, m.Next())
	assert.Equal(t, navigation.ScreenChooseFlavor, m.Current())

	require.NoError(t, m.Next())
	assert.Equal(t, navigation.ScreenChooseToppings, m.Current())

	require.NoError(t, m.Next())
	assert.Equal(t, navigation.ScreenSummary, m.Current())
}

func TestMachine_QuantityZeroMayAdvance(t *testing.T) {
	// The reference UI never gated the quantity step, so quantity 0 can
	// proceed to the flavor screen. Preserved, not fixed.
	m := navigation.NewMachine(nil)
	require.NoError(t, m.StartOrder())
	require.NoError(t, m.Next())
	assert.Equal(t, navigation.ScreenChooseFlavor, m.Current())
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m := navigation.NewMachine(nil)

	var transition *navigation.TransitionError

	err := m.Next()
	require.True(t, errors.As(err, &transition))
	assert.Equal(t, navigation.ScreenWelcome, transition.From)
	assert.Equal(t, navigation.ScreenWelcome, m.Current())

	err = m.Cancel()
	require.True(t, errors.As(err, &transition), "cancel is invalid on welcome")

	require.NoError(t, m.StartOrder())
	err = m.StartOrder()
	require.True(t, errors.As(err, &transition), "start is invalid once started")

	err = m.Cancel()
	require.True(t, errors.As(err, &transition), "cancel is invalid on the quantity step")

	// Drive to summary; advancing further is invalid.
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	err = m.Next()
	require.True(t, errors.As(err, &transition))
	assert.Equal(t, navigation.ScreenSummary, m.Current())
}

func TestMachine_NavigateUpWalksBackStack(t *testing.T) {
	m := navigation.NewMachine(nil)
	require.NoError(t, m.StartOrder())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())

	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenChooseToppings, m.Current())

	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenChooseFlavor, m.Current())

	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenChooseQuantity, m.Current())

	// Welcome is never stored on the stack; up from the quantity step
	// still lands there.
	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenWelcome, m.Current())

	assert.False(t, m.NavigateUp(), "no-op at welcome with an empty stack")
	assert.Equal(t, navigation.ScreenWelcome, m.Current())
}

func TestMachine_BackStackHasNoConsecutiveDuplicates(t *testing.T) {
	m := navigation.NewMachine(nil)
	require.NoError(t, m.StartOrder())
	require.NoError(t, m.Next())

	// Bounce between flavor and toppings a few times.
	require.NoError(t, m.Next())
	assert.True(t, m.NavigateUp())
	require.NoError(t, m.Next())
	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenChooseFlavor, m.Current())

	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenChooseQuantity, m.Current(),
		"repeated visits must not stack up duplicate entries")
}

func TestMachine_CancelPopsToQuantityAndResets(t *testing.T) {
	resets := 0
	m := navigation.NewMachine(func() { resets++ })

	require.NoError(t, m.StartOrder())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.Equal(t, navigation.ScreenSummary, m.Current())

	require.NoError(t, m.Cancel())
	assert.Equal(t, navigation.ScreenChooseQuantity, m.Current())
	assert.Equal(t, 1, resets)

	// The stack was cleared: up from here goes to welcome.
	assert.True(t, m.NavigateUp())
	assert.Equal(t, navigation.ScreenWelcome, m.Current())
	assert.False(t, m.NavigateUp())
}

func TestMachine_CancelFromEachAllowedScreen(t *testing.T) {
	for _, steps := range []int{1, 2, 3} { // flavor, toppings, summary
		m := navigation.NewMachine(nil)
		require.NoError(t, m.StartOrder())
		for i := 0; i < steps; i++ {
			require.NoError(t, m.Next())
		}
		require.NoError(t, m.Cancel())
		assert.Equal(t, navigation.ScreenChooseQuantity, m.Current())
	}
}
