package commands_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	"github.com/weihanlim/cupcake-go/internal/application/order/commands"
	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
	"github.com/weihanlim/cupcake-go/internal/domain/pricing"
)

func newDispatcher(t *testing.T) (common.Mediator, *apporder.Controller) {
	t.Helper()

	cat, err := catalog.New(
		[]catalog.Item{
			{ID: catalog.BundleFlavorID, DisplayName: "All-Flavors Bundle", UnitPrice: decimal.NewFromFloat(20.00)},
			{ID: "vanilla", DisplayName: "Vanilla", UnitPrice: decimal.NewFromFloat(15.20)},
		},
		[]catalog.Item{
			{ID: "strawberries", DisplayName: "Strawberries", UnitPrice: decimal.NewFromFloat(5.00)},
		},
	)
	require.NoError(t, err)

	engine := pricing.NewEngine(decimal.NewFromFloat(20.00), "RM", cat.ToppingUnitPrice)
	controller := apporder.NewController(cat, engine, decimal.NewFromFloat(2.00))

	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*commands.SetQuantityCommand](m, commands.NewSetQuantityHandler(controller)))
	require.NoError(t, common.RegisterHandler[*commands.SelectFlavorCommand](m, commands.NewSelectFlavorHandler(controller)))
	require.NoError(t, common.RegisterHandler[*commands.SetSelectedToppingsCommand](m, commands.NewSetSelectedToppingsHandler(controller)))
	require.NoError(t, common.RegisterHandler[*commands.ToggleRoundPriceCommand](m, commands.NewToggleRoundPriceHandler(controller)))
	require.NoError(t, common.RegisterHandler[*commands.ResetOrderCommand](m, commands.NewResetOrderHandler(controller)))
	require.NoError(t, common.RegisterHandler[*commands.SubmitOrderCommand](m, commands.NewSubmitOrderHandler(controller)))

	return m, controller
}

func TestDispatch_SetQuantityReturnsFreshSnapshot(t *testing.T) {
	m, _ := newDispatcher(t)

	resp, err := m.Send(context.Background(), &commands.SetQuantityCommand{Quantity: 6})
	require.NoError(t, err)

	snap := resp.(*commands.SetQuantityResponse).Order
	assert.Equal(t, 6, snap.Quantity)
	assert.Equal(t, "RM12.00", snap.TotalPrice)
}

func TestDispatch_RejectedIntentSurfacesError(t *testing.T) {
	m, controller := newDispatcher(t)
	before := controller.Snapshot()

	_, err := m.Send(context.Background(), &commands.SetQuantityCommand{Quantity: -2})
	require.Error(t, err)
	assert.True(t, before.SameSelections(controller.Snapshot()))
}

func TestDispatch_FullOrderThroughMediator(t *testing.T) {
	m, controller := newDispatcher(t)
	ctx := context.Background()

	_, err := m.Send(ctx, &commands.SetQuantityCommand{Quantity: 6})
	require.NoError(t, err)
	_, err = m.Send(ctx, &commands.SelectFlavorCommand{FlavorID: catalog.BundleFlavorID})
	require.NoError(t, err)
	_, err = m.Send(ctx, &commands.SetSelectedToppingsCommand{ToppingIDs: []string{"strawberries"}})
	require.NoError(t, err)

	resp, err := m.Send(ctx, &commands.SubmitOrderCommand{})
	require.NoError(t, err)

	confirmation := resp.(*commands.SubmitOrderResponse).Confirmation
	assert.Equal(t, controller.Snapshot().ID.String(), confirmation.OrderID)
	assert.Contains(t, confirmation.Summary, "Total: RM25.00")

	_, err = m.Send(ctx, &commands.ResetOrderCommand{})
	require.NoError(t, err)
	assert.Equal(t, 0, controller.Snapshot().Quantity)
}

func TestDispatch_UnregisteredCommandFails(t *testing.T) {
	m, _ := newDispatcher(t)

	type strayCommand struct{}
	_, err := m.Send(context.Background(), &strayCommand{})
	assert.Error(t, err)
}
