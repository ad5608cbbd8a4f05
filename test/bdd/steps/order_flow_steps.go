package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	navcommands "github.com/weihanlim/cupcake-go/internal/application/navigation/commands"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	ordercommands "github.com/weihanlim/cupcake-go/internal/application/order/commands"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
	"github.com/weihanlim/cupcake-go/internal/infrastructure/config"
	"github.com/weihanlim/cupcake-go/internal/domain/pricing"
)

type orderFlowContext struct {
	mediator   common.Mediator
	controller *apporder.Controller
	machine    *navigation.Machine
	lastErr    error
}

func (ofc *orderFlowContext) reset() error {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	cat, err := config.BuildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	engine := pricing.NewEngine(
		decimal.NewFromFloat(cfg.Pricing.BundlePrice),
		cfg.Currency.Prefix,
		cat.ToppingUnitPrice,
	)
	ofc.controller = apporder.NewController(cat, engine, decimal.NewFromFloat(cfg.Pricing.DefaultPricePerCupcake))
	ofc.machine = navigation.NewMachine(ofc.controller.Reset)
	ofc.lastErr = nil

	m := common.NewMediator()
	register := func(err error) {
		if err != nil && ofc.lastErr == nil {
			ofc.lastErr = err
		}
	}
	register(common.RegisterHandler[*ordercommands.SetQuantityCommand](m, ordercommands.NewSetQuantityHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.SelectFlavorCommand](m, ordercommands.NewSelectFlavorHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.UpdatePricePerCupcakeCommand](m, ordercommands.NewUpdatePricePerCupcakeHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.SetSelectedToppingsCommand](m, ordercommands.NewSetSelectedToppingsHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.ToggleRoundPriceCommand](m, ordercommands.NewToggleRoundPriceHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.ResetOrderCommand](m, ordercommands.NewResetOrderHandler(ofc.controller)))
	register(common.RegisterHandler[*ordercommands.SubmitOrderCommand](m, ordercommands.NewSubmitOrderHandler(ofc.controller)))
	register(common.RegisterHandler[*navcommands.StartOrderCommand](m, navcommands.NewStartOrderHandler(ofc.machine)))
	register(common.RegisterHandler[*navcommands.NextScreenCommand](m, navcommands.NewNextScreenHandler(ofc.machine)))
	register(common.RegisterHandler[*navcommands.NavigateUpCommand](m, navcommands.NewNavigateUpHandler(ofc.machine)))
	register(common.RegisterHandler[*navcommands.CancelOrderCommand](m, navcommands.NewCancelOrderHandler(ofc.machine)))
	ofc.mediator = m

	return ofc.lastErr
}

func (ofc *orderFlowContext) send(cmd common.Request) error {
	_, err := ofc.mediator.Send(context.Background(), cmd)
	ofc.lastErr = err
	return nil
}

// Given steps

func (ofc *orderFlowContext) aFreshOrderSession() error {
	return ofc.reset()
}

// When steps

func (ofc *orderFlowContext) iStartANewOrder() error {
	return ofc.send(&navcommands.StartOrderCommand{})
}

func (ofc *orderFlowContext) iSetTheQuantityTo(quantity int) error {
	return ofc.send(&ordercommands.SetQuantityCommand{Quantity: quantity})
}

func (ofc *orderFlowContext) iChooseTheFlavor(flavorID string) error {
	return ofc.send(&ordercommands.SelectFlavorCommand{FlavorID: flavorID})
}

func (ofc *orderFlowContext) iSetThePricePerCupcakeTo(price string) error {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("bad price %q: %w", price, err)
	}
	return ofc.send(&ordercommands.UpdatePricePerCupcakeCommand{Price: d})
}

func (ofc *orderFlowContext) iSelectTheTopping(toppingID string) error {
	return ofc.send(&ordercommands.SetSelectedToppingsCommand{ToppingIDs: []string{toppingID}})
}

func (ofc *orderFlowContext) iToggleRoundedTotals() error {
	return ofc.send(&ordercommands.ToggleRoundPriceCommand{})
}

func (ofc *orderFlowContext) iAdvanceToTheNextScreen() error {
	return ofc.send(&navcommands.NextScreenCommand{})
}

func (ofc *orderFlowContext) iCancelTheOrder() error {
	return ofc.send(&navcommands.CancelOrderCommand{})
}

// Then steps

func (ofc *orderFlowContext) theOperationShouldSucceed() error {
	if ofc.lastErr != nil {
		return fmt.Errorf("expected success, got error: %v", ofc.lastErr)
	}
	return nil
}

func (ofc *orderFlowContext) theOperationShouldFail() error {
	if ofc.lastErr == nil {
		return fmt.Errorf("expected an error, but the operation succeeded")
	}
	return nil
}

func (ofc *orderFlowContext) theCakePriceShouldBe(expected string) error {
	if got := ofc.controller.Snapshot().CakePrice; got != expected {
		return fmt.Errorf("expected cake price %s, got %s", expected, got)
	}
	return nil
}

func (ofc *orderFlowContext) theToppingsPriceShouldBe(expected string) error {
	if got := ofc.controller.Snapshot().ToppingsPrice; got != expected {
		return fmt.Errorf("expected toppings price %s, got %s", expected, got)
	}
	return nil
}

func (ofc *orderFlowContext) theTotalPriceShouldBe(expected string) error {
	if got := ofc.controller.Snapshot().TotalPrice; got != expected {
		return fmt.Errorf("expected total price %s, got %s", expected, got)
	}
	return nil
}

func (ofc *orderFlowContext) theCurrentScreenShouldBe(expected string) error {
	if got := string(ofc.machine.Current()); got != expected {
		return fmt.Errorf("expected screen %s, got %s", expected, got)
	}
	return nil
}

func (ofc *orderFlowContext) theOrderShouldBeBackToItsDefaults() error {
	snap := ofc.controller.Snapshot()
	if snap.Quantity != 0 {
		return fmt.Errorf("expected quantity 0, got %d", snap.Quantity)
	}
	if snap.HasFlavor() {
		return fmt.Errorf("expected no flavor, got %s", snap.FlavorID)
	}
	if len(snap.SelectedToppingIDs) != 0 {
		return fmt.Errorf("expected no toppings, got %v", snap.SelectedToppingIDs)
	}
	if snap.IsRounded {
		return fmt.Errorf("expected rounding to be off")
	}
	if snap.TotalPrice != "RM0.00" {
		return fmt.Errorf("expected total RM0.00, got %s", snap.TotalPrice)
	}
	return nil
}

func InitializeOrderFlowScenario(ctx *godog.ScenarioContext) {
	ofc := &orderFlowContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		return c, ofc.reset()
	})

	ctx.Step(`^a fresh order session$`, ofc.aFreshOrderSession)
	ctx.Step(`^I start a new order$`, ofc.iStartANewOrder)
	ctx.Step(`^I set the quantity to (\d+)$`, ofc.iSetTheQuantityTo)
	ctx.Step(`^I choose the "([^"]*)" flavor$`, ofc.iChooseTheFlavor)
	ctx.Step(`^I set the price per cupcake to "([^"]*)"$`, ofc.iSetThePricePerCupcakeTo)
	ctx.Step(`^I select the "([^"]*)" topping$`, ofc.iSelectTheTopping)
	ctx.Step(`^I toggle rounded totals$`, ofc.iToggleRoundedTotals)
	ctx.Step(`^I advance to the next screen$`, ofc.iAdvanceToTheNextScreen)
	ctx.Step(`^I cancel the order$`, ofc.iCancelTheOrder)
	ctx.Step(`^the operation should succeed$`, ofc.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail$`, ofc.theOperationShouldFail)
	ctx.Step(`^the cake price should be "([^"]*)"$`, ofc.theCakePriceShouldBe)
	ctx.Step(`^the toppings price should be "([^"]*)"$`, ofc.theToppingsPriceShouldBe)
	ctx.Step(`^the total price should be "([^"]*)"$`, ofc.theTotalPriceShouldBe)
	ctx.Step(`^the current screen should be "([^"]*)"$`, ofc.theCurrentScreenShouldBe)
	ctx.Step(`^the order should be back to its defaults$`, ofc.theOrderShouldBeBackToItsDefaults)
}
