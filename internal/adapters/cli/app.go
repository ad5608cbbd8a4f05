package cli

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	navcmd "github.com/weihanlim/cupcake-go/internal/application/navigation/commands"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	ordercmd "github.com/weihanlim/cupcake-go/internal/application/order/commands"
	orderquery "github.com/weihanlim/cupcake-go/internal/application/order/queries"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
	"github.com/weihanlim/cupcake-go/internal/domain/catalog"
	"github.com/weihanlim/cupcake-go/internal/domain/pricing"
	"github.com/weihanlim/cupcake-go/internal/infrastructure/config"
)

// App is the wired application: catalog, pricing engine, controller,
// navigation machine and the mediator all intents go through. The CLI
// is only a rendering collaborator; it reads snapshots and sends
// intents, never touching state directly.
type App struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Controller *apporder.Controller
	Machine    *navigation.Machine
	Mediator   common.Mediator

	logger common.IntentLogger
}

// buildApp is the composition root.
func buildApp(configPath string, verbose bool) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	cat, err := config.BuildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	engine := pricing.NewEngine(
		decimal.NewFromFloat(cfg.Pricing.BundlePrice),
		cfg.Currency.Prefix,
		cat.ToppingUnitPrice,
	)
	controller := apporder.NewController(cat, engine, decimal.NewFromFloat(cfg.Pricing.DefaultPricePerCupcake))
	machine := navigation.NewMachine(controller.Reset)

	m := common.NewMediator()
	if err := registerHandlers(m, controller, machine); err != nil {
		return nil, err
	}

	app := &App{
		Config:     cfg,
		Catalog:    cat,
		Controller: controller,
		Machine:    machine,
		Mediator:   m,
	}
	if verbose || cfg.Logging.Verbose {
		app.logger = common.NewStdLogger()
	}
	return app, nil
}

func registerHandlers(m common.Mediator, controller *apporder.Controller, machine *navigation.Machine) error {
	registrations := []func() error{
		func() error {
			return common.RegisterHandler[*ordercmd.SetQuantityCommand](m, ordercmd.NewSetQuantityHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.SelectFlavorCommand](m, ordercmd.NewSelectFlavorHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.UpdatePricePerCupcakeCommand](m, ordercmd.NewUpdatePricePerCupcakeHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.SetSelectedToppingsCommand](m, ordercmd.NewSetSelectedToppingsHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.ToggleRoundPriceCommand](m, ordercmd.NewToggleRoundPriceHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.ResetOrderCommand](m, ordercmd.NewResetOrderHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*ordercmd.SubmitOrderCommand](m, ordercmd.NewSubmitOrderHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*orderquery.GetOrderQuery](m, orderquery.NewGetOrderHandler(controller))
		},
		func() error {
			return common.RegisterHandler[*navcmd.StartOrderCommand](m, navcmd.NewStartOrderHandler(machine))
		},
		func() error {
			return common.RegisterHandler[*navcmd.NextScreenCommand](m, navcmd.NewNextScreenHandler(machine))
		},
		func() error {
			return common.RegisterHandler[*navcmd.NavigateUpCommand](m, navcmd.NewNavigateUpHandler(machine))
		},
		func() error {
			return common.RegisterHandler[*navcmd.CancelOrderCommand](m, navcmd.NewCancelOrderHandler(machine))
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

// Context returns the dispatch context, carrying the intent logger when
// verbose mode is on.
func (a *App) Context() context.Context {
	ctx := context.Background()
	if a.logger != nil {
		ctx = common.WithLogger(ctx, a.logger)
	}
	return ctx
}
