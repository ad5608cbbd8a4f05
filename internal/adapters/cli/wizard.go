package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weihanlim/cupcake-go/internal/application/navigation"
	navcmd "github.com/weihanlim/cupcake-go/internal/application/navigation/commands"
	ordercmd "github.com/weihanlim/cupcake-go/internal/application/order/commands"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// NewOrderCommand creates the interactive wizard command
func NewOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Walk through a cupcake order interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(configPath, verbose)
			if err != nil {
				return err
			}
			return runWizard(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// wizard drives one interactive session. It renders whatever screen the
// navigation machine reports, from whatever snapshot the store last
// published, and turns keystrokes into intents.
type wizard struct {
	app     *App
	ctx     context.Context
	out     io.Writer
	scanner *bufio.Scanner

	snapshots <-chan domain.Order
	snap      domain.Order
}

func runWizard(app *App, in io.Reader, out io.Writer) error {
	snapshots, stop := app.Controller.Store().Subscribe()
	defer stop()

	w := &wizard{
		app:       app,
		ctx:       app.Context(),
		out:       out,
		scanner:   bufio.NewScanner(in),
		snapshots: snapshots,
	}
	w.snap = <-snapshots

	for {
		w.refresh()

		var done bool
		var err error
		switch app.Machine.Current() {
		case navigation.ScreenWelcome:
			done, err = w.welcomeScreen()
		case navigation.ScreenChooseQuantity:
			done, err = w.quantityScreen()
		case navigation.ScreenChooseFlavor:
			done, err = w.flavorScreen()
		case navigation.ScreenChooseToppings:
			done, err = w.toppingsScreen()
		case navigation.ScreenSummary:
			done, err = w.summaryScreen()
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// refresh drains the snapshot stream so rendering always uses the most
// recently published state.
func (w *wizard) refresh() {
	for {
		select {
		case snap, ok := <-w.snapshots:
			if !ok {
				return
			}
			w.snap = snap
		default:
			return
		}
	}
}

func (w *wizard) readLine() (string, bool) {
	if !w.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(w.scanner.Text()), true
}

func (w *wizard) send(request interface{}) error {
	_, err := w.app.Mediator.Send(w.ctx, request)
	return err
}

// sendOrWarn dispatches an intent and prints rejections instead of
// aborting the session; a rejected intent leaves state unchanged.
func (w *wizard) sendOrWarn(request interface{}) {
	if err := w.send(request); err != nil {
		fmt.Fprintf(w.out, "  ! %v\n", err)
	}
}

func (w *wizard) welcomeScreen() (bool, error) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "=== Cupcake Shop ===")
	fmt.Fprintln(w.out, "Press Enter to start an order, or q to quit.")

	line, ok := w.readLine()
	if !ok || line == "q" {
		return true, nil
	}
	w.sendOrWarn(&navcmd.StartOrderCommand{})
	return false, nil
}

func (w *wizard) quantityScreen() (bool, error) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "--- Quantity ---")
	fmt.Fprintf(w.out, "How many cupcakes? (presets: %s)\n", joinInts(w.app.Config.Wizard.QuantityPresets))
	fmt.Fprintln(w.out, "Enter a number, b for back, q to quit.")

	line, ok := w.readLine()
	if !ok || line == "q" {
		return true, nil
	}
	if line == "b" {
		w.sendOrWarn(&navcmd.NavigateUpCommand{})
		return false, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(w.out, "  ! please enter a whole number")
		return false, nil
	}
	if err := w.send(&ordercmd.SetQuantityCommand{Quantity: n}); err != nil {
		fmt.Fprintf(w.out, "  ! %v\n", err)
		return false, nil
	}
	w.sendOrWarn(&navcmd.NextScreenCommand{})
	return false, nil
}

func (w *wizard) flavorScreen() (bool, error) {
	flavors := w.app.Catalog.Flavors()

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "--- Flavor ---")
	for i, item := range flavors {
		marker := " "
		if w.snap.FlavorID == item.ID {
			marker = "*"
		}
		fmt.Fprintf(w.out, "%s %2d. %-20s %s%s  %s\n",
			marker, i+1, item.DisplayName,
			w.app.Config.Currency.Prefix, item.UnitPrice.StringFixed(2),
			item.Description)
	}
	fmt.Fprintf(w.out, "Subtotal: %s\n", w.snap.TotalPrice)
	fmt.Fprintln(w.out, "Pick a number, n for next, b for back, c to cancel, q to quit.")

	line, ok := w.readLine()
	if !ok || line == "q" {
		return true, nil
	}
	switch line {
	case "n":
		// The machine does not gate on flavor; that check is ours.
		if !w.snap.HasFlavor() {
			fmt.Fprintln(w.out, "  ! pick a flavor first")
			return false, nil
		}
		w.sendOrWarn(&navcmd.NextScreenCommand{})
	case "b":
		w.sendOrWarn(&navcmd.NavigateUpCommand{})
	case "c":
		w.sendOrWarn(&navcmd.CancelOrderCommand{})
	default:
		i, err := strconv.Atoi(line)
		if err != nil || i < 1 || i > len(flavors) {
			fmt.Fprintln(w.out, "  ! unknown choice")
			return false, nil
		}
		w.sendOrWarn(&ordercmd.SelectFlavorCommand{FlavorID: flavors[i-1].ID})
	}
	return false, nil
}

func (w *wizard) toppingsScreen() (bool, error) {
	toppings := w.app.Catalog.Toppings()

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "--- Toppings ---")
	for i, item := range toppings {
		marker := " "
		if contains(w.snap.SelectedToppingIDs, item.ID) {
			marker = "*"
		}
		fmt.Fprintf(w.out, "%s %2d. %-20s %s%s  %s\n",
			marker, i+1, item.DisplayName,
			w.app.Config.Currency.Prefix, item.UnitPrice.StringFixed(2),
			item.Description)
	}
	fmt.Fprintf(w.out, "Subtotal: %s\n", w.snap.TotalPrice)
	fmt.Fprintln(w.out, "Toggle by number, n for next, b for back, c to cancel, q to quit.")

	line, ok := w.readLine()
	if !ok || line == "q" {
		return true, nil
	}
	switch line {
	case "n":
		w.sendOrWarn(&navcmd.NextScreenCommand{})
	case "b":
		w.sendOrWarn(&navcmd.NavigateUpCommand{})
	case "c":
		w.sendOrWarn(&navcmd.CancelOrderCommand{})
	default:
		i, err := strconv.Atoi(line)
		if err != nil || i < 1 || i > len(toppings) {
			fmt.Fprintln(w.out, "  ! unknown choice")
			return false, nil
		}
		next := toggle(w.snap.SelectedToppingIDs, toppings[i-1].ID)
		w.sendOrWarn(&ordercmd.SetSelectedToppingsCommand{ToppingIDs: next})
	}
	return false, nil
}

func (w *wizard) summaryScreen() (bool, error) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "--- Summary ---")
	fmt.Fprintln(w.out, domain.Summary(w.snap, w.app.Catalog))
	fmt.Fprintf(w.out, "Cake: %s  Toppings: %s\n", w.snap.CakePrice, w.snap.ToppingsPrice)
	fmt.Fprintln(w.out, "s to send, r to toggle rounded total, b for back, c to cancel, q to quit.")

	line, ok := w.readLine()
	if !ok || line == "q" {
		return true, nil
	}
	switch line {
	case "s":
		resp, err := w.app.Mediator.Send(w.ctx, &ordercmd.SubmitOrderCommand{})
		if err != nil {
			fmt.Fprintf(w.out, "  ! %v\n", err)
			return false, nil
		}
		confirmation := resp.(*ordercmd.SubmitOrderResponse).Confirmation
		fmt.Fprintln(w.out)
		fmt.Fprintf(w.out, "Order %s confirmed!\n", confirmation.OrderID)
		fmt.Fprintln(w.out, confirmation.Summary)
		return true, nil
	case "r":
		w.sendOrWarn(&ordercmd.ToggleRoundPriceCommand{})
	case "b":
		w.sendOrWarn(&navcmd.NavigateUpCommand{})
	case "c":
		w.sendOrWarn(&navcmd.CancelOrderCommand{})
	default:
		fmt.Fprintln(w.out, "  ! unknown choice")
	}
	return false, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func contains(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

// toggle adds id if absent, removes it if present, preserving order.
func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, have := range ids {
		if have == id {
			removed = true
			continue
		}
		out = append(out, have)
	}
	if !removed {
		out = append(out, id)
	}
	return out
}
