package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
)

// NavigateUpCommand is the back button: it pops one screen off the
// back-stack and is a no-op on the welcome screen.
type NavigateUpCommand struct{}

type NavigateUpResponse struct {
	Screen    navigation.Screen
	Navigated bool
}

type NavigateUpHandler struct {
	machine *navigation.Machine
}

func NewNavigateUpHandler(machine *navigation.Machine) *NavigateUpHandler {
	return &NavigateUpHandler{machine: machine}
}

func (h *NavigateUpHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*NavigateUpCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	navigated := h.machine.NavigateUp()
	return &NavigateUpResponse{Screen: h.machine.Current(), Navigated: navigated}, nil
}
