package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
)

// StartOrderCommand moves from the welcome screen into the wizard.
type StartOrderCommand struct{}

type StartOrderResponse struct {
	Screen navigation.Screen
}

type StartOrderHandler struct {
	machine *navigation.Machine
}

func NewStartOrderHandler(machine *navigation.Machine) *StartOrderHandler {
	return &StartOrderHandler{machine: machine}
}

func (h *StartOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*StartOrderCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.machine.StartOrder(); err != nil {
		return nil, err
	}
	return &StartOrderResponse{Screen: h.machine.Current()}, nil
}
