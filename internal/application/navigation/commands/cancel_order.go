package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
)

// CancelOrderCommand abandons the in-progress order: the wizard returns
// to the quantity step and the order state resets through the machine's
// cancel hook.
type CancelOrderCommand struct{}

type CancelOrderResponse struct {
	Screen navigation.Screen
}

type CancelOrderHandler struct {
	machine *navigation.Machine
}

func NewCancelOrderHandler(machine *navigation.Machine) *CancelOrderHandler {
	return &CancelOrderHandler{machine: machine}
}

func (h *CancelOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CancelOrderCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)

	if err := h.machine.Cancel(); err != nil {
		return nil, err
	}

	logger.Log("info", "order cancelled", nil)
	return &CancelOrderResponse{Screen: h.machine.Current()}, nil
}
