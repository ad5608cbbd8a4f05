package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	"github.com/weihanlim/cupcake-go/internal/application/navigation"
)

// NextScreenCommand advances the wizard one step forward.
type NextScreenCommand struct{}

type NextScreenResponse struct {
	Screen navigation.Screen
}

type NextScreenHandler struct {
	machine *navigation.Machine
}

func NewNextScreenHandler(machine *navigation.Machine) *NextScreenHandler {
	return &NextScreenHandler{machine: machine}
}

func (h *NextScreenHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*NextScreenCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.machine.Next(); err != nil {
		return nil, err
	}
	return &NextScreenResponse{Screen: h.machine.Current()}, nil
}
