package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// SetSelectedToppingsCommand replaces the topping selection wholesale.
type SetSelectedToppingsCommand struct {
	ToppingIDs []string
}

type SetSelectedToppingsResponse struct {
	Order domain.Order
}

type SetSelectedToppingsHandler struct {
	controller *apporder.Controller
}

func NewSetSelectedToppingsHandler(controller *apporder.Controller) *SetSelectedToppingsHandler {
	return &SetSelectedToppingsHandler{controller: controller}
}

func (h *SetSelectedToppingsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetSelectedToppingsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.controller.SetSelectedToppings(cmd.ToppingIDs); err != nil {
		return nil, err
	}
	return &SetSelectedToppingsResponse{Order: h.controller.Snapshot()}, nil
}
