package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// SetQuantityCommand sets the number of cupcakes for the order.
type SetQuantityCommand struct {
	Quantity int
}

// SetQuantityResponse carries the snapshot published by the intent.
type SetQuantityResponse struct {
	Order domain.Order
}

// SetQuantityHandler applies the set-quantity intent to the controller.
type SetQuantityHandler struct {
	controller *apporder.Controller
}

func NewSetQuantityHandler(controller *apporder.Controller) *SetQuantityHandler {
	return &SetQuantityHandler{controller: controller}
}

func (h *SetQuantityHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetQuantityCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("debug", "setting quantity", map[string]interface{}{"quantity": cmd.Quantity})

	if err := h.controller.SetQuantity(cmd.Quantity); err != nil {
		return nil, err
	}
	return &SetQuantityResponse{Order: h.controller.Snapshot()}, nil
}
