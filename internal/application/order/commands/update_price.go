package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// UpdatePricePerCupcakeCommand pushes a unit price into the order.
// Kept for parity with the reference's two-step flavor/price protocol;
// SelectFlavorCommand already adopts the catalog price on its own.
type UpdatePricePerCupcakeCommand struct {
	Price decimal.Decimal
}

type UpdatePricePerCupcakeResponse struct {
	Order domain.Order
}

type UpdatePricePerCupcakeHandler struct {
	controller *apporder.Controller
}

func NewUpdatePricePerCupcakeHandler(controller *apporder.Controller) *UpdatePricePerCupcakeHandler {
	return &UpdatePricePerCupcakeHandler{controller: controller}
}

func (h *UpdatePricePerCupcakeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdatePricePerCupcakeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.controller.UpdatePricePerCupcake(cmd.Price); err != nil {
		return nil, err
	}
	return &UpdatePricePerCupcakeResponse{Order: h.controller.Snapshot()}, nil
}
