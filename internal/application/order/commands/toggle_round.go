package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// ToggleRoundPriceCommand flips the rounded-total display preference.
type ToggleRoundPriceCommand struct{}

type ToggleRoundPriceResponse struct {
	Order domain.Order
}

type ToggleRoundPriceHandler struct {
	controller *apporder.Controller
}

func NewToggleRoundPriceHandler(controller *apporder.Controller) *ToggleRoundPriceHandler {
	return &ToggleRoundPriceHandler{controller: controller}
}

func (h *ToggleRoundPriceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ToggleRoundPriceCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.controller.ToggleRoundPrice()
	return &ToggleRoundPriceResponse{Order: h.controller.Snapshot()}, nil
}
