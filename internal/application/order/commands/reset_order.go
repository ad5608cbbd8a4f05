package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// ResetOrderCommand restores the default order state.
type ResetOrderCommand struct{}

type ResetOrderResponse struct {
	Order domain.Order
}

type ResetOrderHandler struct {
	controller *apporder.Controller
}

func NewResetOrderHandler(controller *apporder.Controller) *ResetOrderHandler {
	return &ResetOrderHandler{controller: controller}
}

func (h *ResetOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ResetOrderCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.controller.Reset()
	return &ResetOrderResponse{Order: h.controller.Snapshot()}, nil
}
