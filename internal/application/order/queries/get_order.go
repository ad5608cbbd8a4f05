package queries

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// GetOrderQuery reads the currently published order snapshot.
type GetOrderQuery struct{}

type GetOrderResponse struct {
	Order domain.Order
}

type GetOrderHandler struct {
	controller *apporder.Controller
}

func NewGetOrderHandler(controller *apporder.Controller) *GetOrderHandler {
	return &GetOrderHandler{controller: controller}
}

func (h *GetOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetOrderQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return &GetOrderResponse{Order: h.controller.Snapshot()}, nil
}
