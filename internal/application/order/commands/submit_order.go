package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
)

// SubmitOrderCommand is the send action. Submission is a stub: it
// produces a confirmation with the share-ready summary and transmits
// nothing.
type SubmitOrderCommand struct{}

type SubmitOrderResponse struct {
	Confirmation apporder.Confirmation
}

type SubmitOrderHandler struct {
	controller *apporder.Controller
}

func NewSubmitOrderHandler(controller *apporder.Controller) *SubmitOrderHandler {
	return &SubmitOrderHandler{controller: controller}
}

func (h *SubmitOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*SubmitOrderCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)

	confirmation, err := h.controller.Submit()
	if err != nil {
		return nil, err
	}

	logger.Log("info", "order submitted", map[string]interface{}{"order_id": confirmation.OrderID})
	return &SubmitOrderResponse{Confirmation: confirmation}, nil
}
