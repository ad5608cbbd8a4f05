package commands

import (
	"context"
	"fmt"

	"github.com/weihanlim/cupcake-go/internal/application/common"
	apporder "github.com/weihanlim/cupcake-go/internal/application/order"
	domain "github.com/weihanlim/cupcake-go/internal/domain/order"
)

// SelectFlavorCommand chooses a flavor by catalog id. The bundle
// pseudo-flavor id selects the all-flavors bundle.
type SelectFlavorCommand struct {
	FlavorID string
}

type SelectFlavorResponse struct {
	Order domain.Order
}

// SelectFlavorHandler applies the select-flavor intent. The flavor's
// unit price is adopted from the catalog in the same step.
type SelectFlavorHandler struct {
	controller *apporder.Controller
}

func NewSelectFlavorHandler(controller *apporder.Controller) *SelectFlavorHandler {
	return &SelectFlavorHandler{controller: controller}
}

func (h *SelectFlavorHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SelectFlavorCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("debug", "selecting flavor", map[string]interface{}{"flavor": cmd.FlavorID})

	if err := h.controller.SelectFlavor(cmd.FlavorID); err != nil {
		return nil, err
	}
	return &SelectFlavorResponse{Order: h.controller.Snapshot()}, nil
}
