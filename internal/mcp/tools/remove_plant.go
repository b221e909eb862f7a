package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RemovePlantInput defines the input for the remove_plant tool.
type RemovePlantInput struct {
	Plant string `json:"plant" jsonschema:"required,The plant's ID or nickname"`
}

// RemovePlantOutput defines the output for the remove_plant tool.
type RemovePlantOutput struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

// RemovePlantTool returns the tool definition for remove_plant.
func RemovePlantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_plant",
		Description: "Permanently remove a plant from the garden, including its care schedule and diagnosis history. This cannot be undone.",
	}
}

// HandleRemovePlant handles the remove_plant tool call.
func (h *Handler) HandleRemovePlant(ctx context.Context, req *mcp.CallToolRequest, input RemovePlantInput) (*mcp.CallToolResult, RemovePlantOutput, error) {
	h.Logger.Info("remove_plant", "plant", input.Plant)

	if err := h.Garden.Delete(input.Plant); err != nil {
		h.Logger.Error("remove_plant failed", "plant", input.Plant, "error", err)
		return nil, RemovePlantOutput{}, fmt.Errorf("failed to remove plant: %w", err)
	}

	h.Logger.Info("remove_plant complete", "plant", input.Plant)
	return nil, RemovePlantOutput{
		Removed: true,
		Message: fmt.Sprintf("removed %s from the garden", input.Plant),
	}, nil
}
