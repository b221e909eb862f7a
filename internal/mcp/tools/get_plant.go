package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetPlantInput defines the input for the get_plant tool.
type GetPlantInput struct {
	Plant string `json:"plant" jsonschema:"required,The plant's ID or nickname (nickname match is case-insensitive)"`
}

// GetPlantTool returns the tool definition for get_plant.
func GetPlantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_plant",
		Description: "Get a single plant with full details: care schedule for all three tracks (water/mist/fertilize), task urgency, and the complete diagnosis history (newest first).",
	}
}

// HandleGetPlant handles the get_plant tool call.
func (h *Handler) HandleGetPlant(ctx context.Context, req *mcp.CallToolRequest, input GetPlantInput) (*mcp.CallToolResult, PlantDetail, error) {
	h.Logger.Info("get_plant", "plant", input.Plant)

	p, err := h.Garden.Get(input.Plant)
	if err != nil {
		h.Logger.Warn("get_plant failed", "plant", input.Plant, "error", err)
		return nil, PlantDetail{}, fmt.Errorf("failed to get plant: %w", err)
	}

	h.Logger.Info("get_plant complete", "id", p.ID, "name", p.Name)
	return nil, detail(p, time.Now()), nil
}
