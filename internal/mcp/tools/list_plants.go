package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListPlantsInput defines the input for the list_plants tool.
type ListPlantsInput struct {
	OverdueOnly bool `json:"overdue_only,omitempty" jsonschema:"Only return plants with at least one overdue care task"`
}

// ListPlantsOutput defines the output for the list_plants tool.
type ListPlantsOutput struct {
	Plants []PlantSummary `json:"plants"`
	Total  int            `json:"total"`
}

// ListPlantsTool returns the tool definition for list_plants.
func ListPlantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_plants",
		Description: "List all plants in the garden with their health status and care task urgency (overdue, due today, upcoming, or disabled) for each of the water, mist, and fertilize tracks. Newest plants first.",
	}
}

// HandleListPlants handles the list_plants tool call.
func (h *Handler) HandleListPlants(ctx context.Context, req *mcp.CallToolRequest, input ListPlantsInput) (*mcp.CallToolResult, ListPlantsOutput, error) {
	h.Logger.Info("list_plants", "overdue_only", input.OverdueOnly)

	now := time.Now()
	output := ListPlantsOutput{Plants: []PlantSummary{}}
	for _, p := range h.Garden.List() {
		summary := summarize(p, now)
		if input.OverdueOnly && !summary.HasOverdue {
			continue
		}
		output.Plants = append(output.Plants, summary)
	}
	output.Total = len(output.Plants)

	h.Logger.Info("list_plants complete", "total", output.Total)
	return nil, output, nil
}
