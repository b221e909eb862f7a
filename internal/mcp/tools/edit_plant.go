package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantapp/verdant/internal/schedule"
)

// EditPlantInput defines the input for the edit_plant tool.
type EditPlantInput struct {
	Plant              string  `json:"plant" jsonschema:"required,The plant's ID or nickname"`
	Name               *string `json:"name,omitempty" jsonschema:"New nickname for the plant"`
	WaterFrequency     *int    `json:"water_frequency,omitempty" jsonschema:"New watering frequency in days (must be at least 1)"`
	MistFrequency      *int    `json:"mist_frequency,omitempty" jsonschema:"New misting frequency in days (0 disables misting)"`
	FertilizeFrequency *int    `json:"fertilize_frequency,omitempty" jsonschema:"New fertilizing frequency in days (0 disables fertilizing)"`
}

// EditPlantTool returns the tool definition for edit_plant.
func EditPlantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "edit_plant",
		Description: "Rename a plant and/or change its care frequencies. Due dates are recomputed from when each task was last performed, so editing a frequency never counts as doing the task. Watering cannot be disabled; mist and fertilize can be set to 0 to turn them off.",
	}
}

// HandleEditPlant handles the edit_plant tool call.
func (h *Handler) HandleEditPlant(ctx context.Context, req *mcp.CallToolRequest, input EditPlantInput) (*mcp.CallToolResult, PlantDetail, error) {
	h.Logger.Info("edit_plant", "plant", input.Plant)

	edits := schedule.ScheduleEdit{
		Water:     input.WaterFrequency,
		Mist:      input.MistFrequency,
		Fertilize: input.FertilizeFrequency,
	}

	now := time.Now()
	p, err := h.Garden.EditPlant(input.Plant, input.Name, edits, now)
	if err != nil {
		h.Logger.Error("edit_plant failed", "plant", input.Plant, "error", err)
		return nil, PlantDetail{}, fmt.Errorf("failed to edit plant: %w", err)
	}

	h.Logger.Info("edit_plant complete", "id", p.ID, "name", p.Name)
	return nil, detail(p, now), nil
}
