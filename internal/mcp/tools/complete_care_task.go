package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantapp/verdant/internal/models"
)

// CompleteCareTaskInput defines the input for the complete_care_task tool.
type CompleteCareTaskInput struct {
	Plant string `json:"plant" jsonschema:"required,The plant's ID or nickname"`
	Track string `json:"track" jsonschema:"required,The care track to mark done: water, mist, or fertilize"`
}

// CompleteCareTaskOutput defines the output for the complete_care_task tool.
type CompleteCareTaskOutput struct {
	Plant   string `json:"plant"`
	Track   string `json:"track"`
	Done    bool   `json:"done"`
	NextDue string `json:"next_due,omitempty"`
	Message string `json:"message"`
}

// CompleteCareTaskTool returns the tool definition for complete_care_task.
func CompleteCareTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "complete_care_task",
		Description: "Record that a care task (water, mist, or fertilize) was just performed for a plant. Resets that track's timer and reports the next due date. Completing a disabled track is a no-op.",
	}
}

// HandleCompleteCareTask handles the complete_care_task tool call.
func (h *Handler) HandleCompleteCareTask(ctx context.Context, req *mcp.CallToolRequest, input CompleteCareTaskInput) (*mcp.CallToolResult, CompleteCareTaskOutput, error) {
	h.Logger.Info("complete_care_task", "plant", input.Plant, "track", input.Track)

	if !models.IsValidTrack(input.Track) {
		return nil, CompleteCareTaskOutput{}, fmt.Errorf("invalid track: %s (must be one of: water, mist, fertilize)", input.Track)
	}
	track := models.Track(input.Track)

	p, err := h.Garden.MarkDone(input.Plant, track, time.Now())
	if err != nil {
		h.Logger.Error("complete_care_task failed", "plant", input.Plant, "track", input.Track, "error", err)
		return nil, CompleteCareTaskOutput{}, fmt.Errorf("failed to complete task: %w", err)
	}

	state := p.Schedule.Track(track)
	output := CompleteCareTaskOutput{
		Plant: p.Name,
		Track: input.Track,
	}
	if state.Enabled() {
		output.Done = true
		output.NextDue = formatTime(state.NextDue)
		output.Message = fmt.Sprintf("%s marked done for %s, next due %s", input.Track, p.Name, output.NextDue)
	} else {
		output.Message = fmt.Sprintf("%s is disabled for %s, nothing recorded", input.Track, p.Name)
	}

	h.Logger.Info("complete_care_task complete", "id", p.ID, "track", input.Track, "done", output.Done)
	return nil, output, nil
}
