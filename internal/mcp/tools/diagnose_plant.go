package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DiagnosePlantInput defines the input for the diagnose_plant tool.
type DiagnosePlantInput struct {
	ImageBase64 string `json:"image_base64" jsonschema:"required,Base64-encoded JPEG photo of the plant to diagnose"`
	Plant       string `json:"plant,omitempty" jsonschema:"Existing plant's ID or nickname; the diagnosis is appended to its history and its status is updated"`
	Save        bool   `json:"save,omitempty" jsonschema:"Add the diagnosed plant to the garden as a new plant (ignored when plant is set)"`
	Nickname    string `json:"nickname,omitempty" jsonschema:"Nickname for the new plant when save is true (defaults to the identified name)"`
}

// DiagnosePlantOutput defines the output for the diagnose_plant tool.
type DiagnosePlantOutput struct {
	Result  DiagnosisOutput `json:"result"`
	PlantID string          `json:"plant_id,omitempty"`
	Message string          `json:"message"`
}

// DiagnosePlantTool returns the tool definition for diagnose_plant.
func DiagnosePlantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "diagnose_plant",
		Description: "Identify a plant from a photo and assess its health using AI. Returns the species, a health status (Thriving/Recovering/Critical), a diagnosis with reasoning, a care plan, and suggested care frequencies. Optionally save the result as a new plant or append it to an existing plant's history.",
	}
}

// HandleDiagnosePlant handles the diagnose_plant tool call.
func (h *Handler) HandleDiagnosePlant(ctx context.Context, req *mcp.CallToolRequest, input DiagnosePlantInput) (*mcp.CallToolResult, DiagnosePlantOutput, error) {
	h.Logger.Info("diagnose_plant", "plant", input.Plant, "save", input.Save)

	if h.Diagnoser == nil {
		return nil, DiagnosePlantOutput{}, fmt.Errorf("diagnosis is not configured: set GEMINI_API_KEY and restart the server")
	}

	image, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		return nil, DiagnosePlantOutput{}, fmt.Errorf("invalid image_base64: %w", err)
	}

	result, err := h.Diagnoser.Diagnose(ctx, image)
	if err != nil {
		h.Logger.Error("diagnose_plant failed", "error", err)
		return nil, DiagnosePlantOutput{}, fmt.Errorf("diagnosis failed: %w", err)
	}

	output := DiagnosePlantOutput{
		Result:  diagnosisOutput(*result),
		Message: fmt.Sprintf("identified %s (%s), status %s", result.PlantName, result.ScientificName, result.HealthStatus),
	}

	switch {
	case input.Plant != "":
		p, err := h.Garden.AppendDiagnosis(input.Plant, *result)
		if err != nil {
			h.Logger.Error("diagnose_plant append failed", "plant", input.Plant, "error", err)
			return nil, DiagnosePlantOutput{}, fmt.Errorf("failed to record diagnosis: %w", err)
		}
		output.PlantID = p.ID
		output.Message = fmt.Sprintf("recorded new diagnosis for %s, status now %s", p.Name, p.Status)
	case input.Save:
		p, err := h.Garden.AddFromDiagnosis(*result, "", input.Nickname, time.Now())
		if err != nil {
			h.Logger.Error("diagnose_plant save failed", "error", err)
			return nil, DiagnosePlantOutput{}, fmt.Errorf("failed to save plant: %w", err)
		}
		output.PlantID = p.ID
		output.Message = fmt.Sprintf("added %s to the garden", p.Name)
	}

	h.Logger.Info("diagnose_plant complete", "species", result.ScientificName, "status", result.HealthStatus, "plant_id", output.PlantID)
	return nil, output, nil
}
