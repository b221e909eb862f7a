// Package diagnose wraps the single generative-model call that identifies a
// plant from a photo and assesses its health. The upstream model is treated
// as a black box behind the Diagnoser interface: one request, one structured
// response, no retry and no streaming. Errors propagate verbatim so the
// caller can show them and offer a retry with the same image.
package diagnose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/verdantapp/verdant/internal/models"
)

// DefaultModel is the Gemini model used for identification and diagnosis.
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey indicates the credential is absent. This is a hard
// configuration error raised before any network I/O.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")

// Diagnoser is the external diagnosis boundary.
type Diagnoser interface {
	Diagnose(ctx context.Context, jpegImage []byte) (*models.DiagnosisResult, error)
}

// GeminiClient implements Diagnoser against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiClient creates a diagnosis client. It fails fast when the API key
// is missing.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: model, logger: logger}, nil
}

const diagnosisPrompt = `You are an expert botanist and plant pathologist.
Analyze the provided image of a plant.
Identify the species and diagnose any health issues.
If the plant is healthy, provide maintenance tips.
Be encouraging but realistic.
Provide specific schedules for watering, misting, and fertilizing. If misting or fertilizing is not required for this species, set frequency to 0.`

// Diagnose sends one image to the model and decodes the structured result.
// No partial result is ever returned alongside an error.
func (c *GeminiClient) Diagnose(ctx context.Context, jpegImage []byte) (*models.DiagnosisResult, error) {
	c.logger.Info("requesting diagnosis", "model", c.model, "image_bytes", len(jpegImage))

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(jpegImage, "image/jpeg"),
			genai.NewPartFromText(diagnosisPrompt),
		}, genai.RoleUser),
	}

	// Lower temperature for more analytical results.
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.4),
		ResponseMIMEType: "application/json",
		ResponseSchema:   diagnosisSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("diagnosis request failed: %w", err)
	}

	result, err := ParseResult([]byte(resp.Text()))
	if err != nil {
		return nil, err
	}
	c.logger.Info("diagnosis complete", "plant", result.PlantName, "status", result.HealthStatus)
	return result, nil
}

// ParseResult decodes the model's structured response. The response schema is
// enforced upstream, so only usability is checked here: field ranges (for
// example confidence) are trusted, not clamped.
func ParseResult(data []byte) (*models.DiagnosisResult, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("no response from model")
	}

	var result models.DiagnosisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed diagnosis response: %w", err)
	}
	if result.PlantName == "" || result.ScientificName == "" {
		return nil, errors.New("diagnosis response missing identification")
	}
	return &result, nil
}

// diagnosisSchema is the fixed output schema the model must honor. Everything
// is required except the optional mist/fertilize suggestions.
func diagnosisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"plantName": {
				Type:        genai.TypeString,
				Description: "Common name of the plant",
			},
			"scientificName": {
				Type:        genai.TypeString,
				Description: "Scientific name of the plant",
			},
			"confidence": {
				Type:        genai.TypeNumber,
				Description: "Confidence score between 0 and 100",
			},
			"healthStatus": {
				Type:        genai.TypeString,
				Enum:        []string{"Thriving", "Recovering", "Critical"},
				Description: "Overall health assessment",
			},
			"diagnosis": {
				Type:        genai.TypeString,
				Description: "Short title of the issue (e.g. Root Rot, Healthy)",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "Detailed explanation of visual symptoms observed",
			},
			"carePlan": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Step-by-step recovery or maintenance instructions",
			},
			"suggestedWaterFrequency": {
				Type:        genai.TypeNumber,
				Description: "Recommended watering frequency in days",
			},
			"suggestedMistFrequency": {
				Type:        genai.TypeNumber,
				Description: "Recommended misting frequency in days (0 if not needed)",
			},
			"suggestedFertilizeFrequency": {
				Type:        genai.TypeNumber,
				Description: "Recommended fertilizing frequency in days (0 if not needed)",
			},
		},
		Required: []string{
			"plantName",
			"scientificName",
			"confidence",
			"healthStatus",
			"diagnosis",
			"reasoning",
			"carePlan",
			"suggestedWaterFrequency",
			"suggestedMistFrequency",
			"suggestedFertilizeFrequency",
		},
	}
}
