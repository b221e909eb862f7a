package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantapp/verdant/internal/catalog"
)

// AddFromCatalogInput defines the input for the add_from_catalog tool.
type AddFromCatalogInput struct {
	SpeciesID string `json:"species_id" jsonschema:"required,The catalog species ID, e.g. snake-plant (use search_catalog to find IDs)"`
}

// AddFromCatalogTool returns the tool definition for add_from_catalog.
func AddFromCatalogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_from_catalog",
		Description: "Add a plant to the garden from a catalog species. The plant starts Thriving with no diagnosis history, and its care schedule is seeded from the catalog's suggested frequencies.",
	}
}

// HandleAddFromCatalog handles the add_from_catalog tool call.
func (h *Handler) HandleAddFromCatalog(ctx context.Context, req *mcp.CallToolRequest, input AddFromCatalogInput) (*mcp.CallToolResult, PlantDetail, error) {
	h.Logger.Info("add_from_catalog", "species_id", input.SpeciesID)

	sp, ok := catalog.ByID(input.SpeciesID)
	if !ok {
		return nil, PlantDetail{}, fmt.Errorf("unknown species: %s", input.SpeciesID)
	}

	now := time.Now()
	p, err := h.Garden.AddFromSpecies(sp, now)
	if err != nil {
		h.Logger.Error("add_from_catalog failed", "species_id", input.SpeciesID, "error", err)
		return nil, PlantDetail{}, fmt.Errorf("failed to add plant: %w", err)
	}

	h.Logger.Info("add_from_catalog complete", "id", p.ID, "species", p.Species)
	return nil, detail(p, now), nil
}
