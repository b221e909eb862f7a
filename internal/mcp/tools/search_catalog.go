package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantapp/verdant/internal/catalog"
)

// SearchCatalogInput defines the input for the search_catalog tool.
type SearchCatalogInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search text matched against common and scientific names (case-insensitive); empty returns the full catalog"`
}

// SearchCatalogOutput defines the output for the search_catalog tool.
type SearchCatalogOutput struct {
	Species []SpeciesOutput `json:"species"`
	Total   int             `json:"total"`
}

// SearchCatalogTool returns the tool definition for search_catalog.
func SearchCatalogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the built-in species catalog by common or scientific name. Each entry has care guidance (water, light, temperature, humidity), common issues, and suggested care frequencies for adding the plant to the garden.",
	}
}

// HandleSearchCatalog handles the search_catalog tool call.
func (h *Handler) HandleSearchCatalog(ctx context.Context, req *mcp.CallToolRequest, input SearchCatalogInput) (*mcp.CallToolResult, SearchCatalogOutput, error) {
	h.Logger.Info("search_catalog", "query", input.Query)

	output := SearchCatalogOutput{Species: []SpeciesOutput{}}
	for _, sp := range catalog.Search(input.Query) {
		output.Species = append(output.Species, speciesOutput(sp))
	}
	output.Total = len(output.Species)

	h.Logger.Info("search_catalog complete", "query", input.Query, "total", output.Total)
	return nil, output, nil
}
