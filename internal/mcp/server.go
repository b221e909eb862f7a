// Package mcp exposes the garden over the Model Context Protocol so AI
// agents can inspect plants, record care tasks, and run diagnoses through the
// same service the CLI uses.
package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantapp/verdant/internal/diagnose"
	"github.com/verdantapp/verdant/internal/garden"
	"github.com/verdantapp/verdant/internal/mcp/tools"
)

const (
	ServerName    = "verdant"
	ServerVersion = "v1.0.0"
)

// Server wraps the MCP server with Verdant-specific configuration
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger
	handler   *tools.Handler
}

// NewServer creates a new Verdant MCP server. The diagnoser may be nil when
// no credential is configured; the diagnose tool then fails with a
// configuration error while every other tool keeps working.
func NewServer(svc *garden.Service, diagnoser diagnose.Diagnoser, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logger:    logger,
		handler:   tools.NewHandler(svc, diagnoser, logger),
	}

	s.registerTools()
	return s
}

// registerTools adds all MCP tools to the server
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, tools.ListPlantsTool(), s.handler.HandleListPlants)
	mcp.AddTool(s.mcpServer, tools.GetPlantTool(), s.handler.HandleGetPlant)
	mcp.AddTool(s.mcpServer, tools.CompleteCareTaskTool(), s.handler.HandleCompleteCareTask)
	mcp.AddTool(s.mcpServer, tools.EditPlantTool(), s.handler.HandleEditPlant)
	mcp.AddTool(s.mcpServer, tools.RemovePlantTool(), s.handler.HandleRemovePlant)
	mcp.AddTool(s.mcpServer, tools.DiagnosePlantTool(), s.handler.HandleDiagnosePlant)
	mcp.AddTool(s.mcpServer, tools.SearchCatalogTool(), s.handler.HandleSearchCatalog)
	mcp.AddTool(s.mcpServer, tools.AddFromCatalogTool(), s.handler.HandleAddFromCatalog)
}

// HTTPHandler returns an http.Handler for the MCP server
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server {
			return s.mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Logger: s.logger,
		},
	)
}

// Run starts the MCP server over stdio (for CLI usage)
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
