package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/diagnose"
	mcpserver "github.com/verdantapp/verdant/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agent integration",
	Long: `Start the Model Context Protocol (MCP) server that lets AI agents
manage the garden via JSON-RPC over stdio.

This command is typically invoked by AI agents rather than directly by
users. It exposes tools to:
  - List plants and inspect their schedules and diagnosis history
  - Record completed care tasks and edit care frequencies
  - Diagnose plants from photos and save the results
  - Search the species catalog and add plants from it

The diagnose_plant tool needs GEMINI_API_KEY; all other tools work
without it. Use --http to serve over HTTP instead of stdio.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, cfg, logger, err := openGarden(cmd)
		if err != nil {
			exitWithError(err)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("shutting down...")
			cancel()
		}()

		// Diagnosis is optional here: without a key the other tools still
		// work and diagnose_plant reports the missing credential.
		var diagnoser diagnose.Diagnoser
		if cfg.GeminiAPIKey != "" {
			client, err := diagnose.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
			if err != nil {
				exitWithError(fmt.Errorf("failed to create diagnosis client: %w", err))
			}
			diagnoser = client
		} else {
			logger.Warn("GEMINI_API_KEY not set, diagnose_plant will be unavailable")
		}

		server := mcpserver.NewServer(svc, diagnoser, logger)

		if httpMode, _ := cmd.Flags().GetBool("http"); httpMode {
			port, _ := cmd.Flags().GetInt("port")
			addr := fmt.Sprintf(":%d", port)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.HTTPHandler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("starting HTTP server", "addr", addr)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				exitWithError(fmt.Errorf("HTTP server error: %w", err))
			}
			return
		}

		// Log to stderr (stdout is for MCP protocol)
		logger.Info("starting MCP server on stdio", "data_dir", cfg.DataDir)
		if err := server.Run(ctx); err != nil {
			exitWithError(fmt.Errorf("MCP server error: %w", err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("http", false, "Serve MCP over HTTP instead of stdio")
	mcpCmd.Flags().Int("port", 8080, "HTTP port to listen on (with --http)")
}
