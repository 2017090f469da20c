package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/image-edit-mcp/internal/config"
	"github.com/ironsheep/image-edit-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-edit-mcp - MCP server for interactive image editing")
			fmt.Println()
			fmt.Println("Usage: image-edit-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_EDIT_LOG_LEVEL=debug         Log level (debug, info, warn, error)")
			fmt.Println("  IMAGE_EDIT_VIEWPORT=750x600        Bounds of the rendered display image")
			fmt.Println("  IMAGE_EDIT_HISTORY_LIMIT=0         Maximum undo steps, 0 for unlimited")
			fmt.Println("  IMAGE_EDIT_COMPOSITION=reset       What brightness/contrast/blur do to active")
			fmt.Println("                                     toggles: reset (drop them) or reapply")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "image-edit-mcp: invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Log to stderr; stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Debug("starting image-edit-mcp",
		"version", Version, "built", BuildTime, "commit", GitCommit,
		"viewport", fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight),
		"history_limit", cfg.HistoryLimit, "composition", cfg.Composition.String())

	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
