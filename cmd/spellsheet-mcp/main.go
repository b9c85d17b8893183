package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "spellsheet/internal/adapters/mcp"
	"spellsheet/internal/bootstrap"
	"spellsheet/internal/config"
	"spellsheet/internal/logger"
)

func main() {
	storeFlag := flag.String("store", "", "path to the SQLite store (default <data dir>/spellsheet.db)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("spellsheet-mcp: %v", err)
	}
	if *storeFlag != "" {
		cfg.Store.Path = *storeFlag
	}

	// stdout carries the MCP protocol
	logs := logger.Setup(cfg.Log, os.Stderr)

	rt, err := bootstrap.Open(context.Background(), cfg, logs)
	if err != nil {
		log.Fatalf("spellsheet-mcp: %v", err)
	}
	defer rt.Close()

	mcpServer := server.NewMCPServer(
		"spellsheet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.NewTools(rt.Session, rt.Files).Register(mcpServer)

	if err := server.ServeStdio(mcpServer); err != nil {
		logs.Error("server stopped", "error", err)
		rt.Close()
		os.Exit(1)
	}
}
