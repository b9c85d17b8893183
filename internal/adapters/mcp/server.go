// Package mcp exposes the spellsheet session as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"spellsheet/internal/adapters/filesystem"
	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// Tools binds MCP tool handlers to one session. mcp-go may dispatch calls
// concurrently, so every handler runs under mu.
type Tools struct {
	mu      sync.Mutex
	session *application.Session
	files   *filesystem.Repository
}

// NewTools creates the tool set. files resolves import and export paths.
func NewTools(session *application.Session, files *filesystem.Repository) *Tools {
	return &Tools{session: session, files: files}
}

// Register adds every read and write tool to the server
func (t *Tools) Register(s *server.MCPServer) {
	t.RegisterReadTools(s)
	t.RegisterWriteTools(s)
}

func (t *Tools) locked(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		return h(ctx, req)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatWord(w domain.Word) string {
	return fmt.Sprintf("%s  %s  used %d", w.ID, w.Text, w.UsageCount)
}

func formatSheet(s domain.Sheet) string {
	return fmt.Sprintf("%s  %d lines  %s", s.ID, s.LinesPerWord, strings.Join(s.Words, ", "))
}

// stringList accepts either an array argument or a single string that is
// split on newlines and commas.
func stringList(req mcp.CallToolRequest, key string) []string {
	if list := req.GetStringSlice(key, nil); len(list) > 0 {
		return list
	}
	if raw := req.GetString(key, ""); raw != "" {
		return domain.SplitQuickAdd(raw)
	}
	return nil
}
