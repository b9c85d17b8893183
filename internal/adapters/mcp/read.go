package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

// RegisterReadTools adds the tools that do not change stored state.
func (t *Tools) RegisterReadTools(s *server.MCPServer) {
	s.AddTool(listWordsTool(), t.locked(t.listWordsHandler))
	s.AddTool(searchWordsTool(), t.locked(t.searchWordsHandler))
	s.AddTool(listSheetsTool(), t.locked(t.listSheetsHandler))
	s.AddTool(recentWordsTool(), t.locked(t.recentWordsHandler))
	s.AddTool(worksheetTool(), t.locked(t.worksheetHandler))
	s.AddTool(exportTool(), t.locked(t.exportHandler))
	s.AddTool(getSettingsTool(), t.locked(t.getSettingsHandler))
}

// --- list_words ---

func listWordsTool() mcp.Tool {
	return mcp.NewTool("list_words",
		mcp.WithDescription("List library words in alphabetical order with their ids and usage counts."),
		mcp.WithString("query",
			mcp.Description("Only list words containing this text (case-insensitive)"),
		),
	)
}

func (t *Tools) listWordsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	words, err := commands.NewListWordsCommand(t.session, req.GetString("query", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(words, formatWord)
}

// --- search_words ---

func searchWordsTool() mcp.Tool {
	return mcp.NewTool("search_words",
		mcp.WithDescription("Fuzzy search the library. Best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func (t *Tools) searchWordsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if strings.TrimSpace(query) == "" {
		return toolError(fmt.Errorf("query is required"))
	}

	results, err := commands.NewSearchWordsCommand(t.session, query).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}
	return formatEntities(results, func(r commands.SearchResult) string {
		return formatWord(r.Word)
	})
}

// --- list_sheets ---

func listSheetsTool() mcp.Tool {
	return mcp.NewTool("list_sheets",
		mcp.WithDescription("List saved practice sheets, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of sheets to list. Omit for all."),
		),
	)
}

func (t *Tools) listSheetsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sheets, err := commands.NewListSheetsCommand(t.session, req.GetInt("limit", 0)).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(sheets, formatSheet)
}

// --- recent_words ---

func recentWordsTool() mcp.Tool {
	return mcp.NewTool("recent_words",
		mcp.WithDescription("List the words used by the newest sheets. These are the words the least-used picker skips."),
		mcp.WithNumber("sheets",
			mcp.Description("How many of the newest sheets to consider. Defaults to the exclude-recent setting."),
		),
	)
}

func (t *Tools) recentWordsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := req.GetInt("sheets", t.session.Settings().ExcludeRecent)
	res, err := commands.NewRecentWordsCommand(t.session, n).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(res.Words, formatWord)
}

// --- worksheet ---

func worksheetTool() mcp.Tool {
	return mcp.NewTool("worksheet",
		mcp.WithDescription("Render the current selection as a plain-text practice sheet."),
	)
}

func (t *Tools) worksheetHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if len(t.session.Selection()) == 0 {
		return mcp.NewToolResultText("Selection is empty."), nil
	}
	return mcp.NewToolResultText(t.session.Worksheet()), nil
}

// --- export_library ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_library",
		mcp.WithDescription("Export the library as JSON or CSV. Returns the content, or writes it when a path is given."),
		mcp.WithString("format",
			mcp.Description("json (default) or csv"),
			mcp.Enum("json", "csv"),
		),
		mcp.WithString("path",
			mcp.Description("File or directory to write to. Omit to return the content."),
		),
	)
}

func (t *Tools) exportHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := commands.NewExportCommand(t.session, req.GetString("format", "json")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	dest := req.GetString("path", "")
	if dest == "" {
		return mcp.NewToolResultText(string(payload.Data)), nil
	}
	path, err := t.files.WriteExport(payload, dest)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Exported %d word(s) to %s", t.session.Library.Snapshot().Len(), path)), nil
}

// --- get_settings ---

func getSettingsTool() mcp.Tool {
	return mcp.NewTool("get_settings",
		mcp.WithDescription("Show the worksheet settings and selection policy."),
	)
}

func (t *Tools) getSettingsHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(settingsText(t.session.Settings(), t.session.Policy())), nil
}

func settingsText(s domain.Settings, p domain.Policy) string {
	return fmt.Sprintf("%s\npolicy: %s", commands.FormatSettings(s), p)
}
