package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

// RegisterWriteTools adds the tools that change the library, history or settings.
func (t *Tools) RegisterWriteTools(s *server.MCPServer) {
	s.AddTool(addWordsTool(), t.locked(t.addWordsHandler))
	s.AddTool(deleteWordTool(), t.locked(t.deleteWordHandler))
	s.AddTool(pickWordsTool(), t.locked(t.pickWordsHandler))
	s.AddTool(saveSheetTool(), t.locked(t.saveSheetHandler))
	s.AddTool(deleteSheetTool(), t.locked(t.deleteSheetHandler))
	s.AddTool(regenerateSheetTool(), t.locked(t.regenerateSheetHandler))
	s.AddTool(importTool(), t.locked(t.importHandler))
	s.AddTool(updateSettingsTool(), t.locked(t.updateSettingsHandler))
}

// --- add_words ---

func addWordsTool() mcp.Tool {
	return mcp.NewTool("add_words",
		mcp.WithDescription("Add words to the library. Entries are split on commas and newlines; duplicates (ignoring case) are skipped."),
		mcp.WithArray("words",
			mcp.Description("Words to add"),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Required(),
		),
	)
}

func (t *Tools) addWordsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := stringList(req, "words")
	if len(entries) == 0 {
		return toolError(fmt.Errorf("words is required"))
	}

	result, err := commands.NewAddWordsCommand(t.session, entries).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- delete_word ---

func deleteWordTool() mcp.Tool {
	return mcp.NewTool("delete_word",
		mcp.WithDescription("Delete a word from the library by id or text. Saved sheets keep their copy."),
		mcp.WithString("word",
			mcp.Description("Word id (w_...) or text"),
			mcp.Required(),
		),
	)
}

func (t *Tools) deleteWordHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewDeleteWordCommand(t.session, req.GetString("word", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- pick_words ---

func pickWordsTool() mcp.Tool {
	return mcp.NewTool("pick_words",
		mcp.WithDescription("Randomly pick words into the selection. The least-used policy favours less practiced words and skips words from recent sheets."),
		mcp.WithNumber("count",
			mcp.Description(fmt.Sprintf("Number of words to pick (default %d)", commands.DefaultPickCount)),
		),
		mcp.WithString("policy",
			mcp.Description("least-used or uniform. Omit for the configured default."),
			mcp.Enum("least-used", "uniform"),
		),
	)
}

func (t *Tools) pickWordsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var policy *domain.Policy
	if name := req.GetString("policy", ""); name != "" {
		p, err := domain.ParsePolicy(name)
		if err != nil {
			return toolError(err)
		}
		policy = &p
	}

	result, err := commands.NewPickWordsCommand(t.session, req.GetInt("count", commands.DefaultPickCount), policy).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- save_sheet ---

func saveSheetTool() mcp.Tool {
	return mcp.NewTool("save_sheet",
		mcp.WithDescription("Save a practice sheet to history and count the words as used. Saves the given words, a fresh random pick, or the current selection."),
		mcp.WithArray("words",
			mcp.Description("Words for the sheet. New words are added to the library."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("random_count",
			mcp.Description("Pick this many words at random instead"),
		),
	)
}

func (t *Tools) saveSheetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewSaveSheetCommand(t.session, stringList(req, "words"), req.GetInt("random_count", 0))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message + "\n\n" + t.session.Worksheet()), nil
}

// --- delete_sheet ---

func deleteSheetTool() mcp.Tool {
	return mcp.NewTool("delete_sheet",
		mcp.WithDescription("Delete a saved sheet. Usage counts are not reverted."),
		mcp.WithString("id",
			mcp.Description("Sheet id (s_...)"),
			mcp.Required(),
		),
	)
}

func (t *Tools) deleteSheetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewDeleteSheetCommand(t.session, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- regenerate_sheet ---

func regenerateSheetTool() mcp.Tool {
	return mcp.NewTool("regenerate_sheet",
		mcp.WithDescription("Load a saved sheet's words into the selection and render it again."),
		mcp.WithString("id",
			mcp.Description("Sheet id (s_...)"),
			mcp.Required(),
		),
	)
}

func (t *Tools) regenerateSheetHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewRegenerateSheetCommand(t.session, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message + "\n\n" + t.session.Worksheet()), nil
}

// --- import_library ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_library",
		mcp.WithDescription("Import words from a .json or .csv library file, or from inline content."),
		mcp.WithString("path",
			mcp.Description("Path of the file to import"),
		),
		mcp.WithString("content",
			mcp.Description("Inline file content, used when path is omitted"),
		),
		mcp.WithString("format",
			mcp.Description("Format of inline content"),
			mcp.Enum("json", "csv"),
		),
	)
}

func (t *Tools) importHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		name string
		data []byte
	)

	if path := req.GetString("path", ""); path != "" {
		var err error
		name, data, err = t.files.ReadImport(ctx, path)
		if err != nil {
			return toolError(err)
		}
	} else {
		content := req.GetString("content", "")
		if content == "" {
			return toolError(fmt.Errorf("path or content is required"))
		}
		name = "inline." + req.GetString("format", "json")
		data = []byte(content)
	}

	result, err := commands.NewImportCommand(t.session, name, data).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- update_settings ---

func updateSettingsTool() mcp.Tool {
	return mcp.NewTool("update_settings",
		mcp.WithDescription("Change worksheet settings. Omitted fields keep their value."),
		mcp.WithNumber("lines_per_word",
			mcp.Description("Blank writing lines under each word (at least 1)"),
		),
		mcp.WithNumber("exclude_recent",
			mcp.Description("Skip words from this many of the newest sheets when picking"),
		),
		mcp.WithBoolean("include_name_date",
			mcp.Description("Print a name and date header"),
		),
	)
}

func (t *Tools) updateSettingsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var override domain.SettingsOverride
	if _, ok := args["lines_per_word"]; ok {
		v := req.GetInt("lines_per_word", 0)
		override.LinesPerWord = &v
	}
	if _, ok := args["exclude_recent"]; ok {
		v := req.GetInt("exclude_recent", 0)
		override.ExcludeRecent = &v
	}
	if _, ok := args["include_name_date"]; ok {
		v := req.GetBool("include_name_date", false)
		override.IncludeNameDate = &v
	}

	result, err := commands.NewUpdateSettingsCommand(t.session, override).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
