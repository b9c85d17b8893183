package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/adapters/filesystem"
	"spellsheet/internal/adapters/memory"
	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func newTestTools(t *testing.T) (*Tools, string) {
	t.Helper()
	n := 0
	session := application.Open(context.Background(), memory.New(),
		application.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		application.WithClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) }),
		application.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s%d", prefix, n)
		}),
		application.WithRand(firstRand{}),
	)
	dir := t.TempDir()
	return NewTools(session, filesystem.NewRepository(dir)), dir
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, res.IsError
}

func TestAddAndListWords(t *testing.T) {
	tools, _ := newTestTools(t)

	out, isErr := call(t, tools.addWordsHandler, map[string]any{"words": []any{"cat", "Dog", "cat"}})
	assert.False(t, isErr)
	assert.Contains(t, out, "Added 2 word(s): cat, Dog")

	out, isErr = call(t, tools.addWordsHandler, map[string]any{"words": "eel, fox"})
	assert.False(t, isErr)
	assert.Contains(t, out, "eel, fox")

	out, _ = call(t, tools.listWordsHandler, map[string]any{})
	assert.Equal(t, "w_1  cat  used 0\nw_2  Dog  used 0\nw_3  eel  used 0\nw_4  fox  used 0\n", out)

	_, isErr = call(t, tools.addWordsHandler, map[string]any{})
	assert.True(t, isErr)
}

func TestPickSaveAndRecent(t *testing.T) {
	tools, _ := newTestTools(t)
	call(t, tools.addWordsHandler, map[string]any{"words": []any{"delta", "alpha", "charlie", "bravo"}})

	out, isErr := call(t, tools.pickWordsHandler, map[string]any{"count": float64(2)})
	assert.False(t, isErr)
	assert.Contains(t, out, "alpha, bravo")

	out, isErr = call(t, tools.saveSheetHandler, map[string]any{})
	assert.False(t, isErr)
	assert.Contains(t, out, "Saved sheet s_5")
	assert.Contains(t, out, "1. alpha")

	out, _ = call(t, tools.recentWordsHandler, map[string]any{"sheets": float64(1)})
	assert.Contains(t, out, "alpha  used 1")
	assert.Contains(t, out, "bravo  used 1")

	out, _ = call(t, tools.listSheetsHandler, map[string]any{})
	assert.Equal(t, "s_5  3 lines  alpha, bravo\n", out)

	_, isErr = call(t, tools.pickWordsHandler, map[string]any{"policy": "weighted"})
	assert.True(t, isErr)
}

func TestSaveSheetEmptySelection(t *testing.T) {
	tools, _ := newTestTools(t)

	out, isErr := call(t, tools.saveSheetHandler, map[string]any{})
	assert.True(t, isErr)
	assert.Contains(t, out, application.ErrNothingToSave.Error())
}

func TestRegenerateAndDeleteSheet(t *testing.T) {
	tools, _ := newTestTools(t)
	call(t, tools.saveSheetHandler, map[string]any{"words": []any{"sun", "moon"}})
	tools.session.ClearSelection()

	out, isErr := call(t, tools.regenerateSheetHandler, map[string]any{"id": "s_3"})
	assert.False(t, isErr)
	assert.Contains(t, out, "2. moon")

	out, _ = call(t, tools.deleteSheetHandler, map[string]any{"id": "s_3"})
	assert.Equal(t, "Deleted sheet: s_3", out)

	out, isErr = call(t, tools.deleteSheetHandler, map[string]any{"id": "s_3"})
	assert.False(t, isErr)
	assert.Equal(t, "No such sheet: s_3", out)

	_, isErr = call(t, tools.regenerateSheetHandler, map[string]any{"id": "s_3"})
	assert.True(t, isErr)
}

func TestImportExport(t *testing.T) {
	tools, dir := newTestTools(t)

	out, isErr := call(t, tools.importHandler, map[string]any{"content": "word\ncoat\nrack\n", "format": "csv"})
	assert.False(t, isErr)
	assert.Equal(t, "Imported 2 new word(s) from inline.csv", out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "more.json"), []byte(`["hat"]`), 0644))
	out, isErr = call(t, tools.importHandler, map[string]any{"path": "more.json"})
	assert.False(t, isErr)
	assert.Contains(t, out, "more.json")

	_, isErr = call(t, tools.importHandler, map[string]any{"content": "{", "format": "json"})
	assert.True(t, isErr)

	out, _ = call(t, tools.exportHandler, map[string]any{"format": "csv"})
	assert.Equal(t, "word\ncoat\nrack\nhat", out)

	out, isErr = call(t, tools.exportHandler, map[string]any{"path": "backup.json"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Exported 3 word(s)")
	_, err := os.Stat(filepath.Join(dir, "backup.json"))
	assert.NoError(t, err)
}

func TestUpdateSettings(t *testing.T) {
	tools, _ := newTestTools(t)

	out, isErr := call(t, tools.updateSettingsHandler, map[string]any{"lines_per_word": float64(5), "include_name_date": true})
	assert.False(t, isErr)
	assert.Contains(t, out, "lines per word: 5")
	assert.Equal(t, domain.Settings{LinesPerWord: 5, IncludeNameDate: true}, tools.session.Settings())

	_, isErr = call(t, tools.updateSettingsHandler, map[string]any{"lines_per_word": float64(0)})
	assert.True(t, isErr)

	out, _ = call(t, tools.getSettingsHandler, nil)
	assert.Contains(t, out, "policy: least-used")
}

func TestRegisterAddsTools(t *testing.T) {
	tools, _ := newTestTools(t)
	s := server.NewMCPServer("spellsheet-test", "0.0.0", server.WithToolCapabilities(true))
	assert.NotPanics(t, func() { tools.Register(s) })
}
