package application

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"spellsheet/internal/codec"
	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// Session is the working context of one user: the library and history
// services, the persisted settings and the transient selection.
// A Session is not safe for concurrent use.
type Session struct {
	Library *LibraryManager
	History *HistoryTracker

	store ports.Store
	env
	settings  domain.Settings
	selection []string
}

// Open loads library, history and settings from store. When the library is
// empty and a seed source is configured, the starter list is imported;
// seed failures are logged and ignored.
func Open(ctx context.Context, store ports.Store, opts ...Option) *Session {
	e := newEnv(opts)
	lib := newLibraryManager(store, e)
	s := &Session{
		Library:  lib,
		History:  newHistoryTracker(store, lib, e),
		store:    store,
		env:      e,
		settings: loadSettings(store, e),
	}

	if lib.Snapshot().Len() == 0 && e.seed != nil {
		s.seedLibrary(ctx)
	}
	return s
}

func loadSettings(store ports.Store, e env) domain.Settings {
	var override domain.SettingsOverride
	if !loadBlob(store, e.log, ports.KeySettings, &override) {
		return domain.DefaultSettings()
	}
	return domain.DefaultSettings().Merge(override)
}

func (s *Session) seedLibrary(ctx context.Context) {
	data, err := s.seed.Fetch(ctx)
	if err != nil {
		s.log.Debug("starter list unavailable", "error", err)
		return
	}
	texts, err := codec.DecodeJSON(data)
	if err != nil {
		s.log.Debug("starter list is malformed", "error", err)
		return
	}
	added, err := s.Library.AddWords(texts)
	if err != nil {
		s.log.Debug("failed to store starter list", "error", err)
		return
	}
	s.log.Info("library seeded", "count", len(added))
}

// Settings returns the current settings
func (s *Session) Settings() domain.Settings {
	return s.settings
}

// Policy returns the default selection policy
func (s *Session) Policy() domain.Policy {
	return s.policy
}

// TrackUsage reports whether saving a sheet bumps usage counts
func (s *Session) TrackUsage() bool {
	return s.trackUsage
}

// UpdateSettings validates and persists new settings
func (s *Session) UpdateSettings(next domain.Settings) error {
	if err := ValidateSettings(next); err != nil {
		return err
	}
	if err := saveBlobs(s.store, blob{key: ports.KeySettings, value: next}); err != nil {
		s.log.Error("failed to persist settings", "error", err)
		return err
	}
	s.settings = next
	s.log.Debug("settings updated", "lines_per_word", next.LinesPerWord, "exclude_recent", next.ExcludeRecent)
	return nil
}

// Selection returns a copy of the staged words
func (s *Session) Selection() []string {
	return slices.Clone(s.selection)
}

// SetSelection replaces the staged words, dropping blank entries
func (s *Session) SetSelection(words []string) {
	s.selection = nil
	for _, w := range words {
		if t := strings.TrimSpace(w); t != "" {
			s.selection = append(s.selection, t)
		}
	}
}

// Pick stages text unless it is already staged. It reports whether the
// selection changed.
func (s *Session) Pick(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || slices.Contains(s.selection, text) {
		return false
	}
	s.selection = append(s.selection, text)
	return true
}

// Unpick removes the staged word at index
func (s *Session) Unpick(index int) bool {
	if index < 0 || index >= len(s.selection) {
		return false
	}
	s.selection = slices.Delete(s.selection, index, index+1)
	return true
}

// MoveUp swaps the staged word at index with the one before it
func (s *Session) MoveUp(index int) bool {
	if index <= 0 || index >= len(s.selection) {
		return false
	}
	s.selection[index-1], s.selection[index] = s.selection[index], s.selection[index-1]
	return true
}

// MoveDown swaps the staged word at index with the one after it
func (s *Session) MoveDown(index int) bool {
	if index < 0 || index >= len(s.selection)-1 {
		return false
	}
	s.selection[index+1], s.selection[index] = s.selection[index], s.selection[index+1]
	return true
}

// ClearSelection empties the staged words
func (s *Session) ClearSelection() {
	s.selection = nil
}

// PickRandom replaces the selection with n words chosen by the default policy
func (s *Session) PickRandom(n int) []domain.Word {
	return s.PickRandomWith(s.policy, n)
}

// PickRandomWith replaces the selection with n words chosen by policy.
// n is clamped to at least 1; a small library yields fewer words.
func (s *Session) PickRandomWith(policy domain.Policy, n int) []domain.Word {
	n = max(1, n)
	picked := domain.Select(policy, s.Library.Snapshot(), s.History.Snapshot(), s.settings, n, s.collator, s.rng)
	s.selection = domain.Texts(picked)
	s.log.Debug("random pick", "policy", policy.String(), "requested", n, "picked", len(picked))
	return picked
}

// QuickAdd splits raw on newlines and commas, adds the new words to the
// library and stages every entry as the selection.
func (s *Session) QuickAdd(raw string) ([]domain.Word, error) {
	entries := domain.SplitQuickAdd(raw)
	added, err := s.Library.AddWords(entries)
	if err != nil {
		return nil, err
	}
	s.selection = entries
	return added, nil
}

// BulkAdd adds one word per non-blank line of raw
func (s *Session) BulkAdd(raw string) ([]domain.Word, error) {
	return s.Library.AddWords(domain.SplitLines(raw))
}

// SaveSelection saves the staged words as a sheet. The selection is kept.
func (s *Session) SaveSelection() (domain.Sheet, error) {
	return s.History.SaveSheet(s.selection, s.settings.LinesPerWord)
}

// Regenerate stages the words of a saved sheet and restores its line count.
// Words deleted from the library since are staged as plain text. When the
// line count cannot be saved the selection is left as it was.
func (s *Session) Regenerate(sheetID string) (domain.Sheet, error) {
	sheet, ok := s.History.Get(sheetID)
	if !ok {
		return domain.Sheet{}, fmt.Errorf("sheet %s: %w", sheetID, ErrNotFound)
	}

	if sheet.LinesPerWord > 0 && sheet.LinesPerWord != s.settings.LinesPerWord {
		next := s.settings
		next.LinesPerWord = sheet.LinesPerWord
		if err := s.UpdateSettings(next); err != nil {
			return sheet, err
		}
	}
	s.selection = slices.Clone(sheet.Words)
	return sheet, nil
}

// Import decodes a .json or .csv library file and adds its words.
// Decoding happens first, so a malformed file changes nothing.
func (s *Session) Import(ctx context.Context, filename string, data []byte) ([]domain.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	texts, err := codec.Decode(filename, data)
	if err != nil {
		s.log.Warn("import rejected", "file", filename, "error", err)
		return nil, err
	}
	added, err := s.Library.AddWords(texts)
	if err != nil {
		return nil, err
	}
	s.log.Info("library imported", "file", filename, "entries", len(texts), "added", len(added))
	return added, nil
}

// Export encodes the library in stored order
func (s *Session) Export(format codec.Format) (codec.Payload, error) {
	return codec.Export(format, s.Library.Snapshot().Words)
}

// Worksheet renders the selection as a plain-text practice sheet
func (s *Session) Worksheet() string {
	return domain.WorksheetText(s.selection, s.settings.LinesPerWord, s.settings.IncludeNameDate, s.now())
}

// WorksheetMarkdown renders the selection as markdown under title
func (s *Session) WorksheetMarkdown(title string) string {
	return domain.WorksheetMarkdown(title, s.selection, s.settings.LinesPerWord, s.settings.IncludeNameDate, s.now())
}
