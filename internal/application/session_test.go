package application

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/adapters/memory"
	"spellsheet/internal/codec"
	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

type stubSeed struct {
	data  []byte
	err   error
	calls int
}

func (s *stubSeed) Fetch(context.Context) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func openSession(t *testing.T, store *memory.Store, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	return Open(context.Background(), store, append(testOptions(logs), opts...)...), logs
}

func TestOpen_SeedsEmptyLibrary(t *testing.T) {
	seed := &stubSeed{data: []byte(`{"library":["cat",{"text":"dog"},"Cat"]}`)}
	s, _ := openSession(t, newTestStore(), WithSeedSource(seed))

	assert.Equal(t, 1, seed.calls)
	assert.Equal(t, []string{"cat", "dog"}, domain.Texts(s.Library.Snapshot().Words))
}

func TestOpen_SeedSkippedWhenLibraryHasWords(t *testing.T) {
	store := newTestStore()
	first, _ := openSession(t, store)
	_, err := first.Library.AddWords([]string{"existing"})
	require.NoError(t, err)

	seed := &stubSeed{data: []byte(`["new"]`)}
	s, _ := openSession(t, store, WithSeedSource(seed))

	assert.Zero(t, seed.calls)
	assert.Equal(t, []string{"existing"}, domain.Texts(s.Library.Snapshot().Words))
}

func TestOpen_SeedFailureIgnored(t *testing.T) {
	tests := []struct {
		name string
		seed *stubSeed
	}{
		{name: "fetch error", seed: &stubSeed{err: errors.New("offline")}},
		{name: "malformed payload", seed: &stubSeed{data: []byte("<html>")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			s, logs := openSession(t, store, WithSeedSource(tt.seed))

			assert.Zero(t, s.Library.Snapshot().Len())
			assert.Zero(t, store.Writes())
			assert.Contains(t, logs.String(), "starter list")
		})
	}
}

func TestOpen_SettingsMergeOverDefaults(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Set(ports.KeySettings, []byte(`{"excludeRecent":2}`)))

	s, _ := openSession(t, store)
	assert.Equal(t, domain.Settings{LinesPerWord: domain.DefaultLinesPerWord, ExcludeRecent: 2}, s.Settings())
}

func TestOpen_MalformedSettingsUseDefaults(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Set(ports.KeySettings, []byte(`"oops"`)))

	s, _ := openSession(t, store)
	assert.Equal(t, domain.DefaultSettings(), s.Settings())
}

func TestSession_UpdateSettings(t *testing.T) {
	store := newTestStore()
	s, _ := openSession(t, store)

	err := s.UpdateSettings(domain.Settings{LinesPerWord: 0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "linesPerWord", verr.Field)
	assert.Equal(t, domain.DefaultSettings(), s.Settings())

	want := domain.Settings{LinesPerWord: 5, ExcludeRecent: 1, IncludeNameDate: true}
	require.NoError(t, s.UpdateSettings(want))

	reopened, _ := openSession(t, store)
	assert.Equal(t, want, reopened.Settings())
}

func TestSession_SelectionEditing(t *testing.T) {
	s, _ := openSession(t, newTestStore())

	assert.True(t, s.Pick("one"))
	assert.True(t, s.Pick("two"))
	assert.False(t, s.Pick("one"))
	assert.False(t, s.Pick("  "))
	assert.True(t, s.Pick("three"))

	assert.True(t, s.MoveUp(2))
	assert.Equal(t, []string{"one", "three", "two"}, s.Selection())
	assert.False(t, s.MoveUp(0))

	assert.True(t, s.MoveDown(0))
	assert.Equal(t, []string{"three", "one", "two"}, s.Selection())
	assert.False(t, s.MoveDown(2))

	assert.True(t, s.Unpick(1))
	assert.False(t, s.Unpick(5))
	assert.Equal(t, []string{"three", "two"}, s.Selection())

	s.ClearSelection()
	assert.Empty(t, s.Selection())
}

func TestSession_PickRandomAvoidsRecent(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	_, err := s.Library.AddWords([]string{"ant", "bee", "cow", "doe"})
	require.NoError(t, err)
	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 3, ExcludeRecent: 1}))

	s.SetSelection([]string{"ant", "bee"})
	_, err = s.SaveSelection()
	require.NoError(t, err)

	picked := s.PickRandom(4)
	assert.Equal(t, []string{"cow", "doe"}, domain.Texts(picked))
	assert.Equal(t, []string{"cow", "doe"}, s.Selection())
}

func TestSession_PickRandomClampsCount(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	_, err := s.Library.AddWords([]string{"ant", "bee"})
	require.NoError(t, err)

	assert.Len(t, s.PickRandom(0), 1)
	assert.Len(t, s.PickRandomWith(domain.PolicyUniform, 10), 2)
}

func TestSession_QuickAdd(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	_, err := s.Library.AddWords([]string{"kite"})
	require.NoError(t, err)

	added, err := s.QuickAdd("Kite, lamp\nmap,\n\nlamp")
	require.NoError(t, err)

	assert.Equal(t, []string{"lamp", "map"}, domain.Texts(added))
	assert.Equal(t, []string{"Kite", "lamp", "map", "lamp"}, s.Selection())
}

func TestSession_BulkAdd(t *testing.T) {
	s, _ := openSession(t, newTestStore())

	added, err := s.BulkAdd("first\n  second  \n\nthird, fourth\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, domain.Texts(added))
}

func TestSession_SaveSelectionUsesSettings(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	_, err := s.SaveSelection()
	require.ErrorIs(t, err, ErrNothingToSave)

	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 4}))
	s.SetSelection([]string{"sky", " ", "sea"})

	sheet, err := s.SaveSelection()
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.LinesPerWord)
	assert.Equal(t, []string{"sky", "sea"}, sheet.Words)
	assert.Empty(t, sheet.WordIDs)
	assert.Equal(t, []string{"sky", "sea"}, s.Selection())
}

func TestSession_Regenerate(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 6}))
	s.SetSelection([]string{"red", "blue"})
	sheet, err := s.SaveSelection()
	require.NoError(t, err)

	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 2}))
	s.ClearSelection()

	_, err = s.Regenerate(sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, s.Selection())
	assert.Equal(t, 6, s.Settings().LinesPerWord)

	_, err = s.Regenerate("s_missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSession_RegenerateKeepsLargeLineCount(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Set(ports.KeySettings, []byte(`{"linesPerWord":60}`)))
	s, _ := openSession(t, store)
	require.Equal(t, 60, s.Settings().LinesPerWord)

	s.SetSelection([]string{"cat"})
	sheet, err := s.SaveSelection()
	require.NoError(t, err)
	assert.Equal(t, 60, sheet.LinesPerWord)

	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 3}))
	_, err = s.Regenerate(sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, s.Settings().LinesPerWord)
}

func TestSession_RegenerateFailureLeavesSelection(t *testing.T) {
	store := newTestStore()
	s, _ := openSession(t, store)
	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 5}))
	s.SetSelection([]string{"cat"})
	sheet, err := s.SaveSelection()
	require.NoError(t, err)

	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 3}))
	s.SetSelection([]string{"other"})
	store.FailSet = errors.New("disk full")

	_, err = s.Regenerate(sheet.ID)
	require.Error(t, err)
	assert.Equal(t, []string{"other"}, s.Selection())
	assert.Equal(t, 3, s.Settings().LinesPerWord)
}

func TestSession_ImportAllOrNothing(t *testing.T) {
	store := newTestStore()
	s, _ := openSession(t, store)

	_, err := s.Import(context.Background(), "words.json", []byte(`{"library": [`))
	require.ErrorIs(t, err, ErrInvalidFormat)
	assert.Zero(t, store.Writes())

	_, err = s.Import(context.Background(), "words.txt", []byte("cat"))
	require.ErrorIs(t, err, ErrUnsupportedFileType)

	// The quoted field decodes as one entry, then AddWords splits it on the comma
	added, err := s.Import(context.Background(), "Words.CSV", []byte("word\ncat\n\"coat, rack\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "coat", "rack"}, domain.Texts(added))
}

func TestSession_ImportHonoursCancel(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Import(ctx, "words.json", []byte(`["cat"]`))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSession_ExportRoundTrip(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	_, err := s.Library.AddWords([]string{"zoo", "apple"})
	require.NoError(t, err)

	payload, err := s.Export(codec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "library.json", payload.Filename)

	other, _ := openSession(t, newTestStore())
	added, err := other.Import(context.Background(), payload.Filename, payload.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{"zoo", "apple"}, domain.Texts(added))
}

func TestSession_Worksheet(t *testing.T) {
	s, _ := openSession(t, newTestStore())
	require.NoError(t, s.UpdateSettings(domain.Settings{LinesPerWord: 2, IncludeNameDate: true}))
	s.SetSelection([]string{"owl"})

	text := s.Worksheet()
	assert.Contains(t, text, "Date: 2026/03/14")
	assert.Contains(t, text, "1. owl")

	md := s.WorksheetMarkdown("Week 1")
	assert.Contains(t, md, "# Week 1")
	assert.Contains(t, md, "## 1. owl")
}
