package application

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/domain"
)

func newTracker(t *testing.T, opts ...Option) (*LibraryManager, *HistoryTracker, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	all := append(testOptions(logs), opts...)
	store := newTestStore()
	lib := NewLibraryManager(store, all...)
	return lib, NewHistoryTracker(store, lib, all...), logs
}

func TestHistoryTracker_SaveEmptySelection(t *testing.T) {
	_, h, _ := newTracker(t)

	_, err := h.SaveSheet(nil, 3)
	require.ErrorIs(t, err, ErrNothingToSave)
	assert.Zero(t, h.Snapshot().Len())
}

func TestHistoryTracker_SaveResolvesAndTracksUsage(t *testing.T) {
	lib, h, _ := newTracker(t)
	added, err := lib.AddWords([]string{"cat", "dog", "owl"})
	require.NoError(t, err)

	sheet, err := h.SaveSheet([]string{"CAT", "dog", "cat", "zebra"}, 0)
	require.NoError(t, err)

	assert.Equal(t, "s_4", sheet.ID)
	assert.Equal(t, fixedNow.UnixMilli(), sheet.CreatedAt)
	assert.Equal(t, []string{"CAT", "dog", "cat", "zebra"}, sheet.Words)
	assert.Equal(t, []string{added[0].ID, added[1].ID, added[0].ID}, sheet.WordIDs)
	assert.Equal(t, 1, sheet.LinesPerWord)

	cat, _ := lib.Get(added[0].ID)
	dog, _ := lib.Get(added[1].ID)
	owl, _ := lib.Get(added[2].ID)
	assert.Equal(t, 1, cat.UsageCount)
	assert.Equal(t, fixedNow.UnixMilli(), cat.LastUsedAt)
	assert.Equal(t, 1, dog.UsageCount)
	assert.Zero(t, owl.UsageCount)
	assert.Zero(t, owl.LastUsedAt)
}

func TestHistoryTracker_UsageTrackingDisabled(t *testing.T) {
	lib, h, _ := newTracker(t, WithUsageTracking(false))
	added, err := lib.AddWords([]string{"cat"})
	require.NoError(t, err)

	sheet, err := h.SaveSheet([]string{"cat"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{added[0].ID}, sheet.WordIDs)

	cat, _ := lib.Get(added[0].ID)
	assert.Zero(t, cat.UsageCount)
}

func TestHistoryTracker_FailedSaveChangesNothing(t *testing.T) {
	logs := &bytes.Buffer{}
	store := newTestStore()
	lib := NewLibraryManager(store, testOptions(logs)...)
	h := NewHistoryTracker(store, lib, testOptions(logs)...)
	_, err := lib.AddWords([]string{"cat"})
	require.NoError(t, err)

	store.FailSet = errors.New("read-only")
	_, err = h.SaveSheet([]string{"cat"}, 3)
	require.Error(t, err)

	assert.Zero(t, h.Snapshot().Len())
	assert.Zero(t, lib.Snapshot().Words[0].UsageCount)
}

func TestHistoryTracker_ReloadAndDelete(t *testing.T) {
	logs := &bytes.Buffer{}
	store := newTestStore()
	lib := NewLibraryManager(store, testOptions(logs)...)
	h := NewHistoryTracker(store, lib, testOptions(logs)...)

	first, err := h.SaveSheet([]string{"alpha"}, 2)
	require.NoError(t, err)
	_, err = h.SaveSheet([]string{"beta"}, 2)
	require.NoError(t, err)

	reloaded := NewHistoryTracker(store, lib, testOptions(logs)...)
	assert.Equal(t, h.Snapshot().Sheets, reloaded.Snapshot().Sheets)

	deleted, err := reloaded.DeleteSheet(first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = reloaded.DeleteSheet(first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, reloaded.Snapshot().Len())
}

func TestHistoryTracker_RecentWordIDs(t *testing.T) {
	lib, h, _ := newTracker(t)
	added, err := lib.AddWords([]string{"a", "b", "c"})
	require.NoError(t, err)

	_, err = h.SaveSheet([]string{"a", "b"}, 1)
	require.NoError(t, err)
	_, err = h.SaveSheet([]string{"c", "b"}, 1)
	require.NoError(t, err)

	assert.Empty(t, h.RecentWordIDs(0))
	// Both sheets share a timestamp; the later save counts as newer.
	assert.Equal(t, []string{added[2].ID, added[1].ID}, h.RecentWordIDs(1))
	assert.Equal(t, []string{added[2].ID, added[1].ID, added[0].ID}, h.RecentWordIDs(5))
}

func TestHistoryTracker_DeletedWordKeepsSheetText(t *testing.T) {
	lib, h, _ := newTracker(t)
	added, err := lib.AddWords([]string{"gone"})
	require.NoError(t, err)
	sheet, err := h.SaveSheet([]string{"gone"}, 1)
	require.NoError(t, err)

	_, err = lib.DeleteWord(added[0].ID)
	require.NoError(t, err)

	got, ok := h.Get(sheet.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"gone"}, got.Words)
	assert.Equal(t, []string{added[0].ID}, got.WordIDs)
	assert.Equal(t, []domain.Sheet{got}, h.List())
}
