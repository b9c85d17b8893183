package application

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

func TestLibraryManager_AddWordsDedupes(t *testing.T) {
	var logs bytes.Buffer
	m := NewLibraryManager(newTestStore(), testOptions(&logs)...)

	added, err := m.AddWords([]string{"Cat", "cat", " Dog "})
	require.NoError(t, err)

	require.Len(t, added, 2)
	assert.Equal(t, "Cat", added[0].Text)
	assert.Equal(t, "Dog", added[1].Text)
	assert.Equal(t, "w_1", added[0].ID)
	assert.Zero(t, added[0].UsageCount)
	assert.Zero(t, added[0].LastUsedAt)
	assert.Equal(t, 2, m.Snapshot().Len())
}

func TestLibraryManager_AddWordsSplitsCommas(t *testing.T) {
	var logs bytes.Buffer
	m := NewLibraryManager(newTestStore(), testOptions(&logs)...)

	_, err := m.AddWords([]string{"sun, moon,, star", "MOON"})
	require.NoError(t, err)

	assert.Equal(t, []string{"sun", "moon", "star"}, domain.Texts(m.Snapshot().Words))
}

func TestLibraryManager_AddExistingIsNoop(t *testing.T) {
	var logs bytes.Buffer
	store := newTestStore()
	m := NewLibraryManager(store, testOptions(&logs)...)

	_, err := m.AddWords([]string{"apple"})
	require.NoError(t, err)
	before := store.Snapshot()[ports.KeyLibrary]
	writes := store.Writes()

	added, err := m.AddWords([]string{" APPLE ", ""})
	require.NoError(t, err)
	assert.Empty(t, added)

	added, err = m.AddWords(nil)
	require.NoError(t, err)
	assert.Empty(t, added)

	assert.Equal(t, writes, store.Writes())
	assert.Equal(t, before, store.Snapshot()[ports.KeyLibrary])
}

func TestLibraryManager_PersistsAndReloads(t *testing.T) {
	var logs bytes.Buffer
	store := newTestStore()
	m := NewLibraryManager(store, testOptions(&logs)...)
	_, err := m.AddWords([]string{"river", "lake"})
	require.NoError(t, err)

	reloaded := NewLibraryManager(store, testOptions(&logs)...)
	assert.Equal(t, m.Snapshot().Words, reloaded.Snapshot().Words)
}

func TestLibraryManager_MalformedBlobFallsBack(t *testing.T) {
	var logs bytes.Buffer
	store := newTestStore()
	require.NoError(t, store.Set(ports.KeyLibrary, []byte("{not json")))

	m := NewLibraryManager(store, testOptions(&logs)...)
	assert.Zero(t, m.Snapshot().Len())
	assert.Contains(t, logs.String(), "stored value is malformed")
}

func TestLibraryManager_DeleteWordIdempotent(t *testing.T) {
	var logs bytes.Buffer
	store := newTestStore()
	m := NewLibraryManager(store, testOptions(&logs)...)
	added, err := m.AddWords([]string{"one", "two"})
	require.NoError(t, err)

	deleted, err := m.DeleteWord(added[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	state := store.Snapshot()
	deleted, err = m.DeleteWord(added[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, state, store.Snapshot())
	assert.Equal(t, []string{"two"}, domain.Texts(m.Snapshot().Words))
}

func TestLibraryManager_FailedPersistKeepsSnapshot(t *testing.T) {
	var logs bytes.Buffer
	store := newTestStore()
	m := NewLibraryManager(store, testOptions(&logs)...)
	_, err := m.AddWords([]string{"keep"})
	require.NoError(t, err)

	store.FailSet = errors.New("disk full")
	_, err = m.AddWords([]string{"lost"})
	require.Error(t, err)

	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ports.KeyLibrary, perr.Key)
	assert.Equal(t, []string{"keep"}, domain.Texts(m.Snapshot().Words))
}

func TestLibraryManager_FindAndList(t *testing.T) {
	var logs bytes.Buffer
	m := NewLibraryManager(newTestStore(), testOptions(&logs)...)
	_, err := m.AddWords([]string{"pear", "Apple", "banana", "pineapple"})
	require.NoError(t, err)

	id, ok := m.FindIDByText("  APPLE")
	require.True(t, ok)
	w, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Apple", w.Text)

	_, ok = m.FindIDByText("grape")
	assert.False(t, ok)

	assert.Equal(t, []string{"Apple", "banana", "pear", "pineapple"}, domain.Texts(m.List()))
	assert.Equal(t, []string{"Apple", "pineapple"}, domain.Texts(m.Filter("APP")))
}
