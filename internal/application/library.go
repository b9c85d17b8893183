package application

import (
	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// LibraryManager owns the word library and its persistence.
// Every successful mutation replaces the snapshot and writes it to the store;
// a failed write leaves the previous snapshot in place.
type LibraryManager struct {
	store ports.Store
	env
	lib domain.Library
}

// NewLibraryManager loads the stored library. A missing or malformed blob
// yields an empty library.
func NewLibraryManager(store ports.Store, opts ...Option) *LibraryManager {
	return newLibraryManager(store, newEnv(opts))
}

func newLibraryManager(store ports.Store, e env) *LibraryManager {
	var words []domain.Word
	if !loadBlob(store, e.log, ports.KeyLibrary, &words) {
		words = nil
	}
	return &LibraryManager{store: store, env: e, lib: domain.NewLibrary(words)}
}

// Snapshot returns the current library snapshot
func (m *LibraryManager) Snapshot() domain.Library {
	return m.lib
}

// List returns every word ordered by text
func (m *LibraryManager) List() []domain.Word {
	return m.lib.Sorted(m.collator)
}

// Filter returns the words whose text contains query, ordered by text
func (m *LibraryManager) Filter(query string) []domain.Word {
	return m.lib.Filter(m.collator, query)
}

// Get returns the word with the given id
func (m *LibraryManager) Get(id string) (domain.Word, bool) {
	return m.lib.Get(id)
}

// FindIDByText returns the id of the word matching text case-insensitively
func (m *LibraryManager) FindIDByText(text string) (string, bool) {
	return m.lib.FindIDByText(text)
}

// AddWords splits entries on commas, drops blanks and case-insensitive
// duplicates, and appends what remains with zero usage. It returns the words
// actually added; when nothing is new the store is not touched.
func (m *LibraryManager) AddWords(entries []string) ([]domain.Word, error) {
	texts := m.lib.NewTexts(entries)
	if len(texts) == 0 {
		return []domain.Word{}, nil
	}

	added := make([]domain.Word, len(texts))
	for i, t := range texts {
		added[i] = domain.Word{ID: m.newID("w_"), Text: t}
	}

	next := m.lib.WithAdded(added...)
	if err := m.persist(next); err != nil {
		return nil, err
	}
	m.log.Info("words added", "count", len(added), "library_size", next.Len())
	return added, nil
}

// DeleteWord removes the word with the given id. Unknown ids are a no-op.
// Sheets that reference the word keep their copy of its text.
func (m *LibraryManager) DeleteWord(id string) (bool, error) {
	next, ok := m.lib.Without(id)
	if !ok {
		return false, nil
	}
	if err := m.persist(next); err != nil {
		return false, err
	}
	m.log.Info("word deleted", "id", id)
	return true, nil
}

func (m *LibraryManager) persist(next domain.Library) error {
	if err := saveBlobs(m.store, m.blob(next)); err != nil {
		m.log.Error("failed to persist library", "error", err)
		return err
	}
	m.lib = next
	return nil
}

func (m *LibraryManager) blob(lib domain.Library) blob {
	words := lib.Words
	if words == nil {
		words = []domain.Word{}
	}
	return blob{key: ports.KeyLibrary, value: words}
}

// replace installs a snapshot that has already been persisted
func (m *LibraryManager) replace(next domain.Library) {
	m.lib = next
}
