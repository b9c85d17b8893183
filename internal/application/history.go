package application

import (
	"slices"

	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// HistoryTracker owns the saved sheets. Saving a sheet also feeds usage
// back into the library, and both blobs are written in one transaction.
type HistoryTracker struct {
	store   ports.Store
	library *LibraryManager
	env
	hist domain.History
}

// NewHistoryTracker loads the stored history. A missing or malformed blob
// yields an empty history.
func NewHistoryTracker(store ports.Store, library *LibraryManager, opts ...Option) *HistoryTracker {
	return newHistoryTracker(store, library, newEnv(opts))
}

func newHistoryTracker(store ports.Store, library *LibraryManager, e env) *HistoryTracker {
	var sheets []domain.Sheet
	if !loadBlob(store, e.log, ports.KeyHistory, &sheets) {
		sheets = nil
	}
	return &HistoryTracker{store: store, library: library, env: e, hist: domain.NewHistory(sheets)}
}

// Snapshot returns the current history snapshot
func (h *HistoryTracker) Snapshot() domain.History {
	return h.hist
}

// List returns the sheets newest first
func (h *HistoryTracker) List() []domain.Sheet {
	return h.hist.Newest()
}

// Get returns the sheet with the given id
func (h *HistoryTracker) Get(id string) (domain.Sheet, bool) {
	return h.hist.Get(id)
}

// RecentWordIDs returns the union of word ids used by the n newest sheets
func (h *HistoryTracker) RecentWordIDs(n int) []string {
	return h.hist.RecentWordIDs(n)
}

// SaveSheet records the selection as a new sheet. Texts are resolved to
// library ids at save time; texts missing from the library are left out of
// WordIDs. With usage tracking on, every referenced word has its usage
// count bumped once.
func (h *HistoryTracker) SaveSheet(words []string, linesPerWord int) (domain.Sheet, error) {
	if len(words) == 0 {
		return domain.Sheet{}, ErrNothingToSave
	}

	lib := h.library.Snapshot()
	now := h.now().UnixMilli()
	sheet := domain.Sheet{
		ID:           h.newID("s_"),
		CreatedAt:    now,
		Words:        slices.Clone(words),
		WordIDs:      lib.ResolveIDs(words),
		LinesPerWord: max(1, linesPerWord),
	}

	nextHist := h.hist.WithSheet(sheet)
	blobs := []blob{{key: ports.KeyHistory, value: nextHist.Sheets}}

	trackUsage := h.trackUsage && len(sheet.WordIDs) > 0
	var nextLib domain.Library
	if trackUsage {
		nextLib = lib.WithUsage(sheet.WordIDs, now)
		blobs = append(blobs, h.library.blob(nextLib))
	}

	if err := saveBlobs(h.store, blobs...); err != nil {
		h.log.Error("failed to persist sheet", "error", err)
		return domain.Sheet{}, err
	}

	h.hist = nextHist
	if trackUsage {
		h.library.replace(nextLib)
	}
	h.log.Info("sheet saved", "id", sheet.ID, "words", len(sheet.Words), "resolved", len(sheet.WordIDs))
	return sheet, nil
}

// DeleteSheet removes a sheet. Unknown ids are a no-op. Usage counts the
// sheet contributed are not reverted.
func (h *HistoryTracker) DeleteSheet(id string) (bool, error) {
	next, ok := h.hist.Without(id)
	if !ok {
		return false, nil
	}
	if err := saveBlobs(h.store, blob{key: ports.KeyHistory, value: nonNilSheets(next.Sheets)}); err != nil {
		h.log.Error("failed to persist history", "error", err)
		return false, err
	}
	h.hist = next
	h.log.Info("sheet deleted", "id", id)
	return true, nil
}

func nonNilSheets(sheets []domain.Sheet) []domain.Sheet {
	if sheets == nil {
		return []domain.Sheet{}
	}
	return sheets
}
