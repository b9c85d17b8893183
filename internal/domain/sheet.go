package domain

import (
	"cmp"
	"slices"
)

// Sheet is a saved practice sheet in the history
type Sheet struct {
	ID           string   `json:"id"`
	CreatedAt    int64    `json:"createdAt"` // Unix milliseconds
	Words        []string `json:"words"`
	WordIDs      []string `json:"wordIds"`
	LinesPerWord int      `json:"linesPerWord"`
}

// History is a versioned snapshot of saved sheets, in insertion order.
type History struct {
	Version uint64
	Sheets  []Sheet
}

// NewHistory wraps sheets in a snapshot at version 0
func NewHistory(sheets []Sheet) History {
	return History{Sheets: slices.Clone(sheets)}
}

// Len returns the number of sheets
func (h History) Len() int {
	return len(h.Sheets)
}

// WithSheet returns a new snapshot with the sheet appended
func (h History) WithSheet(s Sheet) History {
	next := make([]Sheet, 0, len(h.Sheets)+1)
	next = append(next, h.Sheets...)
	next = append(next, s)
	return History{Version: h.Version + 1, Sheets: next}
}

// Without returns a new snapshot without the sheet with the given id.
// The second result is false when no sheet matched.
func (h History) Without(id string) (History, bool) {
	idx := slices.IndexFunc(h.Sheets, func(s Sheet) bool { return s.ID == id })
	if idx < 0 {
		return h, false
	}
	next := slices.Delete(slices.Clone(h.Sheets), idx, idx+1)
	return History{Version: h.Version + 1, Sheets: next}, true
}

// Get returns the sheet with the given id
func (h History) Get(id string) (Sheet, bool) {
	for _, s := range h.Sheets {
		if s.ID == id {
			return s, true
		}
	}
	return Sheet{}, false
}

// Newest returns a copy of the sheets ordered by CreatedAt, newest first.
// Sheets created at the same instant keep the later-saved one first.
func (h History) Newest() []Sheet {
	out := slices.Clone(h.Sheets)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b Sheet) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// RecentWordIDs returns the union of word ids used by the n newest sheets,
// in first-seen order. n <= 0 yields an empty result.
func (h History) RecentWordIDs(n int) []string {
	if n <= 0 {
		return []string{}
	}
	recent := h.Newest()
	if n < len(recent) {
		recent = recent[:n]
	}

	seen := make(map[string]struct{})
	ids := []string{}
	for _, s := range recent {
		for _, id := range s.WordIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// ResolveIDs maps each text to a library id; unresolved texts are omitted
func (l Library) ResolveIDs(texts []string) []string {
	index := make(map[string]string, len(l.Words))
	for _, w := range l.Words {
		key := FoldKey(w.Text)
		if _, ok := index[key]; !ok {
			index[key] = w.ID
		}
	}

	ids := make([]string, 0, len(texts))
	for _, t := range texts {
		if id, ok := index[FoldKey(t)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
