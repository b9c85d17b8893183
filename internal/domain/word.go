package domain

import (
	"slices"
	"strings"
)

// Word is a single entry in the word library
type Word struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	UsageCount int    `json:"usageCount"`
	LastUsedAt int64  `json:"lastUsedAt"` // Unix milliseconds, 0 when never used
}

// Library is a versioned snapshot of the word collection.
// Methods never modify the receiver; mutations return a new snapshot.
type Library struct {
	Version uint64
	Words   []Word
}

// NewLibrary wraps words in a snapshot at version 0
func NewLibrary(words []Word) Library {
	return Library{Words: slices.Clone(words)}
}

// Len returns the number of words
func (l Library) Len() int {
	return len(l.Words)
}

// FoldKey returns the case-insensitive dedupe key for a word text
func FoldKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SplitEntries splits raw entries on commas, trims each part and drops
// empty results. Order is preserved and duplicates are kept.
func SplitEntries(entries []string) []string {
	var out []string
	for _, entry := range entries {
		for part := range strings.SplitSeq(entry, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// SplitLines splits text into trimmed, non-empty lines
func SplitLines(raw string) []string {
	var out []string
	for line := range strings.Lines(raw) {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitQuickAdd splits quick-add text on newlines and commas
func SplitQuickAdd(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	var out []string
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NewTexts returns the normalized texts from entries that are not yet in the
// library, deduplicated within the batch. First occurrence wins.
func (l Library) NewTexts(entries []string) []string {
	existing := make(map[string]struct{}, len(l.Words))
	for _, w := range l.Words {
		existing[FoldKey(w.Text)] = struct{}{}
	}

	var out []string
	for _, text := range SplitEntries(entries) {
		key := FoldKey(text)
		if _, ok := existing[key]; ok {
			continue
		}
		existing[key] = struct{}{}
		out = append(out, text)
	}
	return out
}

// WithAdded returns a new snapshot with words appended
func (l Library) WithAdded(words ...Word) Library {
	if len(words) == 0 {
		return l
	}
	next := make([]Word, 0, len(l.Words)+len(words))
	next = append(next, l.Words...)
	next = append(next, words...)
	return Library{Version: l.Version + 1, Words: next}
}

// Without returns a new snapshot without the word with the given id.
// The second result is false when no word matched; the snapshot is then unchanged.
func (l Library) Without(id string) (Library, bool) {
	idx := slices.IndexFunc(l.Words, func(w Word) bool { return w.ID == id })
	if idx < 0 {
		return l, false
	}
	next := slices.Delete(slices.Clone(l.Words), idx, idx+1)
	return Library{Version: l.Version + 1, Words: next}, true
}

// FindIDByText returns the id of the word whose text matches case-insensitively
func (l Library) FindIDByText(text string) (string, bool) {
	key := FoldKey(text)
	if key == "" {
		return "", false
	}
	for _, w := range l.Words {
		if FoldKey(w.Text) == key {
			return w.ID, true
		}
	}
	return "", false
}

// Get returns the word with the given id
func (l Library) Get(id string) (Word, bool) {
	for _, w := range l.Words {
		if w.ID == id {
			return w, true
		}
	}
	return Word{}, false
}

// WithUsage returns a new snapshot where every word in ids has its usage
// count incremented once and LastUsedAt set to usedAt.
func (l Library) WithUsage(ids []string, usedAt int64) Library {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	next := slices.Clone(l.Words)
	for i := range next {
		if _, ok := set[next[i].ID]; ok {
			next[i].UsageCount++
			next[i].LastUsedAt = usedAt
		}
	}
	return Library{Version: l.Version + 1, Words: next}
}

// Sorted returns a copy of the words ordered by text
func (l Library) Sorted(c Collator) []Word {
	out := slices.Clone(l.Words)
	slices.SortStableFunc(out, func(a, b Word) int {
		return compareText(c, a.Text, b.Text)
	})
	return out
}

// Filter returns the sorted words whose text contains query, ignoring case.
// A blank query returns every word.
func (l Library) Filter(c Collator, query string) []Word {
	q := FoldKey(query)
	sorted := l.Sorted(c)
	if q == "" {
		return sorted
	}
	return slices.DeleteFunc(sorted, func(w Word) bool {
		return !strings.Contains(strings.ToLower(w.Text), q)
	})
}
