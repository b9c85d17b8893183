package domain

import (
	"fmt"
	"slices"
	"strings"
)

// LeastUsedWindow is how many of the least-used candidates compete for each pick
const LeastUsedWindow = 8

// Rand is the random source consulted by the selection policies.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Policy names a selection algorithm
type Policy int

const (
	PolicyLeastUsed Policy = iota
	PolicyUniform
)

// String returns the config name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyUniform:
		return "uniform"
	case PolicyLeastUsed:
		return "least-used"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a config name into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "least-used", "least_used", "leastused", "":
		return PolicyLeastUsed, nil
	case "uniform":
		return PolicyUniform, nil
	default:
		return 0, fmt.Errorf("unknown selection policy: %q", s)
	}
}

// SelectUniform draws up to n distinct words uniformly at random using a
// partial Fisher-Yates shuffle over a copy of words.
func SelectUniform(words []Word, n int, rng Rand) []Word {
	if n <= 0 || len(words) == 0 {
		return []Word{}
	}
	pool := slices.Clone(words)
	n = min(n, len(pool))
	for i := range n {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// SelectLeastUsed draws up to n distinct words, favouring those with the
// lowest usage count. Words whose id is in excluded are never chosen.
// Candidates are ordered by (UsageCount, Text) and each pick is taken
// uniformly from the first LeastUsedWindow remaining entries.
func SelectLeastUsed(words []Word, n int, excluded map[string]struct{}, c Collator, rng Rand) []Word {
	if n <= 0 {
		return []Word{}
	}

	pool := make([]Word, 0, len(words))
	for _, w := range words {
		if _, skip := excluded[w.ID]; !skip {
			pool = append(pool, w)
		}
	}
	slices.SortStableFunc(pool, func(a, b Word) int {
		if a.UsageCount != b.UsageCount {
			return a.UsageCount - b.UsageCount
		}
		return compareText(c, a.Text, b.Text)
	})

	out := make([]Word, 0, min(n, len(pool)))
	for len(pool) > 0 && len(out) < n {
		idx := rng.IntN(min(LeastUsedWindow, len(pool)))
		out = append(out, pool[idx])
		pool = slices.Delete(pool, idx, idx+1)
	}
	return out
}

// Select runs the given policy against library and history snapshots.
// The least-used policy excludes words from the settings.ExcludeRecent newest sheets.
func Select(p Policy, lib Library, hist History, settings Settings, n int, c Collator, rng Rand) []Word {
	if p == PolicyUniform {
		return SelectUniform(lib.Words, n, rng)
	}

	excluded := make(map[string]struct{})
	for _, id := range hist.RecentWordIDs(settings.ExcludeRecent) {
		excluded[id] = struct{}{}
	}
	return SelectLeastUsed(lib.Words, n, excluded, c, rng)
}

// Texts returns the text of each word, in order
func Texts(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
