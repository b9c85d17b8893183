package commands

import (
	"context"
	"slices"
	"strings"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// SearchResult is a library word with a relevance score
type SearchResult struct {
	domain.Word
	Score int
}

// SearchWordsCommand searches the library with fuzzy matching
type SearchWordsCommand struct {
	session *application.Session
	Query   string
}

// NewSearchWordsCommand creates a new SearchWordsCommand
func NewSearchWordsCommand(session *application.Session, query string) *SearchWordsCommand {
	return &SearchWordsCommand{session: session, Query: query}
}

// Execute runs the search and returns scored results, best first
func (c *SearchWordsCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if query == "" {
		return nil, nil
	}
	return FuzzySort(c.session.Library.List(), query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Substring matches outrank any scattered match
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '\'') {
			score += 10 // word start
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores words against query and drops non-matches.
// Equal scores keep the input order.
func FuzzySort(words []domain.Word, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(words))
	for _, w := range words {
		if s := FuzzyScore(w.Text, query); s > 0 {
			scored = append(scored, SearchResult{Word: w, Score: s})
		}
	}

	slices.SortStableFunc(scored, func(a, b SearchResult) int {
		return b.Score - a.Score
	})
	return scored
}
