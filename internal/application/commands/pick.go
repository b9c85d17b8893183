package commands

import (
	"context"
	"fmt"
	"strings"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// DefaultPickCount is the random pick size when none is given
const DefaultPickCount = 10

// PickWordsResult contains the words chosen for the next sheet
type PickWordsResult struct {
	Words   []domain.Word
	Policy  domain.Policy
	Message string
}

// PickWordsCommand replaces the selection with randomly chosen words
type PickWordsCommand struct {
	session *application.Session
	Count   int
	// Policy overrides the session default when set
	Policy *domain.Policy
}

// NewPickWordsCommand creates a new PickWordsCommand
func NewPickWordsCommand(session *application.Session, count int, policy *domain.Policy) *PickWordsCommand {
	return &PickWordsCommand{session: session, Count: count, Policy: policy}
}

// Validate checks the requested count
func (c *PickWordsCommand) Validate() error {
	return application.ValidatePositive("count", c.Count)
}

// Execute runs the pick command. A library smaller than Count yields fewer words.
func (c *PickWordsCommand) Execute(ctx context.Context) (*PickWordsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	policy := c.session.Policy()
	if c.Policy != nil {
		policy = *c.Policy
	}

	words := c.session.PickRandomWith(policy, c.Count)
	msg := "Library is empty, nothing picked"
	if len(words) > 0 {
		msg = fmt.Sprintf("Picked %d word(s) (%s): %s", len(words), policy, strings.Join(domain.Texts(words), ", "))
	}
	return &PickWordsResult{Words: words, Policy: policy, Message: msg}, nil
}
