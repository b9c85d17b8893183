package commands

import (
	"context"
	"fmt"
	"strings"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// AddWordsResult contains the result of adding words
type AddWordsResult struct {
	Added   []domain.Word
	Skipped int
	Message string
}

// AddWordCommand adds a single word typed by the user
type AddWordCommand struct {
	session *application.Session
	Text    string
}

// NewAddWordCommand creates a new AddWordCommand
func NewAddWordCommand(session *application.Session, text string) *AddWordCommand {
	return &AddWordCommand{session: session, Text: text}
}

// Validate checks that the word is not blank
func (c *AddWordCommand) Validate() error {
	return application.ValidateRequired("word", c.Text)
}

// Execute runs the add word command
func (c *AddWordCommand) Execute(ctx context.Context) (*AddWordsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return addWords(c.session, []string{c.Text})
}

// AddWordsCommand adds a batch of comma or line separated entries.
// An empty batch is a no-op, not an error.
type AddWordsCommand struct {
	session *application.Session
	Entries []string
}

// NewAddWordsCommand creates a new AddWordsCommand
func NewAddWordsCommand(session *application.Session, entries []string) *AddWordsCommand {
	return &AddWordsCommand{session: session, Entries: entries}
}

// Execute runs the add words command
func (c *AddWordsCommand) Execute(ctx context.Context) (*AddWordsResult, error) {
	var entries []string
	for _, e := range c.Entries {
		entries = append(entries, domain.SplitLines(e)...)
	}
	return addWords(c.session, entries)
}

func addWords(session *application.Session, entries []string) (*AddWordsResult, error) {
	added, err := session.Library.AddWords(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to add words: %w", err)
	}

	skipped := len(domain.SplitEntries(entries)) - len(added)
	return &AddWordsResult{
		Added:   added,
		Skipped: skipped,
		Message: addMessage(added, skipped),
	}, nil
}

func addMessage(added []domain.Word, skipped int) string {
	switch {
	case len(added) == 0 && skipped == 0:
		return "Nothing to add"
	case len(added) == 0:
		return fmt.Sprintf("No new words (%d duplicate(s) skipped)", skipped)
	case skipped == 0:
		return fmt.Sprintf("Added %d word(s): %s", len(added), strings.Join(domain.Texts(added), ", "))
	default:
		return fmt.Sprintf("Added %d word(s): %s (%d duplicate(s) skipped)",
			len(added), strings.Join(domain.Texts(added), ", "), skipped)
	}
}

// DeleteWordResult contains the result of deleting a word
type DeleteWordResult struct {
	ID      string
	Deleted bool
	Message string
}

// DeleteWordCommand removes a word by id or by text
type DeleteWordCommand struct {
	session *application.Session
	Ref     string
}

// NewDeleteWordCommand creates a new DeleteWordCommand.
// ref is a word id or its text.
func NewDeleteWordCommand(session *application.Session, ref string) *DeleteWordCommand {
	return &DeleteWordCommand{session: session, Ref: ref}
}

// Validate checks that a reference was given
func (c *DeleteWordCommand) Validate() error {
	return application.ValidateRequired("wordID", c.Ref)
}

// Execute runs the delete word command. Unknown words are a no-op.
func (c *DeleteWordCommand) Execute(ctx context.Context) (*DeleteWordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.Ref)
	if _, ok := c.session.Library.Get(id); !ok {
		if found, ok := c.session.Library.FindIDByText(id); ok {
			id = found
		}
	}

	deleted, err := c.session.Library.DeleteWord(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete word: %w", err)
	}

	msg := fmt.Sprintf("Deleted word: %s", c.Ref)
	if !deleted {
		msg = fmt.Sprintf("No such word: %s", c.Ref)
	}
	return &DeleteWordResult{ID: id, Deleted: deleted, Message: msg}, nil
}

// ListWordsCommand lists library words ordered by text
type ListWordsCommand struct {
	session *application.Session
	Query   string
}

// NewListWordsCommand creates a new ListWordsCommand.
// A non-blank query keeps words containing it.
func NewListWordsCommand(session *application.Session, query string) *ListWordsCommand {
	return &ListWordsCommand{session: session, Query: query}
}

// Execute runs the list words command
func (c *ListWordsCommand) Execute(ctx context.Context) ([]domain.Word, error) {
	return c.session.Library.Filter(c.Query), nil
}
