package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// SaveSheetResult contains the saved sheet
type SaveSheetResult struct {
	Sheet   domain.Sheet
	Message string
}

// SaveSheetCommand saves a sheet from explicit words, a random pick, or the
// current selection, in that order of precedence. Explicit words missing
// from the library are added first, as with quick add.
type SaveSheetCommand struct {
	session     *application.Session
	Words       []string
	RandomCount int
}

// NewSaveSheetCommand creates a new SaveSheetCommand
func NewSaveSheetCommand(session *application.Session, words []string, randomCount int) *SaveSheetCommand {
	return &SaveSheetCommand{session: session, Words: words, RandomCount: randomCount}
}

// Validate checks that words and a random pick are not both requested
func (c *SaveSheetCommand) Validate() error {
	if len(c.Words) > 0 && c.RandomCount > 0 {
		return &application.ValidationError{
			Field:   "words",
			Message: "give explicit words or a random count, not both",
		}
	}
	if c.RandomCount < 0 {
		return application.ValidatePositive("count", c.RandomCount)
	}
	return nil
}

// Execute runs the save sheet command
func (c *SaveSheetCommand) Execute(ctx context.Context) (*SaveSheetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch {
	case len(c.Words) > 0:
		if _, err := c.session.QuickAdd(strings.Join(c.Words, "\n")); err != nil {
			return nil, fmt.Errorf("failed to add words: %w", err)
		}
	case c.RandomCount > 0:
		c.session.PickRandom(c.RandomCount)
	}

	sheet, err := c.session.SaveSelection()
	if err != nil {
		if errors.Is(err, application.ErrNothingToSave) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save sheet: %w", err)
	}

	return &SaveSheetResult{
		Sheet:   sheet,
		Message: fmt.Sprintf("Saved sheet %s: %s", sheet.ID, strings.Join(sheet.Words, ", ")),
	}, nil
}

// ListSheetsCommand lists saved sheets newest first
type ListSheetsCommand struct {
	session *application.Session
	Limit   int
}

// NewListSheetsCommand creates a new ListSheetsCommand. Limit <= 0 lists all.
func NewListSheetsCommand(session *application.Session, limit int) *ListSheetsCommand {
	return &ListSheetsCommand{session: session, Limit: limit}
}

// Execute runs the list sheets command
func (c *ListSheetsCommand) Execute(ctx context.Context) ([]domain.Sheet, error) {
	sheets := c.session.History.List()
	if c.Limit > 0 && len(sheets) > c.Limit {
		sheets = sheets[:c.Limit]
	}
	return sheets, nil
}

// DeleteSheetResult contains the result of deleting a sheet
type DeleteSheetResult struct {
	Deleted bool
	Message string
}

// DeleteSheetCommand removes a saved sheet
type DeleteSheetCommand struct {
	session *application.Session
	SheetID string
}

// NewDeleteSheetCommand creates a new DeleteSheetCommand
func NewDeleteSheetCommand(session *application.Session, sheetID string) *DeleteSheetCommand {
	return &DeleteSheetCommand{session: session, SheetID: sheetID}
}

// Validate checks that a sheet id was given
func (c *DeleteSheetCommand) Validate() error {
	return application.ValidateRequired("sheetID", c.SheetID)
}

// Execute runs the delete sheet command. Unknown ids are a no-op.
func (c *DeleteSheetCommand) Execute(ctx context.Context) (*DeleteSheetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	deleted, err := c.session.History.DeleteSheet(strings.TrimSpace(c.SheetID))
	if err != nil {
		return nil, fmt.Errorf("failed to delete sheet: %w", err)
	}

	msg := fmt.Sprintf("Deleted sheet: %s", c.SheetID)
	if !deleted {
		msg = fmt.Sprintf("No such sheet: %s", c.SheetID)
	}
	return &DeleteSheetResult{Deleted: deleted, Message: msg}, nil
}

// RegenerateSheetCommand stages the words of a saved sheet again
type RegenerateSheetCommand struct {
	session *application.Session
	SheetID string
}

// NewRegenerateSheetCommand creates a new RegenerateSheetCommand
func NewRegenerateSheetCommand(session *application.Session, sheetID string) *RegenerateSheetCommand {
	return &RegenerateSheetCommand{session: session, SheetID: sheetID}
}

// Validate checks that a sheet id was given
func (c *RegenerateSheetCommand) Validate() error {
	return application.ValidateRequired("sheetID", c.SheetID)
}

// Execute runs the regenerate command
func (c *RegenerateSheetCommand) Execute(ctx context.Context) (*SaveSheetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sheet, err := c.session.Regenerate(strings.TrimSpace(c.SheetID))
	if err != nil {
		return nil, err
	}
	return &SaveSheetResult{
		Sheet:   sheet,
		Message: fmt.Sprintf("Loaded %d word(s) from sheet %s", len(sheet.Words), sheet.ID),
	}, nil
}

// RecentWordsResult lists the words used by the newest sheets
type RecentWordsResult struct {
	IDs []string
	// Words holds the library entries still present, in id order
	Words []domain.Word
}

// RecentWordsCommand reports the words the least-used policy would exclude
type RecentWordsCommand struct {
	session *application.Session
	Sheets  int
}

// NewRecentWordsCommand creates a new RecentWordsCommand
func NewRecentWordsCommand(session *application.Session, sheets int) *RecentWordsCommand {
	return &RecentWordsCommand{session: session, Sheets: sheets}
}

// Execute runs the recent words command
func (c *RecentWordsCommand) Execute(ctx context.Context) (*RecentWordsResult, error) {
	ids := c.session.History.RecentWordIDs(c.Sheets)
	words := make([]domain.Word, 0, len(ids))
	for _, id := range ids {
		if w, ok := c.session.Library.Get(id); ok {
			words = append(words, w)
		}
	}
	return &RecentWordsResult{IDs: ids, Words: words}, nil
}
