package commands

import (
	"context"
	"fmt"

	"spellsheet/internal/application"
	"spellsheet/internal/codec"
	"spellsheet/internal/domain"
)

// ImportResult contains the result of importing a library file
type ImportResult struct {
	Added   []domain.Word
	Message string
}

// ImportCommand adds the words of a .json or .csv library file
type ImportCommand struct {
	session  *application.Session
	Filename string
	Data     []byte
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(session *application.Session, filename string, data []byte) *ImportCommand {
	return &ImportCommand{session: session, Filename: filename, Data: data}
}

// Validate checks that a filename was given; the extension picks the decoder
func (c *ImportCommand) Validate() error {
	return application.ValidateRequired("filename", c.Filename)
}

// Execute runs the import. A malformed file leaves the library untouched.
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	added, err := c.session.Import(ctx, c.Filename, c.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", c.Filename, err)
	}
	return &ImportResult{
		Added:   added,
		Message: fmt.Sprintf("Imported %d new word(s) from %s", len(added), c.Filename),
	}, nil
}

// ExportCommand encodes the library for download or copy
type ExportCommand struct {
	session *application.Session
	Format  string
}

// NewExportCommand creates a new ExportCommand. format is "json" or "csv".
func NewExportCommand(session *application.Session, format string) *ExportCommand {
	return &ExportCommand{session: session, Format: format}
}

// Execute runs the export
func (c *ExportCommand) Execute(ctx context.Context) (codec.Payload, error) {
	format, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.Payload{}, &application.ValidationError{Field: "format", Message: err.Error()}
	}
	return c.session.Export(format)
}
