package commands

import (
	"context"
	"fmt"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// UpdateSettingsResult contains the settings after the update
type UpdateSettingsResult struct {
	Settings domain.Settings
	Message  string
}

// UpdateSettingsCommand changes the fields that are set and keeps the rest
type UpdateSettingsCommand struct {
	session *application.Session
	domain.SettingsOverride
}

// NewUpdateSettingsCommand creates a new UpdateSettingsCommand
func NewUpdateSettingsCommand(session *application.Session, override domain.SettingsOverride) *UpdateSettingsCommand {
	return &UpdateSettingsCommand{session: session, SettingsOverride: override}
}

// Execute runs the update. Out-of-range values are rejected, not clamped.
func (c *UpdateSettingsCommand) Execute(ctx context.Context) (*UpdateSettingsResult, error) {
	next := c.session.Settings()
	if c.LinesPerWord != nil {
		next.LinesPerWord = *c.LinesPerWord
	}
	if c.ExcludeRecent != nil {
		next.ExcludeRecent = *c.ExcludeRecent
	}
	if c.IncludeNameDate != nil {
		next.IncludeNameDate = *c.IncludeNameDate
	}

	if err := c.session.UpdateSettings(next); err != nil {
		return nil, err
	}
	return &UpdateSettingsResult{
		Settings: next,
		Message:  FormatSettings(next),
	}, nil
}

// FormatSettings renders settings as a one-line summary
func FormatSettings(s domain.Settings) string {
	return fmt.Sprintf("lines per word: %d, exclude recent sheets: %d, name/date header: %t",
		s.LinesPerWord, s.ExcludeRecent, s.IncludeNameDate)
}
