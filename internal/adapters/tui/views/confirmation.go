package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/tui/styles"
	"spellsheet/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before deleting a word or a sheet.
// Target is a domain.Word or a domain.Sheet.
type ConfirmationModel struct {
	ViewState
	Target any
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a confirmation for target
func NewConfirmationModel(target any) *ConfirmationModel {
	return &ConfirmationModel{Target: target, Keys: DefaultConfirmKeys}
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, send(SwitchBackMsg{})
		case key.Matches(msg, m.Keys.Confirm):
			return m, send(ConfirmedMsg{Target: m.Target})
		}
	}
	return m, nil
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	return NewViewBuilder().
		Title("Delete Confirmation").
		Line(RenderTargetInfo(m.Target)).
		BlankLine().
		Line(RenderConfirmPrompt("Are you sure?")).
		String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo describes what is about to be deleted
func RenderTargetInfo(target any) string {
	var b strings.Builder
	switch t := target.(type) {
	case domain.Word:
		b.WriteString(styles.InputLabel.Render("Delete word:"))
		b.WriteString("\n  ")
		b.WriteString(t.Text)
		if t.UsageCount > 0 {
			b.WriteString("\n\n")
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("  Used on %d sheet(s). Saved sheets keep their copy.", t.UsageCount)))
		}
	case domain.Sheet:
		b.WriteString(styles.InputLabel.Render("Delete sheet:"))
		b.WriteString("\n  ")
		b.WriteString(t.ID)
		b.WriteString("  ")
		b.WriteString(strings.Join(t.Words, ", "))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("  Usage counts already recorded are kept."))
	}
	return b.String()
}
