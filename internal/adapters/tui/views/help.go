package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, send(SwitchBackMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Spellsheet Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Pick spelling words, print copywork sheets"))
	b.WriteString("\n\n")

	section(&b, "Everywhere",
		"tab / 1 2 3", "Switch panel",
		"j / k / ↑ / ↓", "Move up/down",
		"ctrl+f / ctrl+b", "Next/previous page",
		"?", "Toggle help",
		"q / ctrl+c", "Quit",
	)
	section(&b, "Library",
		"enter / space", "Stage or unstage word",
		"/", "Filter words",
		"a", "Add word",
		"b", "Bulk add in $EDITOR",
		"d", "Delete word",
	)
	section(&b, "Selection",
		"r", "Random pick",
		"i", "Quick add words",
		"K / J", "Move word up/down",
		"x", "Remove word",
		"c", "Clear selection",
		"s", "Save sheet",
		"y", "Copy worksheet",
		"+ / -", "Lines per word",
		"e / E", "Exclude more/fewer recent sheets",
		"h", "Toggle name/date header",
	)
	section(&b, "History",
		"enter", "Load sheet into selection",
		"d", "Delete sheet",
	)

	b.WriteString(styles.InputLabel.Render("Random pick"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Least-used words come first. Ties are broken at random."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Words from the most recent sheets are skipped when excluded."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// section writes a heading followed by key/description pairs
func section(b *strings.Builder, title string, pairs ...string) {
	b.WriteString(styles.InputLabel.Render(title))
	b.WriteString("\n")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(helpLine(pairs[i], pairs[i+1]))
	}
	b.WriteString("\n")
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
