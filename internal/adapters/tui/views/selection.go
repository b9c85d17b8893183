package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/tui/styles"
	"spellsheet/internal/application"
	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

// SelectionKeyMap defines key bindings for the selection view
type SelectionKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Remove       key.Binding
	Clear        key.Binding
	Random       key.Binding
	RandomCount  key.Binding
	QuickAdd     key.Binding
	Save         key.Binding
	Copy         key.Binding
	MoreLines    key.Binding
	FewerLines   key.Binding
	MoreExclude  key.Binding
	FewerExclude key.Binding
	NameDate     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var SelectionKeys = SelectionKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "backspace"),
		key.WithHelp("x", "remove"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random pick"),
	),
	RandomCount: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "pick n"),
	),
	QuickAdd: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "quick add"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	MoreLines: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more lines"),
	),
	FewerLines: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer lines"),
	),
	MoreExclude: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "exclude more"),
	),
	FewerExclude: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "exclude fewer"),
	),
	NameDate: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "name/date"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// previewLines caps the worksheet preview height
const previewLines = 12

// SelectionModel shows the staged words and the worksheet they produce
type SelectionModel struct {
	ViewState
	session *application.Session
	cursor  int
}

// NewSelectionModel creates a new selection view model
func NewSelectionModel(session *application.Session) *SelectionModel {
	return &SelectionModel{session: session}
}

// Init initializes the selection view
func (m *SelectionModel) Init() tea.Cmd {
	return nil
}

// Refresh clamps the cursor after the selection changed elsewhere
func (m *SelectionModel) Refresh() {
	n := len(m.session.Selection())
	m.cursor = max(0, min(m.cursor, n-1))
}

// Cursor returns the index of the highlighted staged word
func (m *SelectionModel) Cursor() int {
	return m.cursor
}

// Update handles messages for the selection view
func (m *SelectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		n := len(m.session.Selection())

		switch {
		case key.Matches(msg, SelectionKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, SelectionKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, SelectionKeys.Down):
			if m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, SelectionKeys.MoveUp):
			if m.session.MoveUp(m.cursor) {
				m.cursor--
			}
		case key.Matches(msg, SelectionKeys.MoveDown):
			if m.session.MoveDown(m.cursor) {
				m.cursor++
			}
		case key.Matches(msg, SelectionKeys.Remove):
			m.session.Unpick(m.cursor)
			m.Refresh()
		case key.Matches(msg, SelectionKeys.Clear):
			m.session.ClearSelection()
			m.cursor = 0
		case key.Matches(msg, SelectionKeys.Random):
			return m, send(RandomPickMsg{Count: commands.DefaultPickCount})
		case key.Matches(msg, SelectionKeys.RandomCount):
			return m, send(OpenPromptMsg{Purpose: PromptPickCount})
		case key.Matches(msg, SelectionKeys.QuickAdd):
			return m, send(OpenPromptMsg{Purpose: PromptQuickAdd})
		case key.Matches(msg, SelectionKeys.Save):
			return m, send(SaveSelectionMsg{})
		case key.Matches(msg, SelectionKeys.Copy):
			return m, send(CopyWorksheetMsg{})
		case key.Matches(msg, SelectionKeys.MoreLines):
			m.adjust(func(s *domain.Settings) { s.LinesPerWord++ })
		case key.Matches(msg, SelectionKeys.FewerLines):
			m.adjust(func(s *domain.Settings) { s.LinesPerWord-- })
		case key.Matches(msg, SelectionKeys.MoreExclude):
			m.adjust(func(s *domain.Settings) { s.ExcludeRecent++ })
		case key.Matches(msg, SelectionKeys.FewerExclude):
			m.adjust(func(s *domain.Settings) { s.ExcludeRecent-- })
		case key.Matches(msg, SelectionKeys.NameDate):
			m.adjust(func(s *domain.Settings) { s.IncludeNameDate = !s.IncludeNameDate })
		case key.Matches(msg, SelectionKeys.Help):
			return m, send(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

// adjust applies change to the current settings and persists the result.
// Out of range values are rejected and leave the settings unchanged.
func (m *SelectionModel) adjust(change func(*domain.Settings)) {
	next := m.session.Settings()
	change(&next)
	if err := m.session.UpdateSettings(next); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(commands.FormatSettings(m.session.Settings()), false)
}

// View renders the selection view
func (m *SelectionModel) View() string {
	v := NewViewBuilder().
		Line(RenderTabs(PanelSelection)).
		BlankLine()

	selection := m.session.Selection()
	v.Muted(fmt.Sprintf("%d staged  •  %s", len(selection), commands.FormatSettings(m.session.Settings())))
	v.BlankLine()

	if len(selection) == 0 {
		v.Muted("Nothing staged. Press r for a random pick, i to type words, or stage words in the library.")
	}
	for i, w := range selection {
		row := fmt.Sprintf("%2d. %s", i+1, w)
		if i == m.cursor {
			v.Line(styles.RowSelected.Render(row))
		} else {
			v.Line(styles.Row.Render(row))
		}
	}

	if len(selection) > 0 {
		v.BlankLine().Line(styles.Preview.Render(preview(m.session.Worksheet(), previewLines)))
	}

	v.Message(m.Message, m.MessageErr)

	return v.Help(
		SelectionKeys.Random,
		SelectionKeys.QuickAdd,
		SelectionKeys.MoveUp,
		SelectionKeys.MoveDown,
		SelectionKeys.Remove,
		SelectionKeys.Save,
		SelectionKeys.Copy,
		SelectionKeys.Help,
	).String()
}

// preview keeps the first limit lines of text, noting how many were cut
func preview(text string, limit int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) <= limit {
		return strings.Join(lines, "\n")
	}
	more := len(lines) - limit
	return strings.Join(lines[:limit], "\n") + "\n" + styles.MutedText.Render(fmt.Sprintf("… %d more line(s)", more))
}
