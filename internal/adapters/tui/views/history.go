package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"spellsheet/internal/adapters/tui/styles"
	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

// HistoryKeyMap defines key bindings for the history view
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Regenerate key.Binding
	Delete     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var HistoryKeys = HistoryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Regenerate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
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

// HistoryModel lists saved sheets newest first
type HistoryModel struct {
	ViewState
	session   *application.Session
	sheets    []domain.Sheet
	paginator *Paginator
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(session *application.Session) *HistoryModel {
	m := &HistoryModel{
		session:   session,
		paginator: NewPaginator(10),
	}
	m.Refresh()
	return m
}

// Init initializes the history view
func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

// Refresh reloads the sheets from the session
func (m *HistoryModel) Refresh() {
	m.sheets = m.session.History.List()
	m.paginator.SetTotal(len(m.sheets))
}

// SetSize updates the view dimensions and the page size
func (m *HistoryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(m.pageSize(listChrome))
}

// Selected returns the sheet under the cursor
func (m *HistoryModel) Selected() (domain.Sheet, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.sheets) {
		return domain.Sheet{}, false
	}
	return m.sheets[i], true
}

// Update handles messages for the history view
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, HistoryKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, HistoryKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, HistoryKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, HistoryKeys.NextPage):
			m.paginator.NextPage()
		case key.Matches(msg, HistoryKeys.PrevPage):
			m.paginator.PrevPage()
		case key.Matches(msg, HistoryKeys.Regenerate):
			if s, ok := m.Selected(); ok {
				return m, send(RegenerateMsg{SheetID: s.ID})
			}
		case key.Matches(msg, HistoryKeys.Delete):
			if s, ok := m.Selected(); ok {
				return m, send(ConfirmDeleteSheetMsg{Sheet: s})
			}
		case key.Matches(msg, HistoryKeys.Help):
			return m, send(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

// View renders the history view
func (m *HistoryModel) View() string {
	v := NewViewBuilder().
		Line(RenderTabs(PanelHistory)).
		BlankLine()

	v.Muted(fmt.Sprintf("%d saved sheet(s)", len(m.sheets)))
	v.BlankLine()

	if len(m.sheets) == 0 {
		v.Muted("No sheets yet. Save a selection to start the history.")
	}

	start, end := m.paginator.VisibleRange()
	cursor := m.paginator.Cursor()
	for i := start; i < end; i++ {
		v.Line(renderSheetRow(m.sheets[i], i == cursor))
	}
	if page := RenderPageIndicator(m.paginator); page != "" {
		v.BlankLine().Line(page)
	}

	v.Message(m.Message, m.MessageErr)

	return v.Help(
		HistoryKeys.Regenerate,
		HistoryKeys.Delete,
		HistoryKeys.Help,
		HistoryKeys.Quit,
	).String()
}

func renderSheetRow(s domain.Sheet, selected bool) string {
	date := time.UnixMilli(s.CreatedAt).Local().Format("2006-01-02 15:04")
	words := runewidth.Truncate(strings.Join(s.Words, ", "), 60, "...")
	if selected {
		return styles.RowSelected.Render(fmt.Sprintf("%s  %2dw  %s", date, len(s.Words), words))
	}
	return styles.Usage.Render(date) + fmt.Sprintf("  %2dw  ", len(s.Words)) + words
}
