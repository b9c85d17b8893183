package views

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/application"
	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

// LibraryKeyMap defines key bindings for the library view
type LibraryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Stage    key.Binding
	Filter   key.Binding
	Add      key.Binding
	Bulk     key.Binding
	Delete   key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var LibraryKeys = LibraryKeyMap{
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
	Stage: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "stage"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Bulk: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bulk add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
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

// listChrome is the number of lines around the word list
const listChrome = 14

// LibraryModel lists the word library with a live fuzzy filter
type LibraryModel struct {
	ViewState
	session   *application.Session
	filter    textinput.Model
	filtering bool
	words     []domain.Word
	paginator *Paginator
}

// NewLibraryModel creates a new library view model
func NewLibraryModel(session *application.Session) *LibraryModel {
	input := textinput.New()
	input.Prompt = "Filter: "
	input.Placeholder = "type to filter"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorStatic)

	m := &LibraryModel{
		session:   session,
		filter:    input,
		paginator: NewPaginator(10),
	}
	m.Refresh()
	return m
}

// Init initializes the library view
func (m *LibraryModel) Init() tea.Cmd {
	return nil
}

// Refresh reloads the visible words from the session
func (m *LibraryModel) Refresh() {
	query := m.filter.Value()
	if query == "" {
		m.words = m.session.Library.List()
	} else {
		results := commands.FuzzySort(m.session.Library.List(), query)
		m.words = make([]domain.Word, len(results))
		for i, r := range results {
			m.words[i] = r.Word
		}
	}
	m.paginator.SetTotal(len(m.words))
}

// Filtering reports whether the filter input has focus
func (m *LibraryModel) Filtering() bool {
	return m.filtering
}

// SetSize updates the view dimensions and the page size
func (m *LibraryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(m.pageSize(listChrome))
}

// Selected returns the word under the cursor
func (m *LibraryModel) Selected() (domain.Word, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.words) {
		return domain.Word{}, false
	}
	return m.words[i], true
}

// Update handles messages for the library view
func (m *LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, LibraryKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, LibraryKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, LibraryKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, LibraryKeys.NextPage):
			m.paginator.NextPage()
		case key.Matches(msg, LibraryKeys.PrevPage):
			m.paginator.PrevPage()
		case key.Matches(msg, LibraryKeys.Stage):
			m.toggleStaged()
		case key.Matches(msg, LibraryKeys.Filter):
			m.filtering = true
			return m, m.filter.Focus()
		case key.Matches(msg, LibraryKeys.Cancel):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.Refresh()
			}
		case key.Matches(msg, LibraryKeys.Add):
			return m, send(OpenPromptMsg{Purpose: PromptAddWord})
		case key.Matches(msg, LibraryKeys.Bulk):
			return m, send(OpenEditorMsg{})
		case key.Matches(msg, LibraryKeys.Delete):
			if w, ok := m.Selected(); ok {
				return m, send(ConfirmDeleteWordMsg{Word: w})
			}
		case key.Matches(msg, LibraryKeys.Help):
			return m, send(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func (m *LibraryModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.Refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.paginator.SetCursor(0)
	m.Refresh()
	return m, cmd
}

// toggleStaged stages the word under the cursor, or unstages it when it is
// already in the selection
func (m *LibraryModel) toggleStaged() {
	w, ok := m.Selected()
	if !ok {
		return
	}
	if m.session.Pick(w.Text) {
		m.SetMessage(fmt.Sprintf("Staged %s (%d in selection)", w.Text, len(m.session.Selection())), false)
		return
	}
	if i := slices.Index(m.session.Selection(), w.Text); i >= 0 {
		m.session.Unpick(i)
		m.SetMessage(fmt.Sprintf("Unstaged %s", w.Text), false)
	}
}

// View renders the library view
func (m *LibraryModel) View() string {
	v := NewViewBuilder().
		Line(RenderTabs(PanelLibrary)).
		BlankLine()

	total := m.session.Library.Snapshot().Len()
	if m.filtering || m.filter.Value() != "" {
		v.Line(m.filter.View())
		v.Muted(fmt.Sprintf("%d of %d words", len(m.words), total))
	} else {
		v.Muted(fmt.Sprintf("%d words, %d staged", total, len(m.session.Selection())))
	}
	v.BlankLine()

	if len(m.words) == 0 {
		if total == 0 {
			v.Muted("The library is empty. Press a to add a word or b to add many.")
		} else {
			v.Muted("No words match the filter.")
		}
	}

	staged := m.session.Selection()
	start, end := m.paginator.VisibleRange()
	current := m.paginator.Cursor()
	for i := start; i < end; i++ {
		w := m.words[i]
		v.Line(RenderWordRow(w, i == current, slices.Contains(staged, w.Text)))
	}
	if page := RenderPageIndicator(m.paginator); page != "" {
		v.BlankLine().Line(page)
	}

	v.Message(m.Message, m.MessageErr)

	if m.filtering {
		return v.Help(PromptKeys.Submit, LibraryKeys.Cancel).String()
	}
	return v.Help(
		LibraryKeys.Stage,
		LibraryKeys.Filter,
		LibraryKeys.Add,
		LibraryKeys.Bulk,
		LibraryKeys.Delete,
		LibraryKeys.Help,
		LibraryKeys.Quit,
	).String()
}
