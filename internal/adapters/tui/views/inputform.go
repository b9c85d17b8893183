package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/tui/styles"
)

// PromptKeyMap defines key bindings for the prompt view
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var PromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptModel asks for a single line of input
type PromptModel struct {
	ViewState
	purpose PromptPurpose
	title   string
	label   string
	hint    string
	input   textinput.Model
}

// NewPromptModel creates a prompt for purpose
func NewPromptModel(purpose PromptPurpose) *PromptModel {
	input := textinput.New()
	input.CharLimit = 512
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()

	m := &PromptModel{purpose: purpose, input: input}
	switch purpose {
	case PromptAddWord:
		m.title = "Add Word"
		m.label = "Word"
		m.hint = "Commas add several words at once."
		input.Placeholder = "necessary"
	case PromptQuickAdd:
		m.title = "Quick Add"
		m.label = "Words for the next sheet"
		m.hint = "Separate words with commas. New words join the library."
		input.Placeholder = "because, friend, island"
	case PromptPickCount:
		m.title = "Random Pick"
		m.label = "How many words"
		m.hint = "Replaces the current selection."
		input.Placeholder = "10"
		input.CharLimit = 4
	}
	m.input = input
	return m
}

// Purpose returns what the prompt value will be used for
func (m *PromptModel) Purpose() PromptPurpose {
	return m.purpose
}

// Value returns the trimmed input value
func (m *PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init starts the cursor blink
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PromptKeys.Cancel):
			return m, send(SwitchBackMsg{})
		case key.Matches(msg, PromptKeys.Submit):
			return m, send(PromptSubmittedMsg{Purpose: m.purpose, Value: m.Value()})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(m.label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))

	return NewViewBuilder().
		Title(m.title).
		Line(b.String()).
		Muted(m.hint).
		Message(m.Message, m.MessageErr).
		Help(PromptKeys.Submit, PromptKeys.Cancel).
		String()
}
