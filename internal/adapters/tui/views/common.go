package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// pageSize returns how many list rows fit, leaving room for chrome
func (s *ViewState) pageSize(chrome int) int {
	if s.Height-chrome < 5 {
		return 5
	}
	return s.Height - chrome
}

// Panel identifies one of the main tabs
type Panel int

const (
	PanelLibrary Panel = iota
	PanelSelection
	PanelHistory
)

func (p Panel) String() string {
	switch p {
	case PanelLibrary:
		return "Library"
	case PanelSelection:
		return "Selection"
	case PanelHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Panels lists the tabs in display order
var Panels = []Panel{PanelLibrary, PanelSelection, PanelHistory}

// Messages for view switching

type SwitchToPanelMsg struct {
	Panel Panel
}

type SwitchToHelpMsg struct{}

// SwitchBackMsg closes an overlay (help, prompt, confirmation)
type SwitchBackMsg struct{}

// StatusMsg reports the outcome of an action on the active panel
type StatusMsg struct {
	Message string
	Err     bool
}

// PromptPurpose says what a submitted prompt value is for
type PromptPurpose int

const (
	PromptAddWord PromptPurpose = iota
	PromptQuickAdd
	PromptPickCount
)

// OpenPromptMsg asks the app to show a single-line prompt
type OpenPromptMsg struct {
	Purpose PromptPurpose
}

// PromptSubmittedMsg carries the value typed into a prompt
type PromptSubmittedMsg struct {
	Purpose PromptPurpose
	Value   string
}

// ConfirmDeleteWordMsg asks for confirmation before deleting a word
type ConfirmDeleteWordMsg struct {
	Word domain.Word
}

// ConfirmDeleteSheetMsg asks for confirmation before deleting a sheet
type ConfirmDeleteSheetMsg struct {
	Sheet domain.Sheet
}

// ConfirmedMsg carries the target of an accepted confirmation
type ConfirmedMsg struct {
	Target any
}

// OpenEditorMsg asks the app to open a bulk-add scratch file
type OpenEditorMsg struct{}

// CopyWorksheetMsg asks the app to copy the worksheet text
type CopyWorksheetMsg struct{}

// SaveSelectionMsg asks the app to save the staged words as a sheet
type SaveSelectionMsg struct{}

// RegenerateMsg asks the app to stage the words of a saved sheet
type RegenerateMsg struct {
	SheetID string
}

// RandomPickMsg asks the app to replace the selection with a random pick
type RandomPickMsg struct {
	Count int
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
