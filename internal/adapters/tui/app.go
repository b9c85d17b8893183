package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/editor"
	"spellsheet/internal/adapters/tui/views"
	"spellsheet/internal/application"
	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// ViewState represents what is drawn over the active panel
type ViewState int

const (
	ViewPanel ViewState = iota
	ViewHelp
	ViewPrompt
	ViewConfirm
)

// App is the main TUI application model. Session calls happen only inside
// Update, so the session is never touched from a command goroutine.
type App struct {
	ctx     context.Context
	session *application.Session
	editor  ports.EditorOpener
	copy    func(string) error

	state     ViewState
	panel     views.Panel
	library   *views.LibraryModel
	selection *views.SelectionModel
	history   *views.HistoryModel
	help      *views.HelpModel
	prompt    *views.PromptModel
	confirm   *views.ConfirmationModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, which disables bulk add.
func NewApp(ctx context.Context, session *application.Session, ed ports.EditorOpener) *App {
	return &App{
		ctx:       ctx,
		session:   session,
		editor:    ed,
		copy:      clipboard.WriteAll,
		state:     ViewPanel,
		panel:     views.PanelLibrary,
		library:   views.NewLibraryModel(session),
		selection: views.NewSelectionModel(session),
		history:   views.NewHistoryModel(session),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.library.SetSize(msg.Width, msg.Height)
		a.selection.SetSize(msg.Width, msg.Height)
		a.history.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.state == ViewPanel && !a.library.Filtering() {
			if panel, ok := panelKey(msg.String()); ok {
				a.showPanel(panel)
				return a, nil
			}
			if msg.String() == "tab" {
				a.showPanel(views.Panels[(int(a.panel)+1)%len(views.Panels)])
				return a, nil
			}
		}

	// View switching messages
	case views.SwitchToPanelMsg:
		a.showPanel(msg.Panel)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchBackMsg:
		a.state = ViewPanel
		a.prompt = nil
		a.confirm = nil
		return a, nil

	case views.OpenPromptMsg:
		a.prompt = views.NewPromptModel(msg.Purpose)
		a.prompt.SetSize(a.width, a.height)
		a.state = ViewPrompt
		return a, a.prompt.Init()

	case views.PromptSubmittedMsg:
		return a, a.submitPrompt(msg)

	case views.ConfirmDeleteWordMsg:
		a.openConfirm(msg.Word)
		return a, nil

	case views.ConfirmDeleteSheetMsg:
		a.openConfirm(msg.Sheet)
		return a, nil

	case views.ConfirmedMsg:
		a.state = ViewPanel
		a.confirm = nil
		a.delete(msg.Target)
		return a, nil

	// Actions
	case views.RandomPickMsg:
		a.pick(msg.Count)
		return a, nil

	case views.SaveSelectionMsg:
		a.save()
		return a, nil

	case views.CopyWorksheetMsg:
		a.copyWorksheet()
		return a, nil

	case views.RegenerateMsg:
		a.regenerate(msg.SheetID)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		a.finishBulkAdd(msg)
		return a, nil

	case views.StatusMsg:
		a.status(msg.Message, msg.Err)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	default:
		switch a.panel {
		case views.PanelSelection:
			_, cmd = a.selection.Update(msg)
		case views.PanelHistory:
			_, cmd = a.history.Update(msg)
		default:
			_, cmd = a.library.Update(msg)
		}
	}

	return a, cmd
}

func panelKey(k string) (views.Panel, bool) {
	switch k {
	case "1":
		return views.PanelLibrary, true
	case "2":
		return views.PanelSelection, true
	case "3":
		return views.PanelHistory, true
	}
	return 0, false
}

// showPanel switches panels and drops any open overlay
func (a *App) showPanel(p views.Panel) {
	a.state = ViewPanel
	a.panel = p
	a.refresh()
}

func (a *App) refresh() {
	a.library.Refresh()
	a.selection.Refresh()
	a.history.Refresh()
}

// status shows a message on the active panel
func (a *App) status(msg string, isErr bool) {
	var vs *views.ViewState
	switch a.panel {
	case views.PanelSelection:
		vs = &a.selection.ViewState
	case views.PanelHistory:
		vs = &a.history.ViewState
	default:
		vs = &a.library.ViewState
	}
	vs.SetMessage(msg, isErr)
}

func (a *App) openConfirm(target any) {
	a.confirm = views.NewConfirmationModel(target)
	a.confirm.SetSize(a.width, a.height)
	a.state = ViewConfirm
}

func (a *App) submitPrompt(msg views.PromptSubmittedMsg) tea.Cmd {
	switch msg.Purpose {
	case views.PromptAddWord:
		res, err := commands.NewAddWordCommand(a.session, msg.Value).Execute(a.ctx)
		if err != nil {
			a.prompt.SetMessage(err.Error(), true)
			return nil
		}
		a.closePrompt(views.PanelLibrary)
		a.status(res.Message, false)

	case views.PromptQuickAdd:
		if err := application.ValidateRequired("words", msg.Value); err != nil {
			a.prompt.SetMessage(err.Error(), true)
			return nil
		}
		added, err := a.session.QuickAdd(msg.Value)
		if err != nil {
			a.prompt.SetMessage(err.Error(), true)
			return nil
		}
		a.closePrompt(views.PanelSelection)
		a.status(fmt.Sprintf("Staged %d word(s), %d new to the library", len(a.session.Selection()), len(added)), false)

	case views.PromptPickCount:
		n := commands.DefaultPickCount
		if msg.Value != "" {
			parsed, err := strconv.Atoi(msg.Value)
			if err != nil {
				a.prompt.SetMessage(fmt.Sprintf("not a number: %q", msg.Value), true)
				return nil
			}
			n = parsed
		}
		if err := application.ValidatePositive("count", n); err != nil {
			a.prompt.SetMessage(err.Error(), true)
			return nil
		}
		a.closePrompt(views.PanelSelection)
		a.pick(n)
	}
	return nil
}

func (a *App) closePrompt(next views.Panel) {
	a.prompt = nil
	a.showPanel(next)
}

func (a *App) pick(n int) {
	res, err := commands.NewPickWordsCommand(a.session, n, nil).Execute(a.ctx)
	a.showPanel(views.PanelSelection)
	if err != nil {
		a.status(err.Error(), true)
		return
	}
	a.status(res.Message, len(res.Words) == 0)
}

func (a *App) save() {
	res, err := commands.NewSaveSheetCommand(a.session, nil, 0).Execute(a.ctx)
	a.refresh()
	if err != nil {
		a.status(err.Error(), true)
		return
	}
	a.status(res.Message, false)
}

func (a *App) copyWorksheet() {
	if len(a.session.Selection()) == 0 {
		a.status(application.ErrNothingToSave.Error(), true)
		return
	}
	if err := a.copy(a.session.Worksheet()); err != nil {
		a.status(fmt.Sprintf("failed to copy worksheet: %v", err), true)
		return
	}
	a.status("Worksheet copied to clipboard", false)
}

func (a *App) regenerate(sheetID string) {
	res, err := commands.NewRegenerateSheetCommand(a.session, sheetID).Execute(a.ctx)
	if err != nil {
		a.status(err.Error(), true)
		return
	}
	a.showPanel(views.PanelSelection)
	a.status(res.Message, false)
}

func (a *App) delete(target any) {
	var (
		msg string
		err error
	)
	switch t := target.(type) {
	case domain.Word:
		var res *commands.DeleteWordResult
		if res, err = commands.NewDeleteWordCommand(a.session, t.Text).Execute(a.ctx); err == nil {
			msg = res.Message
		}
	case domain.Sheet:
		var res *commands.DeleteSheetResult
		if res, err = commands.NewDeleteSheetCommand(a.session, t.ID).Execute(a.ctx); err == nil {
			msg = res.Message
		}
	default:
		err = errors.New("nothing to delete")
	}

	a.refresh()
	if err != nil {
		a.status(err.Error(), true)
		return
	}
	a.status(msg, false)
}

type editorFinishedMsg struct {
	path string
	err  error
}

// openEditor opens a scratch file for bulk entry; its lines are added
// when the editor exits
func (a *App) openEditor() tea.Cmd {
	if a.editor == nil {
		a.status("bulk add needs an editor: set $EDITOR", true)
		return nil
	}

	path, err := editor.NewScratch()
	if err != nil {
		a.status(err.Error(), true)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		os.Remove(path)
		a.status(err.Error(), true)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (a *App) finishBulkAdd(msg editorFinishedMsg) {
	defer os.Remove(msg.path)
	a.showPanel(views.PanelLibrary)

	if msg.err != nil {
		a.status(fmt.Sprintf("editor failed: %v", msg.err), true)
		return
	}

	text, err := editor.ReadScratch(msg.path)
	if err != nil {
		a.status(err.Error(), true)
		return
	}

	res, err := commands.NewAddWordsCommand(a.session, []string{text}).Execute(a.ctx)
	a.refresh()
	if err != nil {
		a.status(err.Error(), true)
		return
	}
	a.status(res.Message, false)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	case ViewPrompt:
		return a.prompt.View()
	case ViewConfirm:
		return a.confirm.View()
	}

	switch a.panel {
	case views.PanelSelection:
		return a.selection.View()
	case views.PanelHistory:
		return a.history.View()
	default:
		return a.library.View()
	}
}
