package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipcopy/internal/components"
	"github.com/renato0307/clipcopy/internal/copier"
	"github.com/renato0307/clipcopy/internal/messages"
	"github.com/renato0307/clipcopy/internal/types"
)

const (
	// AppName is shown in the header
	AppName = "clipcopy"

	// CopyingMessage is shown while at least one write is pending
	CopyingMessage = "Copying…"
)

// Model is the interactive host. It owns the update loop the copier reports
// on: writes run as tea.Cmds and their outcomes come back as
// copier.ResultMsg, which Update hands to Copier.Report.
type Model struct {
	state       types.AppState
	ctx         *types.AppContext
	header      *components.Header
	editor      *components.Editor
	modal       *components.Modal
	userMessage *components.UserMessage
	layout      *components.Layout
	help        help.Model
	copyKey     key.Binding
	clearKey    key.Binding
	quitKey     key.Binding
	messageID   int
}

// NewModel creates the model. modal must be the notifier the context's
// copier was built with so success alerts land in this model.
func NewModel(ctx *types.AppContext, modal *components.Modal) Model {
	header := components.NewHeader(ctx, AppName)
	header.SetWidth(80)

	layout := components.NewLayout(80, 24)

	editor := components.NewEditor(ctx.Theme)
	editor.SetSize(80, layout.CalculateBodyHeight())

	userMessage := components.NewUserMessage(ctx.Theme)
	userMessage.SetWidth(80)

	modal.SetSize(80, 24)

	return Model{
		state: types.AppState{
			Width:  80,
			Height: 24,
		},
		ctx:         ctx,
		header:      header,
		editor:      editor,
		modal:       modal,
		userMessage: userMessage,
		layout:      layout,
		help:        help.New(),
		copyKey:     ctx.Keys.CopyBinding(),
		clearKey:    ctx.Keys.ClearBinding(),
		quitKey:     ctx.Keys.QuitBinding(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.userMessage.SetWidth(msg.Width)
		m.modal.SetSize(msg.Width, msg.Height)
		m.editor.SetSize(msg.Width, m.layout.CalculateBodyHeight())
		m.help.Width = msg.Width
		return m, nil

	case copier.ResultMsg:
		m.state.Pending--
		if m.state.Pending <= 0 {
			m.state.Pending = 0
			if m.userMessage.IsLoadingMessage() {
				m.userMessage.ClearMessage()
			}
		}
		m.ctx.Copier.Report(msg.Outcome)
		return m, nil

	case types.StatusMsg:
		m.messageID++
		m.userMessage.SetMessage(msg.Message, msg.Type)
		if msg.Type == types.MessageTypeLoading {
			return m, m.userMessage.GetSpinnerCmd()
		}
		id := m.messageID
		return m, tea.Tick(components.StatusDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		if msg.MessageID == m.messageID && !m.userMessage.IsLoadingMessage() {
			m.userMessage.ClearMessage()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.quitKey) {
			return m, tea.Quit
		}

		// The notification blocks every other key until dismissed
		if m.modal.Visible() {
			m.modal.HandleKey(msg)
			return m, nil
		}

		switch {
		case key.Matches(msg, m.copyKey):
			return m.startCopy()
		case key.Matches(msg, m.clearKey):
			m.editor.Reset()
			return m, messages.InfoCmd("Editor cleared")
		}

		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	// Spinner ticks and cursor blinks
	var umCmd, edCmd tea.Cmd
	m.userMessage, umCmd = m.userMessage.Update(msg)
	m.editor, edCmd = m.editor.Update(msg)
	return m, tea.Batch(umCmd, edCmd)
}

// startCopy issues one write for the current editor text. Empty text is copied
// too.
func (m Model) startCopy() (tea.Model, tea.Cmd) {
	m.state.Pending++
	m.messageID++
	m.userMessage.SetMessage(CopyingMessage, types.MessageTypeLoading)
	return m, tea.Batch(
		m.ctx.Copier.Cmd(m.editor.Value()),
		m.userMessage.GetSpinnerCmd(),
	)
}

// Pending returns the number of writes that have not settled yet
func (m Model) Pending() int {
	return m.state.Pending
}

func (m Model) View() string {
	if m.modal.Visible() {
		return m.modal.View()
	}

	return m.layout.Render(
		m.header.View(),
		m.editor.View(),
		m.userMessage.View(),
		m.help.ShortHelpView(m.ctx.Keys.EditorHelp()),
	)
}
