package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/restget/internal/app"
	"github.com/studiowebux/restget/internal/keybinds"
)

// focus identifies the widget receiving key presses
type focus int

const (
	focusURL focus = iota
	focusSend
	focusCount
)

// Model represents the TUI state
type Model struct {
	// Core state, only ever changed through app.Update
	state    app.State
	keybinds *keybinds.Registry

	// Widgets
	urlInput     textinput.Model
	responseView viewport.Model
	focused      focus

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// Options configures a new Model
type Options struct {
	// Client is the shared HTTP client handle
	Client app.Fetcher

	// InitialURL pre-fills the URL field
	InitialURL string

	// Keybinds defaults to keybinds.NewDefaultRegistry()
	Keybinds *keybinds.Registry
}

// Init starts the cursor blinking and names the window
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(windowTitle))
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case app.URLEditedMsg, app.SendRequestedMsg, app.ResponseReceivedMsg, app.ErrorReceivedMsg:
		return m, m.dispatch(msg)

	case clipboardCopiedMsg:
		return m, m.setStatusMessage("Response copied to clipboard")

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case clearErrorMsg:
		m.errorMsg = ""
		return m, nil

	case errorMsg:
		return m, m.setErrorMessage(string(msg))
	}

	// Cursor blink and paste results belong to the URL field
	return m, m.updateInput(msg)
}

// View renders the TUI
func (m Model) View() string {
	return m.renderMain()
}

// State returns a copy of the application state
func (m Model) State() app.State {
	return m.state
}

// dispatch hands msg to the controller and refreshes widgets bound to state
func (m *Model) dispatch(msg tea.Msg) tea.Cmd {
	previous := m.state.Response

	var cmd tea.Cmd
	m.state, cmd = app.Update(m.state, msg)

	if m.urlInput.Value() != m.state.URL {
		m.urlInput.SetValue(m.state.URL)
	}
	if m.state.Response != previous {
		m.updateResponseView()
		m.responseView.GotoTop()
	}

	return cmd
}

// updateInput forwards msg to the URL field and reports any change in its
// value to the controller
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.urlInput.Value()

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)

	if after := m.urlInput.Value(); after != before {
		m.dispatch(app.URLEditedMsg{URL: after})
	}
	return cmd
}

// setFocus moves focus to f, focusing or blurring the URL field to match
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focused = f
	if f == focusURL {
		return m.urlInput.Focus()
	}
	m.urlInput.Blur()
	return nil
}

// Custom message types
type clipboardCopiedMsg struct{}
type clearStatusMsg struct{}
type clearErrorMsg struct{}
type errorMsg string

// setStatusMessage shows msg in the status bar until it times out
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.errorMsg = ""
	m.statusMsg = truncate(msg, StatusMaxLength)
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// setErrorMessage shows msg in the status bar until it times out
func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.statusMsg = ""
	m.errorMsg = truncate(msg, StatusMaxLength)
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// truncate shortens s to limit characters for footer display
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
