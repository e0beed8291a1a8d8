package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/restget/internal/app"
	"github.com/studiowebux/restget/internal/keybinds"
)

// context maps the focused widget to its keybind context
func (m *Model) context() keybinds.Context {
	if m.focused == focusSend {
		return keybinds.ContextButton
	}
	return keybinds.ContextInput
}

// handleKey routes a key press to a bound action, or to the URL field
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(m.context(), msg.String()); ok {
		return m.handleAction(action)
	}

	if m.focused != focusURL {
		return nil
	}
	return m.updateInput(msg)
}

// handleAction performs a keybind action
func (m *Model) handleAction(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionSend:
		// No in-flight guard: every activation starts a new request
		return m.dispatch(app.SendRequestedMsg{})

	case keybinds.ActionFocusNext:
		return m.setFocus((m.focused + 1) % focusCount)

	case keybinds.ActionFocusPrev:
		return m.setFocus((m.focused + focusCount - 1) % focusCount)

	case keybinds.ActionPageUp:
		m.responseView.PageUp()

	case keybinds.ActionPageDown:
		m.responseView.PageDown()

	case keybinds.ActionGoToTop:
		m.responseView.GotoTop()

	case keybinds.ActionGoToBottom:
		m.responseView.GotoBottom()

	case keybinds.ActionCopyResponse:
		return m.copyToClipboard()
	}

	return nil
}
