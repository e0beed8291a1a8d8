package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/restget/internal/keybinds"
)

// Catppuccin Mocha palette, applied unconditionally
var (
	colorBase      = lipgloss.Color("#1e1e2e")
	colorSurface   = lipgloss.Color("#45475a")
	colorOverlay   = lipgloss.Color("#6c7086")
	colorText      = lipgloss.Color("#cdd6f4")
	colorSubtext   = lipgloss.Color("#a6adc8")
	colorMauve     = lipgloss.Color("#cba6f7")
	colorRosewater = lipgloss.Color("#f5e0dc")
	colorGreen     = lipgloss.Color("#a6e3a1")
	colorRed       = lipgloss.Color("#f38ba8")
)

// Style definitions
var (
	styleApp = lipgloss.NewStyle().
			Padding(AppPaddingVertical, AppPaddingHorizontal)

	styleLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	styleText = lipgloss.NewStyle().
			Foreground(colorText)

	styleCursor = lipgloss.NewStyle().
			Foreground(colorRosewater)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, BoxPaddingHorizontal)

	styleButton = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOverlay).
			Foreground(colorText).
			Bold(true).
			Padding(0, 3)

	styleButtonFocused = styleButton.
				BorderForeground(colorMauve).
				Foreground(colorBase).
				Background(colorMauve)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorSubtext)
)

// innerWidth is the width available inside the app padding
func (m Model) innerWidth() int {
	return m.width - AppPaddingHorizontal*2
}

// resize fits the widgets to the current terminal size
func (m *Model) resize() {
	boxContent := m.innerWidth() - BorderWidth - BoxPaddingHorizontal*2

	// Leave one column for the cursor
	m.urlInput.Width = max(MinInputWidth, boxContent-1)
	m.responseView.Width = max(MinViewportWidth, boxContent)
	m.responseView.Height = max(MinViewportHeight, m.height-MainViewHeightOffset)

	m.updateResponseView()
}

// updateResponseView refreshes the viewport with the current response text.
// Wrapping only affects display; state.Response is never modified.
func (m *Model) updateResponseView() {
	content := m.state.Response
	if m.responseView.Width > 0 && content != "" {
		content = lipgloss.NewStyle().Width(m.responseView.Width).Render(content)
	}
	m.responseView.SetContent(content)
}

// renderMain renders the five widgets in fixed order plus the status bar
func (m Model) renderMain() string {
	sections := []string{
		styleLabel.Render(labelURL),
		m.renderURLField(),
		m.renderSendButton(),
		styleLabel.Render(labelResponse),
		m.renderResponse(),
		m.renderStatusBar(),
	}

	return styleApp.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderURLField() string {
	borderColor := colorOverlay
	if m.focused == focusURL {
		borderColor = colorMauve
	}

	return styleBox.
		BorderForeground(borderColor).
		Width(m.innerWidth() - BorderWidth).
		Render(m.urlInput.View())
}

// renderSendButton renders the button; it is never disabled
func (m Model) renderSendButton() string {
	if m.focused == focusSend {
		return styleButtonFocused.Render(labelSend)
	}
	return styleButton.Render(labelSend)
}

// renderResponse renders the read-only response area
func (m Model) renderResponse() string {
	return styleBox.
		BorderForeground(colorSurface).
		Width(m.innerWidth() - BorderWidth).
		Render(m.responseView.View())
}

// renderStatusBar renders footer messages on the left and key hints on the right
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.errorMsg != "":
		left = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		left = styleSuccess.Render(m.statusMsg)
	}

	hints := []string{
		m.hint(keybinds.ActionSend, "send"),
		m.hint(keybinds.ActionFocusNext, "focus"),
		m.hint(keybinds.ActionCopyResponse, "copy"),
		m.hint(keybinds.ActionQuit, "quit"),
	}
	right := styleSubtle.Render(strings.Join(hints, " • "))

	spacing := m.innerWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// hint renders "<keys> <desc>" for the focused context
func (m Model) hint(action keybinds.Action, desc string) string {
	return m.keybinds.GetBindingString(m.context(), action) + " " + desc
}
