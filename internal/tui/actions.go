package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/restget/internal/logger"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// copyToClipboard copies the full response text to the clipboard
func (m *Model) copyToClipboard() tea.Cmd {
	text := m.state.Response
	return func() tea.Msg {
		if text == "" {
			return errorMsg("No response to copy")
		}

		if err := writeClipboard(text); err != nil {
			logger.S.Warnw("clipboard write failed", "error", err)
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}

		return clipboardCopiedMsg{}
	}
}
