package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/restget/internal/app"
	"github.com/studiowebux/restget/internal/keybinds"
	"github.com/studiowebux/restget/internal/logger"
)

// New creates a new TUI model
func New(opts Options) Model {
	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	input := textinput.New()
	input.Placeholder = urlPlaceholder
	input.Prompt = ""
	input.PlaceholderStyle = styleSubtle
	input.TextStyle = styleText
	input.Cursor.Style = styleCursor
	input.Focus()

	m := Model{
		state:        app.NewState(opts.Client),
		keybinds:     registry,
		urlInput:     input,
		responseView: viewport.New(DefaultWidth, DefaultHeight),
		focused:      focusURL,
		width:        DefaultWidth,
		height:       DefaultHeight,
	}
	m.resize()

	if opts.InitialURL != "" {
		m.dispatch(app.URLEditedMsg{URL: opts.InitialURL})
		m.urlInput.CursorEnd()
	}

	return m
}

// Run starts the TUI
func Run(opts Options) error {
	m := New(opts)

	logger.S.Infow("starting tui", "initial_url", opts.InitialURL)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	logger.S.Infow("tui exited")
	return nil
}
