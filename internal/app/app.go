// Package app holds the application state and the controller that moves it
// from one state to the next in response to messages.
//
// Update is the only place State changes. It runs on the Bubble Tea event
// loop; network work happens in the tea.Cmd it returns, and the result comes
// back as another message.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/restget/internal/logger"
)

// Fetcher is the shared client handle. Implementations must be safe for
// concurrent use and must not change after construction.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// State is the whole application state
type State struct {
	URL      string
	Response string
	Client   Fetcher
}

// URLEditedMsg is sent on every change to the URL field
type URLEditedMsg struct {
	URL string
}

// SendRequestedMsg is sent when the Send button is activated
type SendRequestedMsg struct{}

// ResponseReceivedMsg carries the body of a completed GET
type ResponseReceivedMsg struct {
	Body string
}

// ErrorReceivedMsg carries the formatted error of a failed GET
type ErrorReceivedMsg struct {
	Message string
}

// ErrNoClient is reported when a send is attempted without a client
var ErrNoClient = errors.New("no HTTP client configured")

// NewState returns the initial state: empty URL and response
func NewState(client Fetcher) State {
	return State{Client: client}
}

// Update applies msg to s and returns the new state plus an optional command.
// Sends are not deduplicated: every SendRequestedMsg starts an independent
// fetch, and whichever completion is delivered last owns Response.
func Update(s State, msg tea.Msg) (State, tea.Cmd) {
	switch msg := msg.(type) {
	case URLEditedMsg:
		s.URL = msg.URL
		return s, nil

	case SendRequestedMsg:
		logger.S.Debugw("send requested", "url", s.URL)
		return s, Fetch(s.Client, s.URL)

	case ResponseReceivedMsg:
		s.Response = msg.Body
		return s, nil

	case ErrorReceivedMsg:
		s.Response = msg.Message
		return s, nil
	}

	return s, nil
}

// Fetch returns a command that GETs url with client and resolves to
// ResponseReceivedMsg or ErrorReceivedMsg. url and client are captured by
// value so later edits do not affect a fetch already scheduled.
func Fetch(client Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return ErrorReceivedMsg{Message: FormatError(ErrNoClient)}
		}

		body, err := client.Fetch(context.Background(), url)
		if err != nil {
			logger.S.Infow("request failed", "url", url, "error", err)
			return ErrorReceivedMsg{Message: FormatError(err)}
		}
		return ResponseReceivedMsg{Body: body}
	}
}

// FormatError renders err for the response area, keeping the full detail
// of the underlying error chain
func FormatError(err error) string {
	return fmt.Sprintf("Error: %+v", err)
}
