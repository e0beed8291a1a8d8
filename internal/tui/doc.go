/*
Package tui implements the terminal user interface for restget.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: hosts app.State plus widget state (text input, viewport, focus)
  - Update: turns key presses into app messages and hands them to app.Update
  - View: renders the current state to the terminal

app.State is never modified here directly. Every change goes through
app.Update via Model.dispatch, and widgets bound to state (the URL field
and the response viewport) are refreshed afterwards.

# Layout

The view is one column, always the same widgets in the same order:

	Enter URL:
	╭──────────────────────────────╮
	│ https://httpbin.org/get      │
	╰──────────────────────────────╯
	╭──────╮
	│ Send │
	╰──────╯
	Response:
	╭──────────────────────────────╮
	│ ...                          │
	╰──────────────────────────────╯
	status                     hints

The Send button has no disabled state. Pressing it while a request is in
flight starts another one; the last completion delivered wins.

# Threading Model

The TUI runs in Bubble Tea's single event loop goroutine. Each fetch runs
in the goroutine Bubble Tea spawns for its tea.Cmd, and its result comes
back to the loop as an app.ResponseReceivedMsg or app.ErrorReceivedMsg.

# Example Usage

	err := tui.Run(tui.Options{
		Client:     executor.New(executor.Options{}),
		InitialURL: "https://httpbin.org/get",
	})
*/
package tui
