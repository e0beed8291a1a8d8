package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal Context = "global"    // Available everywhere
	ContextInput  Context = "url_input" // URL field has focus
	ContextButton Context = "button"    // Send button has focus
)

const (
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	ActionSend Action = "send" // Activate the Send button

	ActionFocusNext Action = "focus_next" // Move focus to the next widget
	ActionFocusPrev Action = "focus_prev" // Move focus to the previous widget

	ActionPageUp     Action = "page_up"      // Scroll response up one page
	ActionPageDown   Action = "page_down"    // Scroll response down one page
	ActionGoToTop    Action = "go_to_top"    // Scroll response to top
	ActionGoToBottom Action = "go_to_bottom" // Scroll response to bottom

	ActionCopyResponse Action = "copy_response" // Copy response text to clipboard
)

// allActions lists every action a user may bind
var allActions = map[Action]bool{
	ActionQuit:         true,
	ActionQuitForce:    true,
	ActionSend:         true,
	ActionFocusNext:    true,
	ActionFocusPrev:    true,
	ActionPageUp:       true,
	ActionPageDown:     true,
	ActionGoToTop:      true,
	ActionGoToBottom:   true,
	ActionCopyResponse: true,
}

var allContexts = map[Context]bool{
	ContextGlobal: true,
	ContextInput:  true,
	ContextButton: true,
}

// IsValidAction reports whether a is a known action
func IsValidAction(a Action) bool {
	return allActions[a]
}

// IsValidContext reports whether c is a known context
func IsValidContext(c Context) bool {
	return allContexts[c]
}
