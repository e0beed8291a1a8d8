package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerInputBindings(r)
	registerButtonBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available whatever has focus.
// Printable keys stay unbound here so they reach the URL field.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "esc", ActionQuit)
	r.Register(ContextGlobal, "tab", ActionFocusNext)
	r.Register(ContextGlobal, "shift+tab", ActionFocusPrev)
	r.Register(ContextGlobal, "pgup", ActionPageUp)
	r.Register(ContextGlobal, "pgdown", ActionPageDown)
	r.Register(ContextGlobal, "ctrl+home", ActionGoToTop)
	r.Register(ContextGlobal, "ctrl+end", ActionGoToBottom)
	r.Register(ContextGlobal, "ctrl+y", ActionCopyResponse)
}

// registerInputBindings sets up bindings while the URL field has focus
func registerInputBindings(r *Registry) {
	r.Register(ContextInput, "enter", ActionSend)
}

// registerButtonBindings sets up bindings while the Send button has focus
func registerButtonBindings(r *Registry) {
	r.RegisterMultiple(ContextButton, []string{"enter", " "}, ActionSend)
	r.Register(ContextButton, "q", ActionQuit)
}
