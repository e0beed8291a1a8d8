/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys map to actions within a context. The TUI asks the registry which
action a key press means for the widget that currently has focus.

Context Hierarchy:
  - Global: bindings available everywhere
  - url_input: the URL field has focus
  - button: the Send button has focus

A key bound in a specific context overrides the global binding. Keys
that are not bound anywhere fall through to the focused widget, which is
how typing reaches the URL field.

# Configuration

Overrides come from the keybinds section of ~/.restget/config.yaml:

	keybinds:
	  global:
	    ctrl+q: quit
	  url_input:
	    ctrl+s: send

Unknown contexts or actions are rejected. ctrl+c is reserved.
*/
package keybinds
