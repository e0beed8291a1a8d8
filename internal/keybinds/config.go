package keybinds

import (
	"fmt"
	"sort"
)

// reservedKeys cannot be rebound so the program can always be exited
var reservedKeys = map[string]bool{
	"ctrl+c": true,
}

// ApplyConfig applies user overrides (context -> key -> action) to a registry.
// User bindings override default bindings. Every override is validated
// before any is applied, so a bad config leaves the registry untouched.
func ApplyConfig(registry *Registry, overrides map[string]map[string]string) error {
	type binding struct {
		context Context
		key     string
		action  Action
	}
	var pending []binding

	contexts := make([]string, 0, len(overrides))
	for name := range overrides {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	for _, name := range contexts {
		context := Context(name)
		if !IsValidContext(context) {
			return fmt.Errorf("unknown keybind context %q", name)
		}
		for key, actionStr := range overrides[name] {
			action := Action(actionStr)
			if key == "" {
				return fmt.Errorf("empty key in context %q", name)
			}
			if !IsValidAction(action) {
				return fmt.Errorf("unknown action %q for key %q in context %q", actionStr, key, name)
			}
			if reservedKeys[key] {
				return fmt.Errorf("key %q is reserved and cannot be rebound", key)
			}
			pending = append(pending, binding{context, key, action})
		}
	}

	for _, b := range pending {
		registry.Register(b.context, b.key, b.action)
	}
	return nil
}

// LoadOrDefault returns the default registry with overrides applied
func LoadOrDefault(overrides map[string]map[string]string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if len(overrides) == 0 {
		return registry, nil
	}

	if err := ApplyConfig(registry, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}
	return registry, nil
}
