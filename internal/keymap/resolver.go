package keymap

import "slices"

// Resolver looks up the action bound to a key string as produced by
// tea.KeyMsg.String.
type Resolver struct {
	actions map[string]Action
}

// NewResolver indexes bindings. When a key appears twice the later binding
// wins; Conflicts reports such keys.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[string]Action, len(bindings)*2)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Conflicts returns the keys bound to more than one action, sorted.
func Conflicts(bindings []Binding) []string {
	owner := make(map[string]Action)
	var out []string
	for _, b := range bindings {
		for _, key := range b.Keys {
			prev, seen := owner[key]
			switch {
			case !seen:
				owner[key] = b.Action
			case prev != b.Action && !slices.Contains(out, key):
				out = append(out, key)
			}
		}
	}
	slices.Sort(out)
	return out
}
