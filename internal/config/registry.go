package config

// Stack describes one selectable project stack: a template-and-dependency
// bundle offered to the user.
type Stack struct {
	// ID is the stack identifier used on the command line and in config file names.
	ID string
	// Label is the human-readable name shown in prompts.
	Label string
}

// Registry holds the set of known stacks in registration order.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	stacks []Stack
	index  map[string]int
}

// NewRegistry creates a Registry from the given stacks.
func NewRegistry(stacks ...Stack) *Registry {
	r := &Registry{
		stacks: stacks,
		index:  make(map[string]int, len(stacks)),
	}
	for i, s := range stacks {
		r.index[s.ID] = i
	}
	return r
}

// DefaultRegistry returns the built-in stack registry.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Stack{ID: "react", Label: "React"},
		Stack{ID: "preact", Label: "Preact"},
		Stack{ID: "svelte", Label: "Svelte"},
		Stack{ID: "vanilla", Label: "Vanilla JavaScript"},
	)
}

// IDs returns the stack identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.stacks))
	for i, s := range r.stacks {
		ids[i] = s.ID
	}
	return ids
}

// Stacks returns the registered stacks in registration order.
func (r *Registry) Stacks() []Stack {
	out := make([]Stack, len(r.stacks))
	copy(out, r.stacks)
	return out
}

// Label returns the human-readable label for a stack identifier.
func (r *Registry) Label(id string) (string, bool) {
	i, ok := r.index[id]
	if !ok {
		return "", false
	}
	return r.stacks[i].Label, true
}

// Known reports whether the identifier names a registered stack.
func (r *Registry) Known(id string) bool {
	_, ok := r.index[id]
	return ok
}
