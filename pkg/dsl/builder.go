package dsl

import (
	"fmt"

	"github.com/aretw0/fsm"
)

// Builder manages the graph construction.
type Builder struct {
	opts    []fsm.Option
	initial string
	order   []string
	nodes   map[string]*NodeBuilder
	errs    []error
}

// New creates a new graph builder. The options are passed to fsm.New on Build.
func New(opts ...fsm.Option) *Builder {
	return &Builder{
		opts:  opts,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new state in the graph.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	nb := &NodeBuilder{
		name:    name,
		builder: b,
	}
	b.nodes[name] = nb
	b.order = append(b.order, name)
	return nb
}

// Initial adds (or fetches) a state and marks it as the initial state.
// Marking a second, different state is reported by Build.
func (b *Builder) Initial(name string) *NodeBuilder {
	if b.initial != "" && b.initial != name {
		b.errs = append(b.errs, fmt.Errorf("initial state %q already set, cannot use %q: %w", b.initial, name, fsm.ErrInitialStateDefined))
	} else {
		b.initial = name
	}
	return b.Add(name)
}

// Build defines every state and transition on a new fsm.StateMachine.
// States are defined in the order they were first added.
func (b *Builder) Build() (*Machine, error) {
	if len(b.errs) > 0 {
		return nil, &fsm.AggregateError{Errors: b.errs}
	}
	if b.initial == "" {
		return nil, fmt.Errorf("failed to build machine: %w", fsm.ErrNoInitialState)
	}

	m := fsm.New(b.opts...)
	byName := make(map[string]*fsm.State, len(b.order))

	for _, name := range b.order {
		nb := b.nodes[name]

		define := m.DefineState
		if name == b.initial {
			define = m.DefineInitialState
		}
		s, err := define(name, fsm.WithDescription(nb.description))
		if err != nil {
			return nil, fmt.Errorf("failed to define state %q: %w", name, err)
		}
		byName[name] = s
	}

	for _, name := range b.order {
		for _, target := range b.nodes[name].targets {
			to, ok := byName[target]
			if !ok {
				return nil, fmt.Errorf("state %q has transition to unknown state %q", name, target)
			}
			if err := m.DefineTransition(byName[name], to); err != nil {
				return nil, fmt.Errorf("failed to define transition %q -> %q: %w", name, target, err)
			}
		}
	}

	return &Machine{StateMachine: m, byName: byName}, nil
}

// Machine is a built state machine whose states can be looked up by name.
type Machine struct {
	*fsm.StateMachine
	byName map[string]*fsm.State
}

// State returns the state defined under name, or nil if there is none.
func (m *Machine) State(name string) *fsm.State {
	return m.byName[name]
}

// MoveTo moves w to the state called name.
// An unknown name is an error rather than a rejected move.
func (m *Machine) MoveTo(w *fsm.Walker, name string) (bool, error) {
	s, ok := m.byName[name]
	if !ok {
		return false, fmt.Errorf("unknown state %q", name)
	}
	return w.MoveTo(s)
}
