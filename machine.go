package fsm

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/fsm/internal/logging"
	"github.com/aretw0/fsm/internal/validator"
)

// StateMachine owns a set of states and the directed transitions between them.
// It is built once with the Define* methods and then traversed by any number
// of Walkers obtained from Start.
//
// All methods are safe for concurrent use. Transitions defined after a walker
// was started are visible to that walker. The zero value is an empty, unnamed
// machine without logging or hooks; use New to configure one.
type StateMachine struct {
	mu          sync.RWMutex
	name        string
	initial     *State
	states      []*State
	transitions map[*State]map[*State]struct{}

	logger *slog.Logger
	hooks  LifecycleHooks
}

// Option defines a functional option for configuring a StateMachine.
type Option func(*StateMachine)

// WithName sets a descriptive name for the machine. It is attached to every log line.
func WithName(name string) Option {
	return func(m *StateMachine) {
		m.name = name
	}
}

// WithLogger sets a custom structured logger for the machine and its walkers.
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks for the machine's walkers.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(m *StateMachine) {
		m.hooks = hooks
	}
}

// New creates an empty state machine.
func New(opts ...Option) *StateMachine {
	m := &StateMachine{
		transitions: make(map[*State]map[*State]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.name != "" {
		m.logger = m.logger.With("machine", m.name)
	}
	return m
}

// Name returns the name given with WithName, or "".
func (m *StateMachine) Name() string {
	return m.name
}

// DefineInitialState creates the initial state of the machine.
// It must be called exactly once; a second call fails with ErrInitialStateDefined.
func (m *StateMachine) DefineInitialState(name string, opts ...StateOption) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initial != nil {
		return nil, violation("DefineInitialState", m.initial, ErrInitialStateDefined)
	}
	s, err := m.createState("DefineInitialState", name, true, opts)
	if err != nil {
		return nil, err
	}
	m.initial = s
	return s, nil
}

// DefineState creates and adds a new state to the machine.
// Every call returns a new, distinct state, even for a name already in use.
// The name is required: "" counts as unset and fails with ErrEmptyName.
func (m *StateMachine) DefineState(name string, opts ...StateOption) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createState("DefineState", name, false, opts)
}

// DefineTransition allows walkers to move from start to destination.
// Defining the same transition again is a no-op.
func (m *StateMachine) DefineTransition(start, destination *State) error {
	const op = "DefineTransition"

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkOwned(op, start, destination); err != nil {
		return err
	}
	m.transitions[start][destination] = struct{}{}
	m.logger.Debug("transition defined", "from", start.name, "to", destination.name)
	return nil
}

// Start creates a new Walker positioned at the initial state.
// It fails with ErrNoInitialState if DefineInitialState has not been called.
func (m *StateMachine) Start() (*Walker, error) {
	m.mu.RLock()
	initial := m.initial
	m.mu.RUnlock()

	if initial == nil {
		return nil, violation("Start", nil, ErrNoInitialState)
	}

	w := newWalker(initial, m.CanMoveBetween, m.logger, m.hooks)
	w.logger.Debug("walker started", "state", initial.name)
	m.hooks.emitStart(w.id, initial)
	return w, nil
}

// CanMoveBetween reports whether the machine defines a transition from -> to.
// Both states must be non-nil and belong to this machine.
func (m *StateMachine) CanMoveBetween(from, to *State) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkOwned("CanMoveBetween", from, to); err != nil {
		return false, err
	}
	_, ok := m.transitions[from][to]
	return ok, nil
}

// InitialState returns the initial state, or nil if it has not been defined yet.
func (m *StateMachine) InitialState() *State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initial
}

// States returns all states in the order they were defined.
func (m *StateMachine) States() []*State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*State, len(m.states))
	copy(out, m.states)
	return out
}

// Transitions returns the states directly reachable from from, in definition order.
func (m *StateMachine) Transitions(from *State) ([]*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkOwned("Transitions", from); err != nil {
		return nil, err
	}
	return m.destinations(from), nil
}

// Sinks returns the states without outgoing transitions, in definition order.
func (m *StateMachine) Sinks() []*State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := validator.Sinks(len(m.states), m.adjacency)
	out := make([]*State, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.states[i])
	}
	return out
}

// Validate checks that every state can be reached from the initial state.
// Unreachable states are reported together in an *AggregateError whose
// entries wrap ErrUnreachableState.
func (m *StateMachine) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.initial == nil {
		return violation("Validate", nil, ErrNoInitialState)
	}

	unreachable := validator.Unreachable(len(m.states), m.initial.index, m.adjacency)
	if len(unreachable) == 0 {
		return nil
	}

	errs := make([]error, 0, len(unreachable))
	for _, i := range unreachable {
		errs = append(errs, violation("Validate", m.states[i], ErrUnreachableState))
	}
	return &AggregateError{Errors: errs}
}

// createState must be called with the write lock held.
func (m *StateMachine) createState(op, name string, initial bool, opts []StateOption) (*State, error) {
	if name == "" {
		return nil, violation(op, nil, ErrEmptyName)
	}
	if m.transitions == nil {
		m.transitions = make(map[*State]map[*State]struct{})
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}

	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &State{
		name:        name,
		description: cfg.description,
		owner:       m,
		index:       len(m.states),
	}
	m.states = append(m.states, s)

	// Every state gets its (empty) outgoing set up front.
	m.transitions[s] = make(map[*State]struct{})

	m.logger.Debug("state defined", "state", name, "initial", initial)
	return s, nil
}

func (m *StateMachine) checkOwned(op string, states ...*State) error {
	for _, s := range states {
		if s == nil {
			return violation(op, nil, ErrNilState)
		}
		if s.owner != m {
			return violation(op, s, ErrForeignState)
		}
	}
	return nil
}

func (m *StateMachine) destinations(from *State) []*State {
	out := make([]*State, 0, len(m.transitions[from]))
	for s := range m.transitions[from] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

// adjacency adapts the transition relation to the index graph used by the validator.
func (m *StateMachine) adjacency(i int) []int {
	dests := m.destinations(m.states[i])
	out := make([]int, len(dests))
	for k, s := range dests {
		out[k] = s.index
	}
	return out
}
