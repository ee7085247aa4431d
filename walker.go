package fsm

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Walker tracks one position in a StateMachine.
//
// Several walkers can share a machine and move independently; each only
// reads the machine's transitions. A single walker is safe for concurrent use.
type Walker struct {
	mu      sync.Mutex
	id      string
	current *State
	history []*State

	canMove func(from, to *State) (bool, error)
	logger  *slog.Logger
	hooks   LifecycleHooks
}

func newWalker(start *State, canMove func(from, to *State) (bool, error), logger *slog.Logger, hooks LifecycleHooks) *Walker {
	id := uuid.NewString()
	return &Walker{
		id:      id,
		current: start,
		history: []*State{start},
		canMove: canMove,
		logger:  logger.With("walker", id),
		hooks:   hooks,
	}
}

// ID returns the walker's unique identifier.
func (w *Walker) ID() string {
	return w.id
}

// MoveTo tries to move the walker to state.
//
// It returns true if the machine defines a transition from the current state
// to state, in which case state becomes the current state. It returns false,
// with a nil error, if no such transition exists; the walker is then left
// where it was. A non-nil error means the call itself was invalid.
func (w *Walker) MoveTo(state *State) (bool, error) {
	if state == nil {
		return false, violation("MoveTo", nil, ErrNilState)
	}

	w.mu.Lock()
	from := w.current
	ok, err := w.canMove(from, state)
	if err != nil {
		w.mu.Unlock()
		return false, err
	}
	if ok {
		w.current = state
		w.history = append(w.history, state)
	}
	w.mu.Unlock()

	if ok {
		w.logger.Debug("move accepted", "from", from.name, "to", state.name)
	} else {
		w.logger.Debug("move rejected", "from", from.name, "to", state.name)
	}
	w.hooks.emitMove(w.id, from, state, ok)
	return ok, nil
}

// State returns the walker's current state. It is never nil.
func (w *Walker) State() *State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// History returns the states the walker has occupied, starting with the
// initial state. Self-loop moves appear as repeated entries.
func (w *Walker) History() []*State {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*State, len(w.history))
	copy(out, w.history)
	return out
}
