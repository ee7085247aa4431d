package fsm

// State is a named, described node of a StateMachine.
//
// States are only created by their machine and are compared by identity:
// two states with the same name are different states unless they are the
// same *State.
type State struct {
	name        string
	description string

	owner *StateMachine // non-owning; used to reject cross-machine use
	index int           // creation order within owner
}

// Name returns the state's name.
func (s *State) Name() string {
	return s.name
}

// Description returns the state's description, or "" if none was given.
func (s *State) Description() string {
	return s.description
}

// String returns the state's name.
func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// StateOption configures a state at definition time.
type StateOption func(*stateConfig)

type stateConfig struct {
	description string
}

// WithDescription sets the description of the state being defined.
func WithDescription(description string) StateOption {
	return func(c *stateConfig) {
		c.description = description
	}
}
