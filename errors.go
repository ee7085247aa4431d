package fsm

import (
	"errors"
	"fmt"
)

// ErrInitialStateDefined is returned when DefineInitialState is called on a
// machine that already has an initial state.
var ErrInitialStateDefined = errors.New("initial state already defined")

// ErrEmptyName is returned when a state is defined without a name.
var ErrEmptyName = errors.New("state name is required")

// ErrNilState is returned when a nil state is passed where a state is required.
var ErrNilState = errors.New("state is nil")

// ErrNoInitialState is returned by Start (and Validate) before an initial state exists.
var ErrNoInitialState = errors.New("no initial state defined")

// ErrForeignState is returned when a state minted by another machine is used.
var ErrForeignState = errors.New("state belongs to a different machine")

// ErrUnreachableState marks a state that no walker can ever reach from the initial state.
var ErrUnreachableState = errors.New("state unreachable from initial state")

// ContractError reports a violated precondition of a machine or walker operation.
// Callers are not expected to recover from it: it signals misuse of the API.
type ContractError struct {
	Op    string // Operation that was called, e.g. "DefineTransition"
	State string // Name of the offending state, if any
	Err   error  // One of the Err* sentinels
}

func (e *ContractError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("fsm: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fsm: %s: state %q: %v", e.Op, e.State, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple contract failures found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Errors returns all failures if err is an AggregateError.
// Otherwise returns nil.
func Errors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

func violation(op string, s *State, err error) error {
	ce := &ContractError{Op: op, Err: err}
	if s != nil {
		ce.State = s.name
	}
	return ce
}
