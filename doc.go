/*
Package fsm is a small library for defining finite state machines and walking them.

A StateMachine holds named states and the directed transitions allowed between them.
Walkers obtained from the machine each track their own current state and can only
move along defined transitions. Many walkers may share one machine.

# Concept

States are handles: the machine returns a *State for every definition, and callers
keep those handles to define transitions and to move walkers. Two states are the
same only if they are the same *State, so names need not be unique.

A move that has no transition is not an error. MoveTo reports it by returning
false and leaves the walker where it was. Errors are reserved for API misuse
(nil or foreign states, a second initial state, starting without one) and
always wrap one of the Err* sentinels inside a *ContractError.

# Usage

	m := fsm.New(fsm.WithName("door"))

	closed, _ := m.DefineInitialState("closed", fsm.WithDescription("The door is shut"))
	open, _ := m.DefineState("open")

	_ = m.DefineTransition(closed, open)
	_ = m.DefineTransition(open, closed)

	w, err := m.Start()
	if err != nil {
		log.Fatal(err)
	}

	ok, _ := w.MoveTo(open)   // true
	ok, _ = w.MoveTo(open)    // false: no open -> open transition
	fmt.Println(w.State())    // open

# Observability

Pass a *slog.Logger with WithLogger to get debug lines for definitions and moves,
and LifecycleHooks with WithLifecycleHooks to react to walker starts and moves.
Package pkg/observability turns those hooks into Prometheus metrics.

For name-based graph construction see package pkg/dsl.
*/
package fsm
