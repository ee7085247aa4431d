package fsm

import "time"

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventWalkerStart  EventType = "walker_start"
	EventMoveAccepted EventType = "move_accepted"
	EventMoveRejected EventType = "move_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	WalkerID  string    `json:"walker_id"`
}

// StartEvent is emitted when a machine mints a new walker.
type StartEvent struct {
	EventBase
	State *State `json:"-"`
}

// MoveEvent is emitted for every MoveTo that reached the transition check.
// Type tells whether the move was accepted or rejected.
type MoveEvent struct {
	EventBase
	From *State `json:"-"`
	To   *State `json:"-"`
}

// LifecycleHooks defines callbacks for walker observability.
// Any of them may be nil. Hooks run synchronously on the caller's goroutine
// and must not call back into the walker that emitted them.
type LifecycleHooks struct {
	OnStart  func(*StartEvent)
	OnMove   func(*MoveEvent)
	OnReject func(*MoveEvent)
}

func (h LifecycleHooks) emitStart(walkerID string, s *State) {
	if h.OnStart == nil {
		return
	}
	h.OnStart(&StartEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: EventWalkerStart, WalkerID: walkerID},
		State:     s,
	})
}

func (h LifecycleHooks) emitMove(walkerID string, from, to *State, accepted bool) {
	evt := &MoveEvent{
		EventBase: EventBase{Timestamp: time.Now(), WalkerID: walkerID},
		From:      from,
		To:        to,
	}
	if accepted {
		if h.OnMove != nil {
			evt.Type = EventMoveAccepted
			h.OnMove(evt)
		}
		return
	}
	if h.OnReject != nil {
		evt.Type = EventMoveRejected
		h.OnReject(evt)
	}
}

// Merge combines hook sets; each callback of the result calls the
// non-nil callbacks of every input in order.
func Merge(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	merged.OnStart = func(e *StartEvent) {
		for _, h := range hooks {
			if h.OnStart != nil {
				h.OnStart(e)
			}
		}
	}
	merged.OnMove = func(e *MoveEvent) {
		for _, h := range hooks {
			if h.OnMove != nil {
				h.OnMove(e)
			}
		}
	}
	merged.OnReject = func(e *MoveEvent) {
		for _, h := range hooks {
			if h.OnReject != nil {
				h.OnReject(e)
			}
		}
	}
	return merged
}
