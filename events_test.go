package fsm_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleHooks(t *testing.T) {
	var starts []*fsm.StartEvent
	var moves, rejects []*fsm.MoveEvent

	hooks := fsm.LifecycleHooks{
		OnStart:  func(e *fsm.StartEvent) { starts = append(starts, e) },
		OnMove:   func(e *fsm.MoveEvent) { moves = append(moves, e) },
		OnReject: func(e *fsm.MoveEvent) { rejects = append(rejects, e) },
	}
	m, a, b, c := newABC(t, fsm.WithLifecycleHooks(hooks))

	w, err := m.Start()
	require.NoError(t, err)
	require.Len(t, starts, 1)
	assert.Equal(t, fsm.EventWalkerStart, starts[0].Type)
	assert.Equal(t, w.ID(), starts[0].WalkerID)
	assert.Same(t, a, starts[0].State)
	assert.False(t, starts[0].Timestamp.IsZero())

	_, _ = w.MoveTo(c)
	_, _ = w.MoveTo(b)

	require.Len(t, rejects, 1)
	assert.Equal(t, fsm.EventMoveRejected, rejects[0].Type)
	assert.Same(t, a, rejects[0].From)
	assert.Same(t, c, rejects[0].To)

	require.Len(t, moves, 1)
	assert.Equal(t, fsm.EventMoveAccepted, moves[0].Type)
	assert.Same(t, a, moves[0].From)
	assert.Same(t, b, moves[0].To)

	// Invalid calls never reach the hooks.
	_, _ = w.MoveTo(nil)
	assert.Len(t, moves, 1)
	assert.Len(t, rejects, 1)
}

func TestMergeHooks(t *testing.T) {
	var order []string
	first := fsm.LifecycleHooks{
		OnMove: func(*fsm.MoveEvent) { order = append(order, "first") },
	}
	second := fsm.LifecycleHooks{
		OnMove:   func(*fsm.MoveEvent) { order = append(order, "second") },
		OnReject: func(*fsm.MoveEvent) { order = append(order, "reject") },
	}

	m, _, b, c := newABC(t, fsm.WithLifecycleHooks(fsm.Merge(first, second)))
	w, err := m.Start()
	require.NoError(t, err)

	_, _ = w.MoveTo(b)
	_, _ = w.MoveTo(b)
	_, _ = w.MoveTo(c)

	assert.Equal(t, []string{"first", "second", "reject", "first", "second"}, order)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, _, b, _ := newABC(t, fsm.WithName("orders"), fsm.WithLogger(logger))
	assert.Equal(t, "orders", m.Name())

	w, err := m.Start()
	require.NoError(t, err)
	_, _ = w.MoveTo(b)

	out := buf.String()
	assert.Contains(t, out, "machine=orders")
	assert.Contains(t, out, "state=a initial=true")
	assert.Contains(t, out, "state=b initial=false")
	assert.Contains(t, out, "walker started")
	assert.Contains(t, out, "move accepted")
	assert.Contains(t, out, "walker="+w.ID())
}
