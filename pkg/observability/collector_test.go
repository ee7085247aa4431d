package observability_test

import (
	"strings"
	"testing"

	"github.com/aretw0/fsm"
	"github.com/aretw0/fsm/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsWalkerActivity(t *testing.T) {
	c := observability.NewCollector("door")
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	m := fsm.New(fsm.WithName("door"), fsm.WithLifecycleHooks(c.Hooks()))
	closed, err := m.DefineInitialState("closed")
	require.NoError(t, err)
	open, err := m.DefineState("open")
	require.NoError(t, err)
	require.NoError(t, m.DefineTransition(closed, open))
	require.NoError(t, m.DefineTransition(open, closed))

	w1, err := m.Start()
	require.NoError(t, err)
	_, err = m.Start()
	require.NoError(t, err)

	_, _ = w1.MoveTo(open)   // accepted
	_, _ = w1.MoveTo(open)   // rejected: no open -> open
	_, _ = w1.MoveTo(closed) // accepted

	expected := `
# HELP fsm_moves_total Total number of walker moves, by source, destination and result
# TYPE fsm_moves_total counter
fsm_moves_total{from="closed",machine="door",result="accepted",to="open"} 1
fsm_moves_total{from="open",machine="door",result="accepted",to="closed"} 1
fsm_moves_total{from="open",machine="door",result="rejected",to="open"} 1
# HELP fsm_walkers_started_total Total number of walkers started, by initial state
# TYPE fsm_walkers_started_total counter
fsm_walkers_started_total{machine="door",state="closed"} 2
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "fsm_moves_total", "fsm_walkers_started_total")
	assert.NoError(t, err)
}

func TestCollector_MergedWithOtherHooks(t *testing.T) {
	c := observability.NewCollector("loop")

	var seen int
	counter := fsm.LifecycleHooks{OnMove: func(*fsm.MoveEvent) { seen++ }}

	m := fsm.New(fsm.WithLifecycleHooks(fsm.Merge(c.Hooks(), counter)))
	s, err := m.DefineInitialState("s")
	require.NoError(t, err)
	require.NoError(t, m.DefineTransition(s, s))

	w, err := m.Start()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ok, err := w.MoveTo(s)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.Equal(t, 3, seen)
	assert.Equal(t, 1, testutil.CollectAndCount(c, "fsm_walkers_started_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(c, "fsm_moves_total"))
}
