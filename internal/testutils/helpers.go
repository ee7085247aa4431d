package testutils

import (
	"os"
	"testing"

	"github.com/aretw0/fsm"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Scenario describes a machine and a sequence of moves made by one walker.
type Scenario struct {
	Name        string       `yaml:"name"`
	Initial     string       `yaml:"initial"`
	States      []string     `yaml:"states"`
	Transitions []Transition `yaml:"transitions"`
	Moves       []Move       `yaml:"moves"`
}

// Transition is a directed edge between two state names of a Scenario.
type Transition struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Move is one MoveTo call and its expected outcome.
type Move struct {
	To       string `yaml:"to"`
	Accepted bool   `yaml:"accepted"`
	Expect   string `yaml:"expect"` // state the walker must report afterwards
}

// LoadScenarios reads a YAML list of scenarios from path.
// It fails the test immediately on error.
func LoadScenarios(t testing.TB, path string) []Scenario {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read scenarios file")

	var scenarios []Scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios), "Failed to parse scenarios file")
	require.NotEmpty(t, scenarios, "Scenarios file %s is empty", path)
	return scenarios
}

// Build defines the scenario's machine. Transitions are defined in file order,
// twice if listed twice. It returns the machine and its states by name.
func (sc Scenario) Build(t testing.TB) (*fsm.StateMachine, map[string]*fsm.State) {
	t.Helper()

	m := fsm.New(fsm.WithName(sc.Name))
	byName := make(map[string]*fsm.State)

	initial, err := m.DefineInitialState(sc.Initial)
	require.NoError(t, err)
	byName[sc.Initial] = initial

	for _, name := range sc.States {
		require.NotContains(t, byName, name, "scenario %q defines %q twice", sc.Name, name)
		s, err := m.DefineState(name)
		require.NoError(t, err)
		byName[name] = s
	}

	for _, tr := range sc.Transitions {
		from, ok := byName[tr.From]
		require.True(t, ok, "scenario %q: unknown state %q", sc.Name, tr.From)
		to, ok := byName[tr.To]
		require.True(t, ok, "scenario %q: unknown state %q", sc.Name, tr.To)
		require.NoError(t, m.DefineTransition(from, to))
	}

	return m, byName
}
