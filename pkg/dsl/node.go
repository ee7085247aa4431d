package dsl

// NodeBuilder provides a fluent API for configuring a state.
type NodeBuilder struct {
	name        string
	description string
	targets     []string
	builder     *Builder
}

// Describe sets the description of the state.
func (n *NodeBuilder) Describe(description string) *NodeBuilder {
	n.description = description
	return n
}

// Go adds transitions to the target states.
// Targets may be added to the builder later; they are resolved by Build.
func (n *NodeBuilder) Go(targets ...string) *NodeBuilder {
	n.targets = append(n.targets, targets...)
	return n
}

// Loop adds a transition from the state to itself.
func (n *NodeBuilder) Loop() *NodeBuilder {
	return n.Go(n.name)
}

// Terminal removes every outgoing transition added so far.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.targets = nil
	return n
}

// Add continues building with another state of the same graph.
func (n *NodeBuilder) Add(name string) *NodeBuilder {
	return n.builder.Add(name)
}
