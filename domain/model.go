// Package domain holds the frozen description the propagation engine
// consumes: nodes, edges, distributions, and effects. Nothing in this
// package samples or propagates anything — it is pure data plus the
// structural validation spec.md §7 requires before a run starts.
package domain

import "sort"

// NodeKind classifies a node. Only KindExogenous has distinct behavior in
// the engine (§4.3); every other variant is treated as endogenous.
type NodeKind string

const (
	KindExogenous  NodeKind = "exogenous"
	KindEndogenous NodeKind = "endogenous"
	KindTerminal   NodeKind = "terminal"
	KindMediator   NodeKind = "mediator"
	KindModerator  NodeKind = "moderator"
)

// CircuitBreakers holds the optional per-node stabilization policy (§4.3
// steps 3-4). Zero values mean "not set"; defaults are merged at use time by
// the propagation package, never mutated here.
type CircuitBreakers struct {
	Min            *float64
	Max            *float64
	PriorWeight    *float64
	MaxStdDevRatio *float64
}

// Node is a vertex in the model. Label, Units, and Zone are pass-through
// metadata the core never interprets.
type Node struct {
	ID              string
	Label           string
	Units           string
	Zone            string
	Kind            NodeKind
	Distribution    Distribution
	CircuitBreakers CircuitBreakers
}

// Edge is a directed arc carrying an effect from Source to Target.
// Relationship is pass-through metadata; an input edge's style, weight, and
// label are not carried.
type Edge struct {
	Source       string
	Target       string
	Relationship string
	Effect       Effect
}

// Model is the frozen, read-only description handed to the engine. The
// engine never mutates a Model, and concurrent propagations against the
// same Model are safe (§5).
type Model struct {
	ID          ModelID
	Title       string
	Description string
	Nodes       []Node
	Edges       []Edge
	Zones       []string
	KeyInsights []string
}

// EnsureID returns m.ID, generating and storing one via NewModelID first if
// it is unset. Safe to call on every run entry point; callers that already
// carry an ID (e.g. round-tripped from a JSON document) keep it unchanged.
func (m *Model) EnsureID() ModelID {
	if m.ID.IsEmpty() {
		m.ID = NewModelID()
	}
	return m.ID
}

// NodeByID returns the node with the given id, if present.
func (m *Model) NodeByID(id string) (Node, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// InEdges returns every edge targeting id, sorted by source node ID.
// Iteration order of in-edges for a node is implementation-defined but must
// be consistent (§4.3); sorting by source ID keeps it independent of
// edge-declaration order in the input document.
func (m *Model) InEdges(id string) []Edge {
	var edges []Edge
	for _, e := range m.Edges {
		if e.Target == id {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Source < edges[j].Source })
	return edges
}

// HasOutEdges reports whether id has any outgoing edge (used to identify
// terminal nodes for bottleneck detection, independent of the node's
// declared Kind).
func (m *Model) HasOutEdges(id string) bool {
	for _, e := range m.Edges {
		if e.Source == id {
			return true
		}
	}
	return false
}
