package propagation

import "time"

// NodeState names a stage in a node's one-way production lifecycle during a
// single propagation call: Pending -> Producing -> Stabilized -> Summarized.
// Transitions are strictly forward; the engine never revisits a node
// (§4.3 "State machine").
type NodeState int

const (
	StatePending NodeState = iota
	StateProducing
	StateStabilized
	StateSummarized
)

func (s NodeState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateProducing:
		return "producing"
	case StateStabilized:
		return "stabilized"
	case StateSummarized:
		return "summarized"
	default:
		return "unknown"
	}
}

// NodeAudit records the terminal state reached by a single node during a
// propagation, for callers that want per-node diagnostics without the full
// sample vectors. Duration covers sampling/production through KDE
// summarization; Warnings collects any stabilization events (circuit
// breaker clamps, variance compression) the node triggered along the way.
type NodeAudit struct {
	NodeID   string
	State    NodeState
	Mode     string // "intervened", "exogenous", or "endogenous"
	Duration time.Duration
	Warnings []string
}
