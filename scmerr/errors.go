// Package scmerr centralizes the structural error taxonomy for the engine.
//
// Only structural faults (§7: missing source/target node, a cycle in the
// graph, an unrecognized distribution or effect tag) ever surface as errors.
// Parametric and numeric faults are recovered locally by the distribution,
// effect, and propagation packages and never reach the caller.
package scmerr

import (
	"errors"
	"fmt"
)

// Sentinel structural errors.
var (
	ErrCycle               = errors.New("graph contains a cycle")
	ErrUnknownNode         = errors.New("edge references an unknown node")
	ErrUnknownDistribution = errors.New("unrecognized distribution variant")
	ErrUnknownEffect       = errors.New("unrecognized effect variant")
	ErrDuplicateNode       = errors.New("duplicate node id")
	ErrEmptyModel          = errors.New("model has no nodes")
)

// NewUnknownNodeError wraps ErrUnknownNode with the offending edge and
// endpoint for display.
func NewUnknownNodeError(edgeSource, edgeTarget, missing string) error {
	return fmt.Errorf("%w: edge %s->%s references %q", ErrUnknownNode, edgeSource, edgeTarget, missing)
}

// NewUnknownDistributionError wraps ErrUnknownDistribution with the node and tag.
func NewUnknownDistributionError(nodeID, tag string) error {
	return fmt.Errorf("%w: node %q has distribution type %q", ErrUnknownDistribution, nodeID, tag)
}

// NewUnknownEffectError wraps ErrUnknownEffect with the edge and tag.
func NewUnknownEffectError(edgeSource, edgeTarget, tag string) error {
	return fmt.Errorf("%w: edge %s->%s has effect type %q", ErrUnknownEffect, edgeSource, edgeTarget, tag)
}

// NewDuplicateNodeError wraps ErrDuplicateNode with the offending id.
func NewDuplicateNodeError(id string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateNode, id)
}

// IsStructural reports whether err is one of this package's fatal,
// surfaced error classes.
func IsStructural(err error) bool {
	return errors.Is(err, ErrCycle) ||
		errors.Is(err, ErrUnknownNode) ||
		errors.Is(err, ErrUnknownDistribution) ||
		errors.Is(err, ErrUnknownEffect) ||
		errors.Is(err, ErrDuplicateNode) ||
		errors.Is(err, ErrEmptyModel)
}
