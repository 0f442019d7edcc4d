package domain

import "scmcore/scmerr"

// Validate performs the structural checks spec.md §6.1/§7 require before a
// propagation starts: duplicate node ids, edges referencing unknown nodes,
// and unrecognized distribution/effect tags. It returns the first fault
// found, matching §7's "a structured error enumerating the first structural
// fault" contract. It does not attempt the out-of-scope structural repair
// (disconnected-component stitching, exogenous/terminal relabelling) —
// that remains a model-source collaborator's job.
func (m *Model) Validate() error {
	if len(m.Nodes) == 0 {
		return scmerr.ErrEmptyModel
	}

	seen := make(map[string]struct{}, len(m.Nodes))
	for _, n := range m.Nodes {
		if _, dup := seen[n.ID]; dup {
			return scmerr.NewDuplicateNodeError(n.ID)
		}
		seen[n.ID] = struct{}{}

		if !n.Distribution.Type.IsKnown() {
			return scmerr.NewUnknownDistributionError(n.ID, string(n.Distribution.Type))
		}
	}

	for _, e := range m.Edges {
		if _, ok := seen[e.Source]; !ok {
			return scmerr.NewUnknownNodeError(e.Source, e.Target, e.Source)
		}
		if _, ok := seen[e.Target]; !ok {
			return scmerr.NewUnknownNodeError(e.Source, e.Target, e.Target)
		}
		if !e.Effect.Type.IsKnown() {
			return scmerr.NewUnknownEffectError(e.Source, e.Target, string(e.Effect.Type))
		}
	}

	return nil
}
