package propagation

import (
	"sort"

	"scmcore/domain"
	"scmcore/scmerr"
)

// topoSort orders model.Nodes via Kahn's algorithm. Ties are broken by node
// ID, giving a deterministic order for a fixed model (§4.3 step 1). A node
// left unvisited when the queue empties means the model contains a cycle.
func topoSort(model *domain.Model) ([]domain.Node, error) {
	indegree := make(map[string]int, len(model.Nodes))
	adj := make(map[string][]string, len(model.Nodes))
	byID := make(map[string]domain.Node, len(model.Nodes))

	for _, n := range model.Nodes {
		indegree[n.ID] = 0
		byID[n.ID] = n
	}
	for _, e := range model.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		indegree[e.Target]++
	}

	var queue []string
	for _, n := range model.Nodes {
		if indegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	sort.Strings(queue)

	ordered := make([]domain.Node, 0, len(model.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byID[id])

		var freed []string
		for _, succ := range adj[id] {
			indegree[succ]--
			if indegree[succ] == 0 {
				freed = append(freed, succ)
			}
		}
		sort.Strings(freed)
		queue = append(queue, freed...)
		sort.Strings(queue)
	}

	if len(ordered) != len(model.Nodes) {
		return nil, scmerr.ErrCycle
	}
	return ordered, nil
}
