package sensitivity

import "scmcore/domain"

// reachableFrom returns every node ID reachable from start by forward BFS,
// excluding start itself (§4.4 step 2 "every node D reachable from X").
func reachableFrom(model *domain.Model, start string) []string {
	adj := make(map[string][]string, len(model.Nodes))
	for _, e := range model.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	var order []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			order = append(order, next)
			queue = append(queue, next)
		}
	}
	return order
}
