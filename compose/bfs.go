package compose

import "github.com/ra-bench/ra-gen/ra"

// findFirstTerminal returns the rendezvous location of a: an accepting
// location maximising BFS distance from a's initial location, ties broken
// by insertion order. Traversal follows Outgoing in insertion order, so the
// result is fully determined by a's structure (no randomness involved).
func findFirstTerminal(a *ra.RegisterAutomaton) (string, error) {
	dist := make(map[string]int)
	order := make(map[string]int)
	for i, loc := range a.Locations() {
		order[loc.Name] = i
	}

	start := a.InitialLocation().Name
	dist[start] = 0
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range a.Outgoing(cur) {
			if _, seen := dist[t.To]; seen {
				continue
			}
			dist[t.To] = dist[cur] + 1
			queue = append(queue, t.To)
		}
	}

	best := ""
	bestDist := -1
	for _, loc := range a.Locations() {
		d, reachable := dist[loc.Name]
		if !reachable || !loc.IsAccepting {
			continue
		}
		if d > bestDist || (d == bestDist && order[loc.Name] < order[best]) {
			best = loc.Name
			bestDist = d
		}
	}
	if best == "" {
		return "", ErrNoRendezvousLocation
	}
	return best, nil
}
