package assemble

import "math/rand"

// SolveEntryTips trims tips hanging off the entry side of the graph. A node
// with more than one direct predecessor that is reachable from more than one
// source node marks competing entry paths; only the best-supported one
// reflects the real sequence, the rest are dead-end artifacts.
//
// Only the first qualifying node per scan is resolved. The source set is
// recomputed and the scan restarted after every resolution, since both
// change as nodes are removed.
func SolveEntryTips(g *Graph, rng *rand.Rand) {
	for {
		sources := g.StartingNodes()
		progressed := false

		for _, n := range g.Nodes() {
			if len(g.Predecessors(n)) < 2 {
				continue
			}

			var candidates []candidate
			for _, source := range sources {
				if paths := g.AllSimplePaths(source, n); len(paths) > 0 {
					candidates = append(candidates, newCandidate(g, paths[0]))
				}
			}
			if len(candidates) < 2 {
				// a single entry path has no competitor and is not a tip
				continue
			}

			if selectBestPath(g, candidates, rng, true, false) > 0 {
				progressed = true
				break
			}
		}

		if !progressed {
			return
		}
	}
}

// SolveOutTips mirrors SolveEntryTips for the exit side of the graph: nodes
// with more than one direct successor compete over the sink nodes reachable
// from them, and discarded paths are removed sink included.
func SolveOutTips(g *Graph, rng *rand.Rand) {
	for {
		sinks := g.SinkNodes()
		progressed := false

		for _, n := range g.Nodes() {
			if len(g.Successors(n)) < 2 {
				continue
			}

			var candidates []candidate
			for _, sink := range sinks {
				if paths := g.AllSimplePaths(n, sink); len(paths) > 0 {
					candidates = append(candidates, newCandidate(g, paths[0]))
				}
			}
			if len(candidates) < 2 {
				continue
			}

			if selectBestPath(g, candidates, rng, false, true) > 0 {
				progressed = true
				break
			}
		}

		if !progressed {
			return
		}
	}
}
