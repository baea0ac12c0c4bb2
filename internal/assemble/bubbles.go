package assemble

import "math/rand"

// SimplifyBubbles collapses every bubble in the graph down to its single
// best path. A bubble exists at a node when two of its direct predecessors
// share a common ancestor: the paths from that ancestor down to the node are
// alternatives, typically from sequencing errors, and only one should
// survive.
//
// The scan restarts from the beginning after every change because removing
// a bubble's nodes can create or destroy bubbles elsewhere. The loop reaches
// a fixed point when a full scan removes nothing.
func SimplifyBubbles(g *Graph, rng *rand.Rand) {
	for {
		progressed := false

	scan:
		for _, n := range g.Nodes() {
			preds := g.Predecessors(n)
			if len(preds) < 2 {
				continue
			}

			for i := 0; i < len(preds); i++ {
				for j := i + 1; j < len(preds); j++ {
					ancestor, ok := g.LowestCommonAncestor(preds[i], preds[j])
					if !ok {
						continue
					}
					if solveBubble(g, ancestor, n, rng) > 0 {
						progressed = true
						break scan
					}
				}
			}
		}

		if !progressed {
			return
		}
	}
}

// solveBubble resolves the bubble between an ancestor and a descendant by
// enumerating every simple path between them and keeping only the best one.
// The endpoints belong to the surviving path, so neither is deleted.
// Returns the number of nodes removed.
func solveBubble(g *Graph, ancestor, descendant string, rng *rand.Rand) int {
	paths := g.AllSimplePaths(ancestor, descendant)
	if len(paths) < 2 {
		return 0
	}

	candidates := make([]candidate, len(paths))
	for i, path := range paths {
		candidates[i] = newCandidate(g, path)
	}
	return selectBestPath(g, candidates, rng, false, false)
}
