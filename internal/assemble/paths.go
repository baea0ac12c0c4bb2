package assemble

import (
	"math"
	"math/rand"
)

// candidate is one of several competing paths between the same two nodes.
type candidate struct {
	// path is the ordered slice of nodes, endpoints included
	path []string

	// length is the node count of path
	length int

	// weight is the mean weight of the edges along path
	weight float64
}

// newCandidate annotates a path with its length and mean edge weight.
func newCandidate(g *Graph, path []string) candidate {
	return candidate{
		path:   path,
		length: len(path),
		weight: averageWeight(g, path),
	}
}

// averageWeight returns the mean weight of the consecutive edges of a path.
func averageWeight(g *Graph, path []string) float64 {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		w, _ := g.Weight(path[i], path[i+1])
		total += w
	}
	return float64(total) / float64(len(path)-1)
}

// selectBestPath keeps one of at least two candidate paths sharing the same
// start and end node and removes the others' nodes from the graph. The
// survivor is the path with strictly maximum mean weight; if all weights are
// equal, the path with strictly maximum length; if both are tied, a single
// candidate drawn uniformly from rng is discarded and the rest are kept.
// The flags control whether a discarded path's first and last node are
// removed along with its interior. Returns the number of nodes removed.
func selectBestPath(g *Graph, candidates []candidate, rng *rand.Rand, deleteEntryNode, deleteSinkNode bool) (removed int) {
	weights := make([]float64, len(candidates))
	lengths := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = c.weight
		lengths[i] = float64(c.length)
	}

	switch {
	case stdev(weights) > 0:
		keep := maxIndex(weights)
		for i, c := range candidates {
			if i != keep {
				removed += removePath(g, c.path, deleteEntryNode, deleteSinkNode)
			}
		}
	case stdev(lengths) > 0:
		keep := maxIndex(lengths)
		for i, c := range candidates {
			if i != keep {
				removed += removePath(g, c.path, deleteEntryNode, deleteSinkNode)
			}
		}
	default:
		// a true tie on weight and length: discard exactly one
		drop := rng.Intn(len(candidates))
		removed = removePath(g, candidates[drop].path, deleteEntryNode, deleteSinkNode)
	}
	return
}

// removePath removes a discarded path's nodes from the graph. Interior nodes
// always go; the first and last node only with their respective flag set.
// Every edge incident to a removed node goes with it.
func removePath(g *Graph, path []string, deleteEntryNode, deleteSinkNode bool) (removed int) {
	first, last := 1, len(path)-1
	if deleteEntryNode {
		first = 0
	}
	if deleteSinkNode {
		last = len(path)
	}

	for i := first; i < last; i++ {
		if g.RemoveNode(path[i]) {
			removed++
		}
	}
	return
}

// maxIndex returns the index of the first maximum value.
func maxIndex(vals []float64) (index int) {
	for i, v := range vals {
		if v > vals[index] {
			index = i
		}
	}
	return
}

// mean returns the arithmetic mean of vals.
func mean(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total / float64(len(vals))
}

// stdev returns the sample standard deviation of vals,
// or 0 for fewer than two values.
func stdev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}

	m := mean(vals)
	total := 0.0
	for _, v := range vals {
		total += (v - m) * (v - m)
	}
	return math.Sqrt(total / float64(len(vals)-1))
}
