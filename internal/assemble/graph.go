package assemble

import "sort"

// Graph is a weighted de Bruijn graph. Nodes are the (k-1)-mers of the
// reads and each distinct k-mer contributes one directed edge from its
// (k-1)-prefix to its (k-1)-suffix, weighted by the k-mer's occurrence
// count. Edges are stored in both directions so that predecessors and
// successors are equally cheap to look up and to delete.
type Graph struct {
	// out maps a node to its successors and the weight of each edge
	out map[string]map[string]int

	// in mirrors out, mapping a node to its predecessors
	in map[string]map[string]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		out: map[string]map[string]int{},
		in:  map[string]map[string]int{},
	}
}

// BuildGraph aggregates a k-mer count map into a de Bruijn graph. Self-loops,
// from k-mers whose prefix equals their suffix, are kept as ordinary edges.
func BuildGraph(counts map[string]int) *Graph {
	g := NewGraph()
	for kmer, count := range counts {
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:], count)
	}
	return g
}

// AddEdge adds a directed edge from u to v with the passed weight,
// creating either node as needed.
func (g *Graph) AddEdge(u, v string, weight int) {
	g.addNode(u)
	g.addNode(v)
	g.out[u][v] = weight
	g.in[v][u] = weight
}

func (g *Graph) addNode(n string) {
	if _, ok := g.out[n]; ok {
		return
	}
	g.out[n] = map[string]int{}
	g.in[n] = map[string]int{}
}

// RemoveNode deletes a node and every edge incident to it. It returns
// false if the node was not in the graph.
func (g *Graph) RemoveNode(n string) bool {
	if _, ok := g.out[n]; !ok {
		return false
	}
	for v := range g.out[n] {
		delete(g.in[v], n)
	}
	for u := range g.in[n] {
		delete(g.out[u], n)
	}
	delete(g.out, n)
	delete(g.in, n)
	return true
}

// HasNode returns whether the node is in the graph.
func (g *Graph) HasNode(n string) bool {
	_, ok := g.out[n]
	return ok
}

// Weight returns the weight of the edge from u to v.
func (g *Graph) Weight(u, v string) (int, bool) {
	w, ok := g.out[u][v]
	return w, ok
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() (count int) {
	for _, succs := range g.out {
		count += len(succs)
	}
	return
}

// Nodes returns every node in lexicographic order. Simplification scans the
// graph repeatedly while deleting nodes, so a stable order keeps every pass,
// and therefore the final contigs, reproducible.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.out))
	for n := range g.out {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Predecessors returns the direct predecessors of a node in lexicographic order.
func (g *Graph) Predecessors(n string) []string {
	return sortedKeys(g.in[n])
}

// Successors returns the direct successors of a node in lexicographic order.
func (g *Graph) Successors(n string) []string {
	return sortedKeys(g.out[n])
}

func sortedKeys(edges map[string]int) []string {
	if len(edges) == 0 {
		return nil
	}
	nodes := make([]string, 0, len(edges))
	for n := range edges {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// StartingNodes returns every source node: a node without predecessors.
func (g *Graph) StartingNodes() (sources []string) {
	for _, n := range g.Nodes() {
		if len(g.in[n]) == 0 {
			sources = append(sources, n)
		}
	}
	return
}

// SinkNodes returns every sink node: a node without successors.
func (g *Graph) SinkNodes() (sinks []string) {
	for _, n := range g.Nodes() {
		if len(g.out[n]) == 0 {
			sinks = append(sinks, n)
		}
	}
	return
}

// HasPath returns whether v is reachable from u by a directed path.
// A node is always reachable from itself.
func (g *Graph) HasPath(u, v string) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	if u == v {
		return true
	}

	seen := map[string]bool{u: true}
	frontier := []string{u}
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		for succ := range g.out[n] {
			if succ == v {
				return true
			}
			if !seen[succ] {
				seen[succ] = true
				frontier = append(frontier, succ)
			}
		}
	}
	return false
}

// AllSimplePaths returns every directed path from u to v that repeats no
// node. Paths are found by depth-first search with the current path's node
// set tracked to guard against cycles, and are returned in the order the
// search visits them: neighbors in lexicographic order, so the enumeration
// is deterministic. The number of simple paths can be exponential in the
// size of the graph; callers accept that.
func (g *Graph) AllSimplePaths(u, v string) (paths [][]string) {
	if !g.HasNode(u) || !g.HasNode(v) || u == v {
		return nil
	}

	onPath := map[string]bool{u: true}
	path := []string{u}

	var visit func(n string)
	visit = func(n string) {
		for _, succ := range g.Successors(n) {
			if succ == v {
				found := make([]string, len(path), len(path)+1)
				copy(found, path)
				paths = append(paths, append(found, v))
				continue
			}
			if onPath[succ] {
				continue
			}
			onPath[succ] = true
			path = append(path, succ)
			visit(succ)
			path = path[:len(path)-1]
			delete(onPath, succ)
		}
	}
	visit(u)
	return
}

// LowestCommonAncestor returns the node closest to u and v from which both
// are reachable, or false if they share no ancestor. A node counts among its
// own ancestors, so if u is an ancestor of v then u itself is returned.
// "Closest" is the common ancestor with the smallest summed distance to u
// and v; remaining ties go to the lexicographically smallest node.
func (g *Graph) LowestCommonAncestor(u, v string) (string, bool) {
	uDepths := g.ancestorDepths(u)
	vDepths := g.ancestorDepths(v)

	lca, best, found := "", 0, false
	for a, du := range uDepths {
		dv, ok := vDepths[a]
		if !ok {
			continue
		}
		if !found || du+dv < best || (du+dv == best && a < lca) {
			lca, best, found = a, du+dv, true
		}
	}
	return lca, found
}

// ancestorDepths walks the reverse adjacency from n breadth-first and
// returns each ancestor's distance from n, including n itself at 0.
func (g *Graph) ancestorDepths(n string) map[string]int {
	if !g.HasNode(n) {
		return nil
	}

	depths := map[string]int{n: 0}
	frontier := []string{n}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		for pred := range g.in[next] {
			if _, ok := depths[pred]; !ok {
				depths[pred] = depths[next] + 1
				frontier = append(frontier, pred)
			}
		}
	}
	return depths
}
