package assemble

import (
	"fmt"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// weightThreshold splits rendered edges: those carried by more than this
// many k-mer occurrences are drawn bold, the rest dashed.
const weightThreshold = 3

// Draw writes the graph to the passed path in Graphviz DOT format, with
// every edge labeled by its weight.
func Draw(g *Graph, filename string) error {
	viz := gographviz.NewGraph()
	if err := viz.SetName("G"); err != nil {
		return fmt.Errorf("failed to build the graph rendering: %v", err)
	}
	if err := viz.SetDir(true); err != nil {
		return fmt.Errorf("failed to build the graph rendering: %v", err)
	}

	for _, n := range g.Nodes() {
		if err := viz.AddNode("G", strconv.Quote(n), nil); err != nil {
			return fmt.Errorf("failed to render node %s: %v", n, err)
		}
	}

	for _, u := range g.Nodes() {
		for _, v := range g.Successors(u) {
			w, _ := g.Weight(u, v)
			attrs := map[string]string{
				"label": strconv.Itoa(w),
				"style": "dashed",
			}
			if w > weightThreshold {
				attrs["style"] = "bold"
			}
			if err := viz.AddEdge(strconv.Quote(u), strconv.Quote(v), true, attrs); err != nil {
				return fmt.Errorf("failed to render edge %s -> %s: %v", u, v, err)
			}
		}
	}

	if err := os.WriteFile(filename, []byte(viz.String()), 0666); err != nil {
		return fmt.Errorf("failed to write the graph rendering: %v", err)
	}
	return nil
}
