package assemble

import (
	"reflect"
	"testing"
)

// buildTestGraph creates a graph from a map of "u v" edge keys to weights.
func buildTestGraph(edges map[[2]string]int) *Graph {
	g := NewGraph()
	for uv, w := range edges {
		g.AddEdge(uv[0], uv[1], w)
	}
	return g
}

func Test_BuildGraph(t *testing.T) {
	g := BuildGraph(map[string]int{
		"ACGT": 3,
		"CGTA": 1,
	})

	if w, ok := g.Weight("ACG", "CGT"); !ok || w != 3 {
		t.Errorf("Weight(ACG, CGT) = %d, %t, want 3, true", w, ok)
	}
	if w, ok := g.Weight("CGT", "GTA"); !ok || w != 1 {
		t.Errorf("Weight(CGT, GTA) = %d, %t, want 1, true", w, ok)
	}
	if want := []string{"ACG", "CGT", "GTA"}; !reflect.DeepEqual(g.Nodes(), want) {
		t.Errorf("Nodes() = %v, want %v", g.Nodes(), want)
	}
}

func Test_BuildGraph_selfLoop(t *testing.T) {
	g := BuildGraph(map[string]int{"AAAA": 2})

	if g.NumNodes() != 1 || g.NumEdges() != 1 {
		t.Errorf("got %d nodes and %d edges, want 1 and 1", g.NumNodes(), g.NumEdges())
	}
	if w, ok := g.Weight("AAA", "AAA"); !ok || w != 2 {
		t.Errorf("Weight(AAA, AAA) = %d, %t, want 2, true", w, ok)
	}
}

func TestGraph_RemoveNode(t *testing.T) {
	g := buildTestGraph(map[[2]string]int{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
	})

	if !g.RemoveNode("B") {
		t.Fatal("RemoveNode(B) = false, want true")
	}
	if g.HasNode("B") {
		t.Error("B still in the graph after removal")
	}
	if g.NumEdges() != 0 {
		t.Errorf("NumEdges() = %d after removal, want 0", g.NumEdges())
	}
	if succs := g.Successors("A"); succs != nil {
		t.Errorf("Successors(A) = %v after removal, want none", succs)
	}
	if g.RemoveNode("Z") {
		t.Error("RemoveNode(Z) = true for a node not in the graph")
	}
}

func TestGraph_StartingAndSinkNodes(t *testing.T) {
	g := buildTestGraph(map[[2]string]int{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"X", "B"}: 1,
	})

	if want := []string{"A", "X"}; !reflect.DeepEqual(g.StartingNodes(), want) {
		t.Errorf("StartingNodes() = %v, want %v", g.StartingNodes(), want)
	}
	if want := []string{"C"}; !reflect.DeepEqual(g.SinkNodes(), want) {
		t.Errorf("SinkNodes() = %v, want %v", g.SinkNodes(), want)
	}
}

func TestGraph_HasPath(t *testing.T) {
	g := buildTestGraph(map[[2]string]int{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"X", "Y"}: 1,
	})

	type args struct {
		u, v string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"transitive path", args{"A", "C"}, true},
		{"no path against edge direction", args{"C", "A"}, false},
		{"no path between components", args{"A", "Y"}, false},
		{"node reaches itself", args{"A", "A"}, true},
		{"unknown node", args{"A", "Z"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.HasPath(tt.args.u, tt.args.v); got != tt.want {
				t.Errorf("HasPath(%s, %s) = %t, want %t", tt.args.u, tt.args.v, got, tt.want)
			}
		})
	}
}

func TestGraph_AllSimplePaths(t *testing.T) {
	diamond := buildTestGraph(map[[2]string]int{
		{"A", "B"}: 1,
		{"A", "C"}: 1,
		{"B", "D"}: 1,
		{"C", "D"}: 1,
	})
	cyclic := buildTestGraph(map[[2]string]int{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"C", "A"}: 1,
		{"C", "D"}: 1,
	})

	type args struct {
		g    *Graph
		u, v string
	}
	tests := []struct {
		name string
		args args
		want [][]string
	}{
		{
			"both sides of a diamond",
			args{diamond, "A", "D"},
			[][]string{{"A", "B", "D"}, {"A", "C", "D"}},
		},
		{
			"cycle is not revisited",
			args{cyclic, "A", "D"},
			[][]string{{"A", "B", "C", "D"}},
		},
		{
			"no path",
			args{diamond, "D", "A"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.g.AllSimplePaths(tt.args.u, tt.args.v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllSimplePaths(%s, %s) = %v, want %v", tt.args.u, tt.args.v, got, tt.want)
			}
		})
	}
}

func TestGraph_LowestCommonAncestor(t *testing.T) {
	g := buildTestGraph(map[[2]string]int{
		{"R", "U"}: 1,
		{"U", "A"}: 1,
		{"R", "V"}: 1,
		{"V", "B"}: 1,
		{"A", "N"}: 1,
		{"B", "N"}: 1,
		{"X", "Y"}: 1,
	})

	type args struct {
		u, v string
	}
	tests := []struct {
		name      string
		args      args
		want      string
		wantFound bool
	}{
		{"shared root", args{"A", "B"}, "R", true},
		{"ancestor of the other node", args{"U", "A"}, "U", true},
		{"no shared ancestor", args{"A", "Y"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := g.LowestCommonAncestor(tt.args.u, tt.args.v)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("LowestCommonAncestor(%s, %s) = %q, %t, want %q, %t",
					tt.args.u, tt.args.v, got, found, tt.want, tt.wantFound)
			}
		})
	}
}
