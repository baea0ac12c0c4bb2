package assemble

import "strings"

// Contig is a contiguous sequence reconstructed from one simple
// source-to-sink path of the simplified graph.
type Contig struct {
	// Seq is the reconstructed sequence
	Seq string `json:"seq"`

	// Length of Seq
	Length int `json:"length"`
}

// Contigs walks every simple path between the passed source and sink nodes
// and reconstructs one contig per path: the source node's full (k-1)-mer
// followed by the last character of every subsequent node. Output follows
// source order, then sink order, then path enumeration order, and identical
// sequences reached through different pairs are all kept.
func Contigs(g *Graph, sources, sinks []string) (contigs []Contig) {
	for _, source := range sources {
		for _, sink := range sinks {
			if !g.HasPath(source, sink) {
				continue
			}
			for _, path := range g.AllSimplePaths(source, sink) {
				var b strings.Builder
				b.WriteString(path[0])
				for _, n := range path[1:] {
					b.WriteByte(n[len(n)-1])
				}

				seq := b.String()
				contigs = append(contigs, Contig{Seq: seq, Length: len(seq)})
			}
		}
	}
	return
}
