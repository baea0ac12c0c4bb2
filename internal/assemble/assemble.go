// Package assemble reconstructs contigs from short sequencing reads with a
// de Bruijn graph. Reads are cut into k-mers and aggregated into a weighted
// graph of (k-1)-mers, the graph is simplified in place by collapsing
// bubbles and trimming entry and exit tips, and every remaining simple
// source-to-sink path becomes a contig.
package assemble

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/carolynnhierso/debruijn/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Assemble runs the full pipeline: read the FASTQ file at in, build the
// graph, simplify it, and write the contigs as FASTA to out. If graphOut is
// non-empty the final graph is also written there in DOT format.
//
// The whole pipeline is single-threaded: every simplification pass mutates
// the one shared graph and assumes nothing observes it mid-mutation.
func Assemble(in, out, graphOut string, conf *config.Config) error {
	if conf.KmerSize < 1 {
		return fmt.Errorf("invalid k-mer size %d: must be a positive integer", conf.KmerSize)
	}

	reads, err := ReadFastq(in)
	if err != nil {
		return err
	}

	g := BuildGraph(CountKmers(reads, conf.KmerSize))
	stderr.Printf("built a graph of %d nodes and %d edges from %d reads\n", g.NumNodes(), g.NumEdges(), len(reads))

	rng := rand.New(rand.NewSource(conf.Seed))
	SimplifyBubbles(g, rng)
	SolveEntryTips(g, rng)
	SolveOutTips(g, rng)
	stderr.Printf("simplified the graph to %d nodes and %d edges\n", g.NumNodes(), g.NumEdges())

	contigs := Contigs(g, g.StartingNodes(), g.SinkNodes())
	stderr.Printf("assembled %d contigs\n", len(contigs))

	if err := WriteContigs(out, contigs); err != nil {
		return err
	}

	if graphOut != "" {
		return Draw(g, graphOut)
	}
	return nil
}
