package cmd

import (
	"log"

	"github.com/carolynnhierso/debruijn/config"
	"github.com/carolynnhierso/debruijn/internal/assemble"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	fastqPath  string
	outputPath string
	graphPath  string
)

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a FASTQ file of reads into contigs",
	Long: `Assemble a FASTQ file of short reads into contigs.

"debruijn assemble" cuts every read into overlapping k-mers and aggregates
them into a weighted de Bruijn graph. It then simplifies the graph by:

1. Collapsing bubbles: bundles of alternative paths between a shared
   ancestor and descendant, keeping the best-supported path of each bundle
2. Trimming entry and exit tips: short dead-end branches near the graph's
   sources and sinks, usually sequencing artifacts
3. Walking every remaining source-to-sink path into a contig

Contigs are written as FASTA, wrapped at 80 columns. Pass --graph to also
write the final graph in Graphviz DOT format.`,
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.New()
		if err := assemble.Assemble(fastqPath, outputPath, graphPath, conf); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringVarP(&fastqPath, "in", "i", "", "path to a FASTQ file of reads")
	assembleCmd.Flags().StringVarP(&outputPath, "out", "o", "contigs.fasta", "path to write the contigs to (FASTA)")
	assembleCmd.Flags().StringVarP(&graphPath, "graph", "f", "", "path to write the final graph to (Graphviz DOT)")
	assembleCmd.Flags().IntP("kmer-size", "k", 22, "k-mer size")
	assembleCmd.Flags().Int64("seed", 9001, "seed for the source that breaks ties between equal paths")

	assembleCmd.MarkFlagRequired("in")

	// bind the parameters to viper
	viper.BindPFlag("kmer-size", assembleCmd.Flags().Lookup("kmer-size"))
	viper.BindPFlag("seed", assembleCmd.Flags().Lookup("seed"))
}
