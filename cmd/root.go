// Package cmd is for command line interactions with the debruijn application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "debruijn",
	Short: `Assemble short sequencing reads into contigs.
Builds a de Bruijn graph from the reads, simplifies its bubbles and tips,
and walks the remaining paths into contiguous sequences`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
