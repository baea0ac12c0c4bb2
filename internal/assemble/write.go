package assemble

import (
	"fmt"
	"os"
	"strings"
)

// fastaLineWidth is the column at which contig sequences are wrapped.
const fastaLineWidth = 80

// WriteContigs serializes contigs as FASTA to the passed path: one record
// per contig with a header embedding the full sequence and its length,
// followed by the sequence wrapped at 80 columns.
func WriteContigs(filename string, contigs []Contig) error {
	var b strings.Builder
	for _, c := range contigs {
		fmt.Fprintf(&b, ">contig_%s len=%d\n", c.Seq, c.Length)
		b.WriteString(wrap(c.Seq, fastaLineWidth))
		b.WriteString("\n")
	}

	if err := os.WriteFile(filename, []byte(b.String()), 0666); err != nil {
		return fmt.Errorf("failed to write the contigs: %v", err)
	}
	return nil
}

// wrap breaks seq into newline separated lines of at most width characters.
func wrap(seq string, width int) string {
	var lines []string
	for len(seq) > width {
		lines = append(lines, seq[:width])
		seq = seq[width:]
	}
	return strings.Join(append(lines, seq), "\n")
}
