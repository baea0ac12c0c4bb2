package assemble

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFastq reads every sequence from a FASTQ file in order. Only the raw
// read strings matter for assembly; names and quality lines are discarded.
func ReadFastq(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open the FASTQ file: %v", err)
	}
	defer f.Close()

	r := fastq.NewReader(f, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))
	var reads []string
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read a FASTQ record from %s: %v", filename, err)
		}

		qs := s.(*linear.QSeq)
		read := make([]byte, len(qs.Seq))
		for i, ql := range qs.Seq {
			read[i] = byte(ql.L)
		}
		reads = append(reads, string(read))
	}
	return reads, nil
}
