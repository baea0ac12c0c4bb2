package assemble

import "iter"

// Kmers returns an iterator over every length-k substring of read, left to
// right. A read shorter than k yields nothing.
func Kmers(read string, k int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if k < 1 {
			return
		}
		for i := 0; i+k <= len(read); i++ {
			if !yield(read[i : i+k]) {
				return
			}
		}
	}
}

// CountKmers cuts every read into k-mers and accumulates the total
// occurrence count of each distinct k-mer across all reads.
func CountKmers(reads []string, k int) map[string]int {
	counts := map[string]int{}
	for _, read := range reads {
		for kmer := range Kmers(read, k) {
			counts[kmer]++
		}
	}
	return counts
}
