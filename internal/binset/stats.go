package binset

import (
	"sort"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fasta"
)

// Summary is the total length and record count of a set.
type Summary struct {
	// TotalLength is the sum of the sequence lengths
	TotalLength int

	// RecordCount is the number of records, duplicates included
	RecordCount int
}

// Description is a Summary with the length distribution of the set.
type Description struct {
	Summary

	Min  int
	Max  int
	Mean int

	// N50 is the length of the shortest sequence among the longest sequences
	// that together make up half of the total length
	N50 int
}

// Summarize returns the total length and record count of the set.
// Records with a duplicate identifier are counted separately.
func Summarize(set fasta.Set) Summary {
	s := Summary{RecordCount: len(set)}
	for _, r := range set {
		s.TotalLength += len(r.Seq)
	}
	return s
}

// Describe extends Summarize with min, max, mean and N50 lengths. All fields
// are zero for an empty set.
func Describe(set fasta.Set) Description {
	d := Description{Summary: Summarize(set)}
	if len(set) == 0 {
		return d
	}

	lengths := make([]int, len(set))
	for i, r := range set {
		lengths[i] = len(r.Seq)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	d.Max = lengths[0]
	d.Min = lengths[len(lengths)-1]
	d.Mean = d.TotalLength / d.RecordCount

	csum := 0
	for _, l := range lengths {
		csum += l
		if 2*csum >= d.TotalLength {
			d.N50 = l
			break
		}
	}
	return d
}
