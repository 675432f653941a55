package fasta

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Write writes each record as its header line followed by the whole sequence
// on a single line.
func Write(w io.Writer, set Set) error {
	for _, r := range set {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.DNA)
		s.Desc = r.Description

		// one line per sequence: wrap at the sequence's own length
		width := len(r.Seq)
		if width == 0 {
			width = 1
		}
		if _, err := biofasta.NewWriter(w, width).Write(s); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}
	return nil
}
