package binset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fasta"
)

// KeyFunc maps a record identifier to the key it's compared on.
type KeyFunc func(id string) (string, error)

// VerbatimKey uses the identifier as is.
func VerbatimKey(id string) (string, error) {
	return id, nil
}

// NumberKey is for bin sets that label the same contigs differently but keep
// their number: the key is the integer in the second '-' separated field.
// "binA-0042-x" and "binB-42" share the key "42".
func NumberKey(id string) (string, error) {
	fields := strings.Split(id, "-")
	if len(fields) < 2 {
		return "", fmt.Errorf("%w %q: no '-' separated number field", ErrKeyExtraction, id)
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", fmt.Errorf("%w %q: %q is not an integer", ErrKeyExtraction, id, fields[1])
	}
	return strconv.Itoa(n), nil
}

// KeyFor returns NumberKey when normalize is set and VerbatimKey otherwise.
func KeyFor(normalize bool) KeyFunc {
	if normalize {
		return NumberKey
	}
	return VerbatimKey
}

// Index is a set keyed for lookups. Records sharing a key overwrite the
// earlier ones; Duplicates counts how many were overwritten.
type Index struct {
	// Seqs maps each key to the sequence of the last record with that key
	Seqs map[string]string

	// Duplicates is the number of records discarded because of a repeated key
	Duplicates int
}

// NewIndex keys every record of the set with key.
func NewIndex(set fasta.Set, key KeyFunc) (*Index, error) {
	idx := &Index{Seqs: make(map[string]string, len(set))}
	for _, r := range set {
		k, err := key(r.ID)
		if err != nil {
			return nil, err
		}

		if _, seen := idx.Seqs[k]; seen {
			idx.Duplicates++
		}
		idx.Seqs[k] = r.Seq
	}
	return idx, nil
}

// Comparison is the overlap between two sets of records.
type Comparison struct {
	// SharedCount is the number of keys in both sets
	SharedCount  int
	// SharedLength is the summed length of the shared records, from set 1
	SharedLength int

	Set1OnlyCount  int
	Set1OnlyLength int
	Set2OnlyCount  int
	Set2OnlyLength int

	// Set1Duplicates and Set2Duplicates count the records dropped from each
	// set for repeating a key
	Set1Duplicates int
	Set2Duplicates int
}

// Compare partitions the keys of set1 and set2 into shared, set1-only and
// set2-only and sums the sequence lengths of each partition. With normalize,
// records are matched on NumberKey rather than on their identifiers.
func Compare(set1, set2 fasta.Set, normalize bool) (Comparison, error) {
	key := KeyFor(normalize)

	idx1, err := NewIndex(set1, key)
	if err != nil {
		return Comparison{}, fmt.Errorf("failed to index first set: %w", err)
	}
	idx2, err := NewIndex(set2, key)
	if err != nil {
		return Comparison{}, fmt.Errorf("failed to index second set: %w", err)
	}

	return CompareIndexes(idx1, idx2), nil
}

// CompareIndexes compares two already keyed sets.
func CompareIndexes(idx1, idx2 *Index) Comparison {
	c := Comparison{
		Set1Duplicates: idx1.Duplicates,
		Set2Duplicates: idx2.Duplicates,
	}

	for k, seq := range idx1.Seqs {
		if _, ok := idx2.Seqs[k]; ok {
			c.SharedCount++
			c.SharedLength += len(seq)
		} else {
			c.Set1OnlyCount++
			c.Set1OnlyLength += len(seq)
		}
	}

	for k, seq := range idx2.Seqs {
		if _, ok := idx1.Seqs[k]; !ok {
			c.Set2OnlyCount++
			c.Set2OnlyLength += len(seq)
		}
	}

	return c
}
