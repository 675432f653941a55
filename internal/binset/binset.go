// Package binset computes summaries, comparisons and length rankings over
// sets of FASTA records, e.g. the contigs of metagenome bins.
package binset

import "errors"

var (
	// ErrKeyExtraction is returned when a record identifier has no numeric
	// field to normalize on.
	ErrKeyExtraction = errors.New("failed to extract key from identifier")

	// ErrInvalidArgument is returned for arguments outside their domain,
	// like a negative N or an empty list of input files.
	ErrInvalidArgument = errors.New("invalid argument")
)
