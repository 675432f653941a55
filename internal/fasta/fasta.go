// Package fasta reads and writes multi-FASTA nucleotide files.
package fasta

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a stream is not FASTA: sequence data
// before the first header, or a header without an identifier.
var ErrMalformedInput = errors.New("malformed FASTA input")

// Record is a single FASTA entry.
type Record struct {
	// ID is the header token up to the first whitespace. ">k141_7 flag=1" is "k141_7"
	ID string

	// Description is the rest of the header line after the ID, may be empty
	Description string

	// Seq is the concatenation of the record's sequence lines
	Seq string
}

// Set is an ordered collection of records as they appeared in the input.
// Identifiers are not guaranteed to be unique.
type Set []Record

// IOError is a failure to open, read or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
