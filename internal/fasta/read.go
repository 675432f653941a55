package fasta

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Read parses the FASTA file at path.
func Read(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
			return nil, ioErr
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// Parse reads every record from r. Header lines start with '>', every other
// non-blank line is appended to the sequence of the current record with its
// whitespace removed. Windows line endings and blank lines are tolerated.
func Parse(r io.Reader) (Set, error) {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))

	var set Set
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("record %d: unexpected sequence type %T", len(set)+1, sc.Seq())
		}
		if s.ID == "" {
			return nil, fmt.Errorf("record %d: header without an identifier: %w", len(set)+1, ErrMalformedInput)
		}

		set = append(set, Record{
			ID:          s.ID,
			Description: strings.TrimSpace(s.Desc),
			Seq:         letters(s.Seq),
		})
	}

	if err := sc.Error(); err != nil {
		// biogo reports sequence data before the first header as a badly formed line
		if strings.HasPrefix(err.Error(), "fasta:") {
			return nil, fmt.Errorf("after record %d: %v: %w", len(set), err, ErrMalformedInput)
		}
		return nil, &IOError{Op: "read", Err: err}
	}
	return set, nil
}

func letters(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b)
}
