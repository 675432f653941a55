package fasta

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Set
	}{
		{
			"single line sequences",
			">a\nACGT\n>b\nGG\n",
			Set{{ID: "a", Seq: "ACGT"}, {ID: "b", Seq: "GG"}},
		},
		{
			"multi line sequences with description",
			">contig_1 len=9 cov=3.2\nACG\nTTT\nGGG\n>contig_2\nA\n",
			Set{
				{ID: "contig_1", Description: "len=9 cov=3.2", Seq: "ACGTTTGGG"},
				{ID: "contig_2", Seq: "A"},
			},
		},
		{
			"windows line endings and trailing blank lines",
			">a\r\nAC\r\nGT\r\n>b\r\nT\r\n\r\n\r\n",
			Set{{ID: "a", Seq: "ACGT"}, {ID: "b", Seq: "T"}},
		},
		{
			"header followed by header",
			">a\n>b\nAC\n",
			Set{{ID: "a", Seq: ""}, {ID: "b", Seq: "AC"}},
		},
		{
			"leading blank lines and whitespace in sequence lines",
			"\n\n>a\n  AC \t\nGT  \n",
			Set{{ID: "a", Seq: "ACGT"}},
		},
		{
			"whitespace inside sequence lines",
			">a\nACGT ACGT\n>b\nAC\tGT\n",
			Set{{ID: "a", Seq: "ACGTACGT"}, {ID: "b", Seq: "ACGT"}},
		},
		{
			"tab separated description",
			">a\tlen=4\nACGT\n",
			Set{{ID: "a", Description: "len=4", Seq: "ACGT"}},
		},
		{
			"duplicate identifiers are kept in order",
			">a\nA\n>a\nCC\n",
			Set{{ID: "a", Seq: "A"}, {ID: "a", Seq: "CC"}},
		},
		{
			"empty input",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"sequence before header", "ACGT\n>a\nAC\n"},
		{"sequence after blank lines before header", "\n\nACGT\n"},
		{"empty header", ">\nACGT\n"},
		{"header starting with whitespace", "> a\nACGT\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Parse() error = %v, want ErrMalformedInput", err)
			}
		})
	}
}

// k headers yield k records
func TestParse_recordCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(">r")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("\nACGT\nAC\n")
	}

	set, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 50 {
		t.Fatalf("len(set) = %d, want 50", len(set))
	}
	for _, r := range set {
		if r.Seq != "ACGTAC" {
			t.Errorf("record %s seq = %q, want ACGTAC", r.ID, r.Seq)
		}
	}
}

func TestRead(t *testing.T) {
	type fileRead struct {
		name     string
		file     string
		ids      []string
		totalLen int
	}

	files := []fileRead{
		{
			"bins.fa",
			path.Join("..", "..", "test", "bins.fa"),
			[]string{"k141_1", "k141_2", "k141_3"},
			19,
		},
		{
			"crlf.fa",
			path.Join("..", "..", "test", "crlf.fa"),
			[]string{"bin-1-a", "bin-2-a"},
			8,
		},
	}

	for _, f := range files {
		t.Run(f.name, func(t *testing.T) {
			set, err := Read(f.file)
			if err != nil {
				t.Fatal(err)
			}

			var ids []string
			total := 0
			for _, r := range set {
				ids = append(ids, r.ID)
				total += len(r.Seq)
			}
			if !reflect.DeepEqual(ids, f.ids) {
				t.Errorf("ids = %v, want %v", ids, f.ids)
			}
			if total != f.totalLen {
				t.Errorf("total length = %d, want %d", total, f.totalLen)
			}
		})
	}
}

func TestRead_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.fa"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Read() error = %v, want *IOError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read() error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.fa")
	if err := os.WriteFile(bad, []byte("ACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Read(bad)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Read() error = %v, want ErrMalformedInput", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("Read() error = %v, want it to name %s", err, bad)
	}
}
