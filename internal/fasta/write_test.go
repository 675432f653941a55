package fasta

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestWrite_roundTrip(t *testing.T) {
	set := Set{
		{ID: "k141_9", Description: "flag=1 len=12", Seq: "ACGTACGTACGT"},
		{ID: "k141_2", Seq: "GGCC"},
		{ID: "k141_5", Seq: "A"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, set); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, set) {
		t.Errorf("Parse(Write()) = %+v, want %+v", got, set)
	}
}

func TestWrite_oneSequenceLine(t *testing.T) {
	long := strings.Repeat("ACGT", 100)

	var buf bytes.Buffer
	if err := Write(&buf, Set{{ID: "a", Seq: long}, {ID: "b", Seq: "GG"}}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("wrote %d lines, want 4: %q", len(lines), buf.String())
	}
	if lines[0] != ">a" || lines[1] != long || lines[2] != ">b" || lines[3] != "GG" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
