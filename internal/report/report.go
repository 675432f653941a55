// Package report renders tab-delimited reports and writes output files.
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ddeemerpurdue/fastaprocessing/internal/binset"
	"github.com/ddeemerpurdue/fastaprocessing/internal/fasta"
)

var (
	// SizesHeader is the header row of a sizes report
	SizesHeader = []string{"Nucleotides", "Contigs", "File"}

	// SizesExtendedHeader is appended to SizesHeader by extended reports
	SizesExtendedHeader = []string{"Min", "Max", "Mean", "N50"}

	// CompareHeader is the header row of a comparison report
	CompareHeader = []string{"SQuant", "SLen", "Bin1_Quant", "Bin1_Len", "Bin2_Quant", "Bin2_Len"}
)

// SizeRow is one input file of a sizes report.
type SizeRow struct {
	// File is the base name of the input file
	File string

	binset.Description
}

// Sizes renders one row per file. With extended, the min, max, mean and N50
// lengths follow the file name.
func Sizes(rows []SizeRow, extended bool) []byte {
	var b bytes.Buffer

	header := SizesHeader
	if extended {
		header = append(append([]string{}, SizesHeader...), SizesExtendedHeader...)
	}
	writeRow(&b, header...)

	for _, r := range rows {
		fields := []string{itoa(r.TotalLength), itoa(r.RecordCount), r.File}
		if extended {
			fields = append(fields, itoa(r.Min), itoa(r.Max), itoa(r.Mean), itoa(r.N50))
		}
		writeRow(&b, fields...)
	}
	return b.Bytes()
}

// Comparison renders the header and the single row of a comparison.
func Comparison(c binset.Comparison) []byte {
	var b bytes.Buffer
	writeRow(&b, CompareHeader...)
	writeRow(&b,
		itoa(c.SharedCount), itoa(c.SharedLength),
		itoa(c.Set1OnlyCount), itoa(c.Set1OnlyLength),
		itoa(c.Set2OnlyCount), itoa(c.Set2OnlyLength),
	)
	return b.Bytes()
}

// FASTA renders the records of a set.
func FASTA(set fasta.Set) ([]byte, error) {
	var b bytes.Buffer
	if err := fasta.Write(&b, set); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// WriteFile writes data to filename in one piece. The data goes to a
// temporary file in the same directory that's then renamed over filename, so
// readers never see a partial report.
func WriteFile(filename string, data []byte) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return &fasta.IOError{Op: "create", Path: filename, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &fasta.IOError{Op: "write", Path: filename, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &fasta.IOError{Op: "write", Path: filename, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return &fasta.IOError{Op: "write", Path: filename, Err: err}
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return &fasta.IOError{Op: "write", Path: filename, Err: err}
	}
	return nil
}

func writeRow(b *bytes.Buffer, fields ...string) {
	b.WriteString(strings.Join(fields, "\t"))
	b.WriteByte('\n')
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
