// Package fastaproc runs the sizes, compare and top pipelines: read FASTA
// input, compute over it with binset, and write a report.
//
// Each pipeline takes its settings as an explicit config value so it can be
// called without going through the command line.
package fastaproc

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ddeemerpurdue/fastaprocessing/config"
	"github.com/ddeemerpurdue/fastaprocessing/internal/binset"
	"github.com/ddeemerpurdue/fastaprocessing/internal/fasta"
	"github.com/ddeemerpurdue/fastaprocessing/internal/report"
)

// Sizes writes the total length and record count of every input file to
// conf.Out. A file that fails to read is logged and left out of the report;
// the other files are still reported and the per-file errors are returned
// joined together.
func Sizes(conf config.SizesConfig, logger *log.Logger) error {
	if len(conf.In) == 0 {
		return fmt.Errorf("%w: no input files", binset.ErrInvalidArgument)
	}
	if conf.Out == "" {
		return fmt.Errorf("%w: no output path", binset.ErrInvalidArgument)
	}

	var (
		rows []report.SizeRow
		errs []error
	)
	for _, in := range conf.In {
		set, err := fasta.Read(in)
		if err != nil {
			logger.Error("skipping file", "file", in, "err", err)
			errs = append(errs, err)
			continue
		}

		d := binset.Describe(set)
		logger.Debug("summarized", "file", in, "records", d.RecordCount, "nucleotides", d.TotalLength)
		rows = append(rows, report.SizeRow{File: filepath.Base(in), Description: d})
	}

	if err := report.WriteFile(conf.Out, report.Sizes(rows, conf.Extended)); err != nil {
		return errors.Join(append(errs, err)...)
	}
	logger.Info("wrote sizes", "out", conf.Out, "files", len(rows), "failed", len(errs))

	return errors.Join(errs...)
}

// Compare writes the shared and unique record counts and lengths of two bin
// sets to conf.Out.
func Compare(conf config.CompareConfig, logger *log.Logger) error {
	if conf.In1 == "" || conf.In2 == "" {
		return fmt.Errorf("%w: two input files are required", binset.ErrInvalidArgument)
	}
	if conf.Out == "" {
		return fmt.Errorf("%w: no output path", binset.ErrInvalidArgument)
	}

	set1, err := fasta.Read(conf.In1)
	if err != nil {
		return err
	}
	set2, err := fasta.Read(conf.In2)
	if err != nil {
		return err
	}

	c, err := binset.Compare(set1, set2, conf.Different)
	if err != nil {
		return err
	}
	if c.Set1Duplicates > 0 {
		logger.Warn("duplicate keys, keeping the last record of each", "file", conf.In1, "discarded", c.Set1Duplicates)
	}
	if c.Set2Duplicates > 0 {
		logger.Warn("duplicate keys, keeping the last record of each", "file", conf.In2, "discarded", c.Set2Duplicates)
	}
	logger.Debug("compared",
		"shared", c.SharedCount,
		"only1", c.Set1OnlyCount,
		"only2", c.Set2OnlyCount,
		"normalized", conf.Different,
	)

	if err := report.WriteFile(conf.Out, report.Comparison(c)); err != nil {
		return err
	}
	logger.Info("wrote comparison", "out", conf.Out)
	return nil
}

// Top writes the conf.N longest sequences of conf.In to conf.Out as FASTA.
func Top(conf config.TopConfig, logger *log.Logger) error {
	if conf.In == "" {
		return fmt.Errorf("%w: no input file", binset.ErrInvalidArgument)
	}
	if conf.Out == "" {
		return fmt.Errorf("%w: no output path", binset.ErrInvalidArgument)
	}
	if conf.N < 0 {
		return fmt.Errorf("%w: n must be >= 0, got %d", binset.ErrInvalidArgument, conf.N)
	}

	set, err := fasta.Read(conf.In)
	if err != nil {
		return err
	}

	top, err := binset.TopNHeap(set, conf.N)
	if err != nil {
		return err
	}
	if conf.N > len(set) {
		logger.Warn("fewer records than requested, writing all of them", "file", conf.In, "records", len(set), "n", conf.N)
	}

	data, err := report.FASTA(top)
	if err != nil {
		return err
	}
	if err := report.WriteFile(conf.Out, data); err != nil {
		return err
	}
	logger.Info("wrote longest sequences", "out", conf.Out, "records", len(top))
	return nil
}
