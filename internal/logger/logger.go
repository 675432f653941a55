// Package logger builds the leveled, key/value logger used by every command.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn" or "error"). An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		if lvl, err = log.ParseLevel(strings.ToLower(level)); err != nil {
			return nil, fmt.Errorf("unknown log level %q: %w", level, err)
		}
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "fastaproc",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	l.SetStyles(styles())
	return l, nil
}

// Discard returns a logger that writes nothing. For tests and library use.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// styles bolds the level badges so warnings and errors stand out on a terminal
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("192"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	s.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	return s
}
