package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	"github.com/PolarWolf314/followscraper/internal/ui"
	"github.com/fatih/color"
)

// Sink is a destination for formatted log lines.
type Sink interface {
	Emit(level Level, line string) error
	Close() error
}

// FileSink writes log lines to a file owned for the lifetime of the logger.
type FileSink struct {
	path    string
	rotated string
	file    *os.File
}

// OpenFileSink prepares path for a logger started at start. An existing file is
// renamed to "<path>.<stamp>" first, then a fresh file is created.
func OpenFileSink(path string, start time.Time) (*FileSink, error) {
	s := &FileSink{path: path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		s.rotated = path + "." + Stamp(start)
		if err := os.Rename(path, s.rotated); err != nil {
			return nil, fmt.Errorf("rotating %s: %w", path, err)
		}
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	// #nosec G302 -- log files are meant to be read by the operator.
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s.file = file
	return s, nil
}

// Path returns the file being written.
func (s *FileSink) Path() string { return s.path }

// Rotated returns where a previous file was moved to, or "" if there was none.
func (s *FileSink) Rotated() string { return s.rotated }

// Emit appends line to the file.
func (s *FileSink) Emit(_ Level, line string) error {
	if _, err := io.WriteString(s.file, ui.EnsureNewline(line)); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSinkWrite, err)
	}
	return nil
}

// Close releases the file handle.
func (s *FileSink) Close() error {
	return s.file.Close()
}

// ConsoleSink writes colorized lines to standard output while enabled.
type ConsoleSink struct {
	out     io.Writer
	enabled bool
}

// NewConsoleSink returns a disabled console sink writing to out.
// A nil out writes to color.Output.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = color.Output
	}
	return &ConsoleSink{out: out}
}

// Enable turns the sink on or off.
func (s *ConsoleSink) Enable(on bool) { s.enabled = on }

// Enabled reports whether lines are currently written.
func (s *ConsoleSink) Enabled() bool { return s.enabled }

// Emit writes line if the sink is enabled.
func (s *ConsoleSink) Emit(level Level, line string) error {
	if !s.enabled {
		return nil
	}
	return s.write(level, line)
}

// write prints line regardless of enablement. It is the file sink fallback.
func (s *ConsoleSink) write(level Level, line string) error {
	_, err := io.WriteString(s.out, ui.EnsureNewline(styleFor(level).Sprint(line)))
	return err
}

// Close is a no-op; standard output is not owned by the logger.
func (s *ConsoleSink) Close() error { return nil }

func styleFor(level Level) ui.Formatter {
	switch level {
	case DebugLevel:
		return ui.DebugLine
	case InfoLevel:
		return ui.InfoLine
	case WarningLevel:
		return ui.WarningLine
	case ErrorLevel:
		return ui.ErrorLine
	default:
		return ui.CriticalLine
	}
}
