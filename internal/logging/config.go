package logger

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DatePlaceholder in a configured file path is replaced with the logger start time.
const DatePlaceholder = "%DATE%"

// DefaultFile is used when no file is configured.
const DefaultFile = "./log/followscraper.log"

// Config is the immutable logger configuration captured at acquisition.
type Config struct {
	Level Level
	File  string
	// Stdout mirrors LOG.STDOUT. It is recorded but the console sink is
	// driven by the logger itself: off during a run, on at teardown.
	Stdout bool
}

// DefaultConfig is the configuration of the bootstrap logger.
func DefaultConfig() Config {
	return Config{
		Level:  DebugLevel,
		File:   DefaultFile,
		Stdout: true,
	}
}

// ResolvePath returns the absolute log file path for a logger started at start.
func (c Config) ResolvePath(start time.Time) (string, error) {
	file := c.File
	if file == "" {
		file = DefaultFile
	}
	file = strings.ReplaceAll(file, DatePlaceholder, Stamp(start))

	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("resolving log file %s: %w", file, err)
	}
	return abs, nil
}

// Stamp formats t as YYYYMMDDhhmmss followed by six digits of microseconds.
func Stamp(t time.Time) string {
	return fmt.Sprintf("%s%06d", t.Format("20060102150405"), t.Nanosecond()/int(time.Microsecond))
}
