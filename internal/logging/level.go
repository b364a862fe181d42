package logger

import "strings"

// Level is a log severity. Levels are totally ordered from DebugLevel to CriticalLevel.
type Level int

const (
	DebugLevel Level = iota + 1
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

var levelNames = map[Level]string{
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarningLevel:  "WARNING",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
}

// String returns the upper-case name used in log lines and configuration.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// Enabled reports whether a message at l passes a gate set to min.
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name. Matching ignores case and surrounding space.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for level, n := range levelNames {
		if n == name {
			return level, true
		}
	}
	return 0, false
}

// LevelOrDefault parses s and falls back to DebugLevel when s is not a level name.
func LevelOrDefault(s string) Level {
	if level, ok := ParseLevel(s); ok {
		return level
	}
	return DebugLevel
}
