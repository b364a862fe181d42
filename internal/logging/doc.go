// Package logger provides the process-wide logger used by followscraper.
//
// There is at most one Logger per process. Acquire creates it on first use
// and returns the same instance afterwards; Teardown finalizes it and clears
// the singleton so the next Acquire starts fresh.
//
// # Levels
//
// Levels are ordered DEBUG < INFO < WARNING < ERROR < CRITICAL. A record is
// written when its level is at or above the configured minimum. Unknown
// level names fall back to DEBUG rather than failing startup:
//
//	logger.LevelOrDefault("verbose") // DebugLevel
//
// # Sinks
//
// Every record goes to a file sink. If the configured file already exists
// it is renamed to "<file>.<YYYYMMDDhhmmssffffff>" before a new one is
// created, and "%DATE%" in the configured path is replaced with the same
// stamp. A console sink colors lines by severity; it stays off during a run
// and is switched on by Teardown so the summary is always visible.
//
// When the file sink fails to write, the line and the error are printed to
// the console instead. Logging never returns an error to the caller.
//
// # Line Format
//
//	INFO     2024-05-01 10:00:00.123 fetched 200 ids at scraper#(*Tool).Main() lineno=42
//
// # Counters and Summary
//
// Warning, error and critical calls are counted even when gated out.
// Teardown writes:
//
//	end logging! critical=0 error=1 warning=2 elapsed=3.2s
//
// # Escalation
//
// Criticalf only logs. Fatalf and FatalTrace log at CRITICAL and then call
// EscalateAndExit, which tears the logger down and exits with status 8.
//
// # Usage
//
//	log := logger.Acquire(logger.Config{Level: logger.InfoLevel, File: "./log/%DATE%.log"})
//	defer logger.Teardown()
//	log.Infof("processing %d ids", n)
package logger
