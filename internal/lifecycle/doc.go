// Package lifecycle runs a command-line tool through a fixed sequence of
// steps with guaranteed logger teardown.
//
// A tool implements Hooks (usually by embedding NopHooks) and is driven by a
// Runner:
//
//	r := lifecycle.New("tool.json", &Tool{})
//	os.Exit(r.Run(context.Background()))
//
// # Construction
//
// New loads the configuration and acquires the process logger from its LOG
// section. When loading fails a default logger reports the error at
// CRITICAL and the process exits with status 8.
//
// # Run
//
// Run executes Init, Main and Term in order inside one failure boundary.
// Returned errors and panics are logged at CRITICAL (with the stack trace
// for panics) and the process exits with status 8.
//
// SIGTERM and SIGINT cancel the context passed to the hooks and Run returns
// status 1 once they stop or the grace period elapses.
//
// On every path the cleanup phase runs exactly once: both signals are
// ignored, the WithCleanup callbacks run, the logger is torn down and its
// summary printed, and the default signal dispositions are restored. The
// callbacks also run before a critical escalation exits the process.
package lifecycle
