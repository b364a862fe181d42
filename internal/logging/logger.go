package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ExitCritical is the process exit status after a critical escalation.
const ExitCritical = 8

var (
	registryMu sync.Mutex
	active     *Logger

	consoleOut io.Writer
	exitFunc   = os.Exit
	now        = time.Now
)

// Counts tracks attempted calls per severity, whether or not they were emitted.
type Counts struct {
	Critical int
	Error    int
	Warning  int
}

// Logger is the process-wide logger. Obtain it with Acquire or Bootstrap.
type Logger struct {
	mu      sync.Mutex
	config  Config
	path    string
	runID   string
	start   time.Time
	counts  Counts
	file    Sink
	console *ConsoleSink
}

// Acquire returns the active logger, creating it from cfg if none exists.
// When a logger is already active cfg is ignored.
func Acquire(cfg Config) *Logger {
	return acquire(cfg, callerAt(1))
}

// Bootstrap returns the active logger or a default-configured one. It is
// used to report failures that happen before configuration is available.
func Bootstrap() *Logger {
	return acquire(DefaultConfig(), callerAt(1))
}

// acquire attributes the started record to caller, the code that asked for
// the logger.
func acquire(cfg Config, caller Caller) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	if active == nil {
		active = newLogger(cfg, caller)
	}
	return active
}

// Active returns the active logger, or nil.
func Active() *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()
	return active
}

// Teardown finalizes the active logger: the console is enabled, a summary
// line is written and the singleton is cleared. Without an active logger it
// does nothing.
func Teardown() {
	caller := callerAt(1)

	registryMu.Lock()
	defer registryMu.Unlock()

	if active == nil {
		return
	}
	active.close(caller)
	active = nil
}

func newLogger(cfg Config, caller Caller) *Logger {
	if _, ok := levelNames[cfg.Level]; !ok {
		cfg.Level = DebugLevel
	}

	l := &Logger{
		config:  cfg,
		runID:   uuid.NewString(),
		start:   now(),
		console: NewConsoleSink(consoleOut),
	}

	path, err := cfg.ResolvePath(l.start)
	if err == nil {
		l.path = path
		var sink *FileSink
		if sink, err = OpenFileSink(path, l.start); err == nil {
			l.file = sink
		}
	}

	l.log(InfoLevel, caller, fmt.Sprintf("started logging logfile=%s run=%s", l.path, l.runID))
	if err != nil {
		l.log(WarningLevel, caller, fmt.Sprintf("file logging disabled, writing to console: %v", err))
	}
	return l
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(DebugLevel, callerAt(1), fmt.Sprintf(format, args...))
}

// Infof logs at InfoLevel.
func (l *Logger) Infof(format string, args ...any) {
	l.log(InfoLevel, callerAt(1), fmt.Sprintf(format, args...))
}

// Warnf logs at WarningLevel. The warning counter is incremented even when
// the level is gated out.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(WarningLevel, callerAt(1), fmt.Sprintf(format, args...))
}

// Errorf logs at ErrorLevel. The error counter is incremented even when the
// level is gated out.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(ErrorLevel, callerAt(1), fmt.Sprintf(format, args...))
}

// Criticalf logs at CriticalLevel without terminating the process.
func (l *Logger) Criticalf(format string, args ...any) {
	l.logCritical(callerAt(1), fmt.Sprintf(format, args...), nil)
}

// Fatalf logs at CriticalLevel and then escalates: the logger is torn down
// and the process exits with ExitCritical.
func (l *Logger) Fatalf(format string, args ...any) {
	defer l.EscalateAndExit()
	l.logCritical(callerAt(1), fmt.Sprintf(format, args...), nil)
}

// FatalTrace is Fatalf with a stack trace written as a second critical record.
func (l *Logger) FatalTrace(trace []byte, format string, args ...any) {
	defer l.EscalateAndExit()
	l.logCritical(callerAt(1), fmt.Sprintf(format, args...), trace)
}

// EscalateAndExit tears down the active logger and exits with ExitCritical.
func (l *Logger) EscalateAndExit() {
	Teardown()

	registryMu.Lock()
	exit := exitFunc
	registryMu.Unlock()
	exit(ExitCritical)
}

// Counts returns a snapshot of the severity counters.
func (l *Logger) Counts() Counts {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts
}

// Level returns the active minimum level.
func (l *Logger) Level() Level { return l.config.Level }

// Config returns the configuration the logger was created with.
func (l *Logger) Config() Config { return l.config }

// Path returns the resolved log file path.
func (l *Logger) Path() string { return l.path }

// RunID identifies this logger instance in the "started" record.
func (l *Logger) RunID() string { return l.runID }

// Start returns when the logger was created.
func (l *Logger) Start() time.Time { return l.start }

func (l *Logger) log(level Level, caller Caller, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case WarningLevel:
		l.counts.Warning++
	case ErrorLevel:
		l.counts.Error++
	}
	if !level.Enabled(l.config.Level) {
		return
	}
	l.dispatch(Record{Level: level, Message: msg, Caller: caller, Time: now()})
}

func (l *Logger) logCritical(caller Caller, msg string, trace []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts.Critical++
	if !CriticalLevel.Enabled(l.config.Level) {
		return
	}
	l.dispatch(Record{Level: CriticalLevel, Message: msg, Caller: caller, Time: now()})
	if len(trace) > 0 {
		l.dispatch(Record{Level: CriticalLevel, Message: string(trace), Caller: caller, Time: now()})
	}
}

// dispatch writes a record to the sinks. Callers hold l.mu.
func (l *Logger) dispatch(r Record) {
	line := r.Format()

	if l.file == nil {
		_ = l.console.write(r.Level, line)
		return
	}
	if err := l.file.Emit(r.Level, line); err != nil {
		_ = l.console.write(r.Level, line)
		_ = l.console.write(r.Level, err.Error())
		return
	}
	_ = l.console.Emit(r.Level, line)
}

// close writes the summary and releases the file. The summary is not gated
// so that it reaches the console at any configured level.
func (l *Logger) close(caller Caller) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.console.Enable(true)
	msg := fmt.Sprintf("end logging! critical=%d error=%d warning=%d elapsed=%s",
		l.counts.Critical, l.counts.Error, l.counts.Warning, now().Sub(l.start))
	l.dispatch(Record{Level: InfoLevel, Message: msg, Caller: caller, Time: now()})

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// Helper functions for testing

// SetExitFunc replaces the function used to terminate the process and
// returns a function restoring the previous one.
func SetExitFunc(fn func(int)) (restore func()) {
	registryMu.Lock()
	defer registryMu.Unlock()
	previous := exitFunc
	exitFunc = fn
	return func() {
		registryMu.Lock()
		defer registryMu.Unlock()
		exitFunc = previous
	}
}

// SetConsoleOutput redirects the console sink of loggers created afterwards
// and returns a function restoring the previous writer.
func SetConsoleOutput(w io.Writer) (restore func()) {
	registryMu.Lock()
	defer registryMu.Unlock()
	previous := consoleOut
	consoleOut = w
	return func() {
		registryMu.Lock()
		defer registryMu.Unlock()
		consoleOut = previous
	}
}
