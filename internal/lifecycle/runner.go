package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/PolarWolf314/followscraper/internal/configs"
	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	logger "github.com/PolarWolf314/followscraper/internal/logging"
)

// Exit statuses returned by Run.
const (
	ExitOK         = 0
	ExitTerminated = 1
	ExitCritical   = logger.ExitCritical
)

// DefaultGracePeriod bounds how long Run waits for hooks to return after a
// termination signal.
const DefaultGracePeriod = 5 * time.Second

var terminationSignals = []os.Signal{syscall.SIGTERM, os.Interrupt}

// Hooks are the steps of a tool run. Init, Main and Term run in order; the
// first error stops the run.
type Hooks interface {
	Init(ctx context.Context, r *Runner) error
	Main(ctx context.Context, r *Runner) error
	Term(ctx context.Context, r *Runner) error
}

// NopHooks implements Hooks with steps that do nothing. Embed it and
// override the steps a tool needs.
type NopHooks struct{}

func (NopHooks) Init(context.Context, *Runner) error { return nil }
func (NopHooks) Main(context.Context, *Runner) error { return nil }
func (NopHooks) Term(context.Context, *Runner) error { return nil }

// Option configures a Runner.
type Option func(*Runner)

// WithCharset sets the character encoding of the configuration file.
func WithCharset(name string) Option {
	return func(r *Runner) {
		r.charset = name
	}
}

// WithGracePeriod sets how long Run waits for hooks after a termination signal.
func WithGracePeriod(d time.Duration) Option {
	return func(r *Runner) {
		r.grace = d
	}
}

// WithCleanup registers fn to run once before the logger is torn down, on
// every exit path including critical escalation.
func WithCleanup(fn func()) Option {
	return func(r *Runner) {
		r.onCleanup = append(r.onCleanup, fn)
	}
}

// Runner owns the configuration and logger of one process run.
type Runner struct {
	config  *configs.Config
	log     *logger.Logger
	hooks   Hooks
	charset string
	grace   time.Duration

	notify    func(c chan<- os.Signal, sig ...os.Signal)
	onCleanup []func()
	callbacks sync.Once
	cleanup   sync.Once
}

// New loads the configuration at confPath and acquires the logger from its
// LOG section. If the configuration cannot be loaded the failure is logged
// through a default logger and the process exits with ExitCritical; New only
// returns nil when that exit has been replaced for testing.
func New(confPath string, hooks Hooks, opts ...Option) *Runner {
	if hooks == nil {
		hooks = NopHooks{}
	}
	r := &Runner{
		hooks:  hooks,
		grace:  DefaultGracePeriod,
		notify: signal.Notify,
	}
	for _, opt := range opts {
		opt(r)
	}

	config, err := configs.Load(confPath, r.charset)
	if err != nil {
		logger.Bootstrap().Fatalf("initialization failed: %v", err)
		return nil
	}

	r.config = config
	r.log = logger.Acquire(LoggerConfig(config.Log))
	r.log.Debugf("loaded configuration %s", config.Path)
	return r
}

// LoggerConfig converts the LOG section into a logger configuration.
func LoggerConfig(c configs.LogConfig) logger.Config {
	return logger.Config{
		Level:  logger.LevelOrDefault(c.Level),
		File:   c.File,
		Stdout: c.StdoutEnabled(),
	}
}

// Config returns the loaded configuration.
func (r *Runner) Config() *configs.Config { return r.config }

// Logger returns the logger acquired for this run.
func (r *Runner) Logger() *logger.Logger { return r.log }

type hookResult struct {
	err   error
	trace []byte
}

// Run executes the hooks and returns the process exit status. A hook error
// or panic is logged at CRITICAL and escalates to ExitCritical. SIGTERM and
// SIGINT cancel the hooks' context with an ErrTerminated cause and yield
// ExitTerminated. The logger is
// torn down exactly once before Run returns, with those signals ignored
// while it happens.
func (r *Runner) Run(ctx context.Context) int {
	signals := make(chan os.Signal, 1)
	r.notify(signals, terminationSignals...)
	defer r.finish()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	done := make(chan hookResult, 1)
	go func() {
		done <- r.runHooks(ctx)
	}()

	select {
	case res := <-done:
		if res.err != nil {
			signal.Ignore(terminationSignals...)
			r.runCallbacks()
			r.log.FatalTrace(res.trace, "fatal error, terminating: %v", res.err)
			return ExitCritical
		}
		return ExitOK

	case sig := <-signals:
		cause := fmt.Errorf("%w: received %s", kerrors.ErrTerminated, sig)
		r.log.Warnf("%v, terminating", cause)
		cancel(cause)
		select {
		case <-done:
		case <-time.After(r.grace):
			r.log.Warnf("hooks still running after %s", r.grace)
		}
		return ExitTerminated
	}
}

func (r *Runner) runHooks(ctx context.Context) (res hookResult) {
	defer func() {
		if p := recover(); p != nil {
			res = hookResult{
				err:   fmt.Errorf("%w: panic: %v", kerrors.ErrHookFailed, p),
				trace: debug.Stack(),
			}
		}
	}()

	steps := []struct {
		name string
		fn   func(context.Context, *Runner) error
	}{
		{"init", r.hooks.Init},
		{"main", r.hooks.Main},
		{"term", r.hooks.Term},
	}
	for _, step := range steps {
		r.log.Debugf("running %s hook", step.name)
		if err := step.fn(ctx, r); err != nil {
			return hookResult{err: fmt.Errorf("%w: %s: %w", kerrors.ErrHookFailed, step.name, err)}
		}
	}
	return hookResult{}
}

// finish is the cleanup phase. It cannot be interrupted by SIGTERM or SIGINT
// and runs at most once per Runner.
func (r *Runner) finish() {
	r.cleanup.Do(func() {
		signal.Ignore(terminationSignals...)
		defer signal.Reset(terminationSignals...)

		r.runCallbacks()
		logger.Teardown()
	})
}

func (r *Runner) runCallbacks() {
	r.callbacks.Do(func() {
		for _, fn := range r.onCleanup {
			fn()
		}
	})
}
