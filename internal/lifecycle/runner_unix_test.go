//go:build unix

package lifecycle

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestRunConvertsSIGTERM(t *testing.T) {
	h := setup(t, "INFO")
	hooks := &recordingHooks{block: true, started: make(chan struct{})}

	r := New(h.config, hooks)

	result := make(chan int, 1)
	go func() { result <- r.Run(context.Background()) }()

	<-hooks.started
	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}

	select {
	case status := <-result:
		if status != ExitTerminated {
			t.Errorf("status = %d, want %d", status, ExitTerminated)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after SIGTERM")
	}
	if h.summaries() != 1 {
		t.Errorf("expected one summary, console:\n%s", h.console.String())
	}
}
