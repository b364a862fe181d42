package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/PolarWolf314/followscraper/internal/scraper"
	"github.com/PolarWolf314/followscraper/internal/utils"
)

// startSpinner shows progress on spinnerFile when it is a terminal and
// enabled is set. The returned progress function updates the spinner suffix
// and is safe to call from the hook goroutine. stop may be called more than
// once.
//
// Without a terminal both functions are no-ops.
func startSpinner(message string, enabled bool) (scraper.ProgressFunc, func()) {
	if !enabled || !utils.IsTerminal(spinnerFile) {
		return func(string, int) {}, func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(spinnerFile))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")
	s.Start()

	progress := func(list string, n int) {
		s.Lock()
		s.Suffix = fmt.Sprintf(" collecting %s: %d", list, n)
		s.Unlock()
	}

	var once sync.Once
	stop := func() {
		once.Do(s.Stop)
	}

	return progress, stop
}
