package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/followscraper/internal/configs"
	"github.com/PolarWolf314/followscraper/internal/lifecycle"
	"github.com/PolarWolf314/followscraper/internal/scraper"
)

var (
	configPath  string
	charset     string
	noSpinner   bool
	exitStatus  int
	newHooks    = defaultHooks
	spinnerFile = os.Stderr

	// RootCmd runs the scraper.
	RootCmd = &cobra.Command{
		Use:   "followscraper",
		Short: "Export the followers and followings of a Twitter account to CSV",
		Long: `followscraper pages through the follower and following lists of the
account named by TWITTER.ID, resolves every id to its name and screen name
and writes the two CSV files named in the OUTPUT section.

Progress is written to the log file configured in the LOG section. The
console only shows the summary line when the run ends.

Exit status:
  0  the run finished
  1  terminated by SIGTERM or SIGINT
  8  a critical error was logged

Examples:
  # Use FollowingsAndFollowerScraper.json in the current directory
  followscraper

  # Use another configuration written in Shift_JIS
  followscraper -c conf/scraper.json --encoding shift_jis

  # Write a configuration template
  followscraper config init`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitStatus = run(cmd.Context())
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configs.DefaultFile, "configuration file path")
	RootCmd.PersistentFlags().StringVar(&charset, "encoding", "utf-8", "character encoding of the configuration file ("+strings.Join(configs.SupportedCharsets(), ", ")+")")
	RootCmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "do not show progress on the terminal")
}

func defaultHooks(progress scraper.ProgressFunc) lifecycle.Hooks {
	return scraper.New(scraper.WithProgress(progress))
}

func run(ctx context.Context) int {
	progress, stop := startSpinner("collecting followers", !noSpinner)
	defer stop()

	runner := lifecycle.New(configPath, newHooks(progress),
		lifecycle.WithCharset(charset),
		lifecycle.WithCleanup(stop),
	)
	if runner == nil {
		return lifecycle.ExitCritical
	}
	return runner.Run(ctx)
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a caller supplied context.
func ExecuteContext(ctx context.Context) int {
	exitStatus = lifecycle.ExitOK
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(RootCmd.ErrOrStderr(), err)
		return 2
	}
	return exitStatus
}
