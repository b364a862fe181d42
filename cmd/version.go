package cmd

import (
	"fmt"
	"runtime"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/followscraper/internal/ui"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var versionPlain bool

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "print only the version")
	RootCmd.AddCommand(versionCmd)
}

// resetVersionState resets the version command's global state for testing.
func resetVersionState() {
	versionPlain = false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the followscraper version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionPlain {
			fmt.Fprintln(out, Version)
			return nil
		}

		figure.Write(out, figure.NewFigure("followscraper", "", true))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s (%s, %s/%s)\n",
			ui.Success.Sprint("followscraper"), Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
