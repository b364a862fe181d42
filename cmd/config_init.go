package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/followscraper/internal/configs"
	"github.com/PolarWolf314/followscraper/internal/ui"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration template",
	Long: `Writes a configuration template with placeholder credentials.

The format follows the file extension: .json (default), .toml, .yaml or .yml.
An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s %s already exists, use %s to overwrite it",
				ui.Warning.Sprint("⚠"), ui.Path.Sprint(path), ui.Flag.Sprint("--force"))
		}

		if err := configs.Save(path, configs.Template()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s Wrote configuration template to %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(path))
		fmt.Fprintf(out, "%s Fill in the %s section before running %s\n",
			ui.Info.Sprint("→"), ui.Highlight.Sprint("TWITTER"), ui.Code.Sprint("followscraper"))
		return nil
	},
}
