package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the followscraper configuration file",
	Long: `Provides commands for creating and inspecting the configuration file.

Examples:
  # Write a template to FollowingsAndFollowerScraper.json
  followscraper config init

  # Write a TOML template
  followscraper config init scraper.toml

  # Show the effective configuration, including environment overrides
  followscraper config show -c scraper.toml`,
}

func init() {
	RootCmd.AddCommand(ConfigCmd)
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	resetConfigInitState()
	resetConfigShowState()
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	for _, c := range append([]*cobra.Command{ConfigCmd}, ConfigCmd.Commands()...) {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
