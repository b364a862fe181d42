package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/PolarWolf314/followscraper/internal/configs"
)

// ResetGlobalState resets all command globals and flag state so that
// RootCmd can be executed repeatedly within one test binary.
func ResetGlobalState() {
	configPath = configs.DefaultFile
	charset = "utf-8"
	noSpinner = false
	exitStatus = 0
	newHooks = defaultHooks

	resetVersionState()
	ResetConfigState()
	resetCobraFlagState(RootCmd)

	RootCmd.SetArgs(nil)
	RootCmd.SetOut(nil)
	RootCmd.SetErr(nil)
}

// resetCobraFlagState clears the Changed marker of every flag below c.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
