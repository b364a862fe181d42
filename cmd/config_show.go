package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/followscraper/internal/configs"
	"github.com/PolarWolf314/followscraper/internal/ui"
)

var (
	configShowJSON    bool
	configShowSecrets bool
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configShowCmd.Flags().BoolVar(&configShowSecrets, "show-secrets", false, "do not mask credentials")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
	configShowSecrets = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Loads the configuration named by --config, applies FOLLOWSCRAPER_*
environment and .env overrides and prints the result. Credentials are
masked unless --show-secrets is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load(configPath, charset)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !configShowSecrets {
			maskSecrets(&config.Twitter)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			return outputConfigJSON(out, config)
		}
		outputConfigText(out, config)
		return nil
	},
}

func maskSecrets(t *configs.TwitterConfig) {
	for _, s := range []*string{&t.ConsumerKey, &t.ConsumerSecret, &t.AccessToken, &t.AccessSecret, &t.BearerToken} {
		*s = mask(*s)
	}
}

// mask keeps the first four characters of long values.
func mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return strings.Repeat("*", len(s))
	default:
		return s[:4] + strings.Repeat("*", len(s)-4)
	}
}

func outputConfigJSON(w io.Writer, config *configs.Config) error {
	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func outputConfigText(w io.Writer, config *configs.Config) {
	fmt.Fprintf(w, "%s (%s):\n", ui.Info.Sprint("Configuration"), ui.Path.Sprint(config.Path))

	section := func(name string, rows [][2]string) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.Info.Sprint(name))
		for _, row := range rows {
			value := row[1]
			if value == "" {
				value = ui.Muted.Sprint("not set")
			}
			fmt.Fprintf(w, "  %-18s %s\n", row[0]+":", value)
		}
	}

	section("LOG", [][2]string{
		{"LEVEL", config.Log.Level},
		{"FILE", config.Log.File},
		{"STDOUT", config.Log.Stdout},
	})
	section("TWITTER", [][2]string{
		{"ID", config.Twitter.ID},
		{"CONSUMER_KEY", config.Twitter.ConsumerKey},
		{"CONSUMER_SEC_KEY", config.Twitter.ConsumerSecret},
		{"ACCESS_TOKEN", config.Twitter.AccessToken},
		{"ACCESS_SEC_TOKEN", config.Twitter.AccessSecret},
		{"BEARER_TOKEN", config.Twitter.BearerToken},
	})
	section("OUTPUT", [][2]string{
		{"FOLLOWERS", config.Output.Followers},
		{"FOLLOWINGS", config.Output.Followings},
	})
}
