package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/canopyhq/canopy/internal/config"
)

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the effective configuration",
	Long: `Show the configuration the CLI is running with, after file, environment,
and flag overrides are applied. The password is masked.`,
	RunE: runConfigView,
}

func init() {
	configCmd.AddCommand(configViewCmd)
}

func runConfigView(cmd *cobra.Command, _ []string) error {
	// Copy so masking and flag overrides never touch the process config.
	cfg := *config.GetConfig()

	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	if username != "" {
		cfg.Server.Username = username
	}
	if cfg.Server.Password != "" || password != "" {
		cfg.Server.Password = "********"
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return exitError(foundry.ExitFileReadError, "Cannot encode config", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
