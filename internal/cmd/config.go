package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Config commands manage the canopy configuration file: server URL,
credentials, timeouts, and logging preferences.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
