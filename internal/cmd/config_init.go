package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/canopyhq/canopy/internal/config"
)

var (
	configInitPath  string
	configInitForce bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file populated with defaults. Without --path
the file goes to the per-user config directory. Existing files are
left alone unless --force is given.

Examples:
  canopy config init
  canopy config init --path ./canopy.yaml
  canopy config init --force`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)

	f := configInitCmd.Flags()
	f.StringVar(&configInitPath, "path", "", "where to write the file (default: per-user config dir)")
	f.BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configInitPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return exitError(foundry.ExitFileWriteError, "Cannot determine config path", err)
		}
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return exitError(foundry.ExitFileWriteError, "Config file exists",
				fmt.Errorf("%s already exists, use --force to overwrite", path))
		} else if !errors.Is(err, os.ErrNotExist) {
			return exitError(foundry.ExitFileReadError, "Cannot check config path", err)
		}
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return exitError(foundry.ExitFileWriteError, "Cannot encode config", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exitError(foundry.ExitFileWriteError, "Cannot create config directory", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return exitError(foundry.ExitFileWriteError, "Cannot write config file", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
