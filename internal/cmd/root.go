// Package cmd implements the canopy command-line interface.
//
// Each subcommand lives in its own file and registers itself on its
// parent command in init(). Execution is one-shot and synchronous:
// parse flags, validate options, call the server, print, exit.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/canopyhq/canopy/internal/config"
	"github.com/canopyhq/canopy/internal/observability"
)

// Global flags shared by all subcommands.
var (
	cfgFile      string
	serverURL    string
	username     string
	password     string
	verbose      bool
	debugLogging bool
)

// versionInfo holds build-time version metadata injected via
// SetVersionInfo from main.
var versionInfo = struct {
	Version   string
	Commit    string
	BuildDate string
}{
	Version:   "dev",
	Commit:    "HEAD",
	BuildDate: "unknown",
}

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Inspect content on a canopy server",
	Long: `canopy is a command-line client for a canopy content server.

It inspects repositories and distributions (installable-tree metadata)
organized as organization / product / lifecycle environment / repository.
Results render as aligned tables, labeled field blocks, or JSON.`,
	// stop printing usage and duplicate errors when a command fails
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file path")
	pf.StringVar(&serverURL, "server", "", "Content server API URL (overrides config)")
	pf.StringVar(&username, "username", "", "Username for server authentication")
	pf.StringVar(&password, "password", "", "Password for server authentication")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Show verbose-only output columns")
	pf.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
}

// setupRun loads configuration and initializes logging before any
// subcommand executes.
func setupRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	return observability.InitCLILogger(debugLogging || cfg.Logging.Debug)
}

// Execute runs the CLI and terminates the process on failure. The exit
// code is taken from the failing command's error when it carries one.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", color.RedString("Error:"), err)
		os.Exit(exitCode(err))
	}
}
