package cmd

import (
	"encoding/json"
	"io"

	"github.com/canopyhq/canopy/internal/config"
	"github.com/canopyhq/canopy/pkg/client"
	"github.com/canopyhq/canopy/pkg/printer"
)

// DefaultEnvironment is the lifecycle environment assumed when none is
// named on the command line.
const DefaultEnvironment = "Library"

// serverAPI is the full server surface commands depend on. Tests swap
// apiFactory with a mock implementation.
type serverAPI interface {
	client.RepoAPI
	client.DistributionAPI
	client.StatusAPI
}

// apiFactory builds the server API for a command run. Declared as a
// variable so tests can inject mocks.
var apiFactory = func() (serverAPI, error) {
	return newAPIClient()
}

// newAPIClient builds a client from the loaded configuration with any
// global flag overrides applied on top.
func newAPIClient() (*client.Client, error) {
	cfg := config.GetConfig()

	clientCfg := client.Config{
		BaseURL:           cfg.Server.URL,
		Username:          cfg.Server.Username,
		Password:          cfg.Server.Password,
		Timeout:           cfg.Server.Timeout,
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
	}
	if serverURL != "" {
		clientCfg.BaseURL = serverURL
	}
	if username != "" {
		clientCfg.Username = username
	}
	if password != "" {
		clientCfg.Password = password
	}

	return client.New(clientCfg)
}

// verbosity maps the global --verbose flag to a printer level.
func verbosity() printer.Level {
	if verbose {
		return printer.Verbose
	}
	return printer.Brief
}

// outputJSON writes v as indented JSON, for commands run with --json.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
