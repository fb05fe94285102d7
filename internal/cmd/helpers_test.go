package cmd

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/canopyhq/canopy/pkg/client"
)

// apiCall records one server API invocation: the method name and its
// string-valued arguments in call order.
type apiCall struct {
	method string
	args   []string
}

// mockAPI implements serverAPI with canned responses, recording every
// call so tests can assert exactly what was invoked and in what order.
type mockAPI struct {
	calls []apiCall

	repo          *client.Repo
	repos         []client.Repo
	distribution  *client.Distribution
	distributions []client.Distribution
	status        *client.ServerStatus
	err           error
}

var _ serverAPI = (*mockAPI)(nil)

func (m *mockAPI) ResolveRepo(_ context.Context, org, product, name, environment string) (*client.Repo, error) {
	m.calls = append(m.calls, apiCall{"ResolveRepo", []string{org, product, name, environment}})
	if m.err != nil {
		return nil, m.err
	}
	return m.repo, nil
}

func (m *mockAPI) GetRepo(_ context.Context, id string) (*client.Repo, error) {
	m.calls = append(m.calls, apiCall{"GetRepo", []string{id}})
	if m.err != nil {
		return nil, m.err
	}
	return m.repo, nil
}

func (m *mockAPI) ListRepos(_ context.Context, opts client.ListReposOptions) ([]client.Repo, error) {
	m.calls = append(m.calls, apiCall{"ListRepos", []string{
		opts.Org, opts.Environment, opts.Product, strconv.FormatBool(opts.IncludeDisabled),
	}})
	if m.err != nil {
		return nil, m.err
	}
	return m.repos, nil
}

func (m *mockAPI) ListDistributions(_ context.Context, repoID string) ([]client.Distribution, error) {
	m.calls = append(m.calls, apiCall{"ListDistributions", []string{repoID}})
	if m.err != nil {
		return nil, m.err
	}
	return m.distributions, nil
}

func (m *mockAPI) GetDistribution(_ context.Context, repoID, distributionID string) (*client.Distribution, error) {
	m.calls = append(m.calls, apiCall{"GetDistribution", []string{repoID, distributionID}})
	if m.err != nil {
		return nil, m.err
	}
	return m.distribution, nil
}

func (m *mockAPI) Ping(_ context.Context) (*client.ServerStatus, error) {
	m.calls = append(m.calls, apiCall{"Ping", nil})
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

// executeCommand runs the CLI against a mock API and returns its
// combined output. Package-level flag targets persist across cobra
// executions, so each run starts from registered defaults.
func executeCommand(t *testing.T, api serverAPI, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	restore := apiFactory
	apiFactory = func() (serverAPI, error) { return api, nil }
	t.Cleanup(func() { apiFactory = restore })

	distributionListOpts = distributionListOptions{Environment: DefaultEnvironment}
	distributionInfoOpts = distributionInfoOptions{}
	repoListOpts = repoListOptions{Environment: DefaultEnvironment}
	repoInfoOpts = repoInfoOptions{Environment: DefaultEnvironment}
	pingJSON = false
	configInitPath = ""
	configInitForce = false
	verbose = false
	debugLogging = false
	cfgFile, serverURL, username, password = "", "", "", ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
