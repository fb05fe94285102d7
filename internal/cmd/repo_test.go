package cmd

import (
	"testing"
	"time"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhq/canopy/pkg/client"
)

func TestRepoListValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing org",
			args:    []string{"repo", "list"},
			wantErr: "option --org is required",
		},
		{
			name:    "bad name pattern",
			args:    []string{"repo", "list", "--org", "ACME", "--name", "fedora-["},
			wantErr: "invalid --name pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			_, err := executeCommand(t, api, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, foundry.ExitInvalidArgument, exitCode(err))
			assert.Empty(t, api.calls)
		})
	}
}

func TestRepoList(t *testing.T) {
	api := &mockAPI{repos: []client.Repo{
		{ID: "7", Name: "fedora-40", Label: "fedora_40", PackageCount: 61234},
		{ID: "8", Name: "centos-9", Label: "centos_9"},
	}}

	out, err := executeCommand(t, api, "repo", "list", "--org", "ACME")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, apiCall{"ListRepos", []string{"ACME", "Library", "", "false"}}, api.calls[0])

	assert.Contains(t, out, "Repo List For Org ACME Environment Library")
	assert.Contains(t, out, "fedora-40")
	assert.Contains(t, out, "centos-9")
	assert.Contains(t, out, "61234")
	assert.NotContains(t, out, "LAST SYNC", "sync column is verbose-only")
}

func TestRepoListProductHeader(t *testing.T) {
	api := &mockAPI{}

	out, err := executeCommand(t, api, "repo", "list",
		"--org", "ACME", "--environment", "Dev", "--product", "OS", "--include_disabled")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, apiCall{"ListRepos", []string{"ACME", "Dev", "OS", "true"}}, api.calls[0])
	assert.Contains(t, out, "Repo List For Org ACME Environment Dev Product OS")
}

func TestRepoListNameFilter(t *testing.T) {
	api := &mockAPI{repos: []client.Repo{
		{ID: "1", Name: "fedora-40"},
		{ID: "2", Name: "fedora-39"},
		{ID: "3", Name: "centos-9"},
	}}

	out, err := executeCommand(t, api, "repo", "list", "--org", "ACME", "--name", "fedora-*")
	require.NoError(t, err)

	assert.Contains(t, out, "fedora-40")
	assert.Contains(t, out, "fedora-39")
	assert.NotContains(t, out, "centos-9")
}

func TestRepoListVerboseSync(t *testing.T) {
	synced := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	api := &mockAPI{repos: []client.Repo{
		{ID: "1", Name: "fedora-40", LastSync: &synced},
		{ID: "2", Name: "centos-9"},
	}}

	out, err := executeCommand(t, api, "repo", "list", "--org", "ACME", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "LAST SYNC")
	assert.Contains(t, out, "2026-08-20 14:30:00 UTC")
	assert.Contains(t, out, "never")
}

func TestRepoInfoValidation(t *testing.T) {
	api := &mockAPI{}
	_, err := executeCommand(t, api, "repo", "info", "--name", "fedora")

	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"one of the following is required: --id, or --name and --org and --product")
	assert.Equal(t, foundry.ExitInvalidArgument, exitCode(err))
	assert.Empty(t, api.calls)
}

func TestRepoInfoByID(t *testing.T) {
	api := &mockAPI{repo: &client.Repo{
		ID:           "7",
		Name:         "fedora-40",
		Label:        "fedora_40",
		OrgName:      "ACME",
		Product:      "OS",
		Environment:  "Library",
		PackageCount: 61234,
		Enabled:      true,
	}}

	out, err := executeCommand(t, api, "repo", "info", "--id", "7")
	require.NoError(t, err)

	require.Len(t, api.calls, 1, "explicit --id must not trigger resolution")
	assert.Equal(t, apiCall{"GetRepo", []string{"7"}}, api.calls[0])

	assert.Contains(t, out, "Information About Repo 7")
	assert.Contains(t, out, "fedora-40")
	assert.Contains(t, out, "ACME")
	assert.NotContains(t, out, "GPG key:", "source details are verbose-only")
	assert.NotContains(t, out, "URL:")
}

func TestRepoInfoByName(t *testing.T) {
	api := &mockAPI{repo: &client.Repo{ID: "42", Name: "fedora"}}

	out, err := executeCommand(t, api, "repo", "info",
		"--name", "fedora", "--org", "ACME", "--product", "OS")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, apiCall{"ResolveRepo", []string{"ACME", "OS", "fedora", "Library"}}, api.calls[0])
	assert.Contains(t, out, "Information About Repo 42")
}

func TestRepoInfoVerbose(t *testing.T) {
	synced := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	api := &mockAPI{repo: &client.Repo{
		ID:         "7",
		Name:       "fedora-40",
		Arch:       "x86_64",
		URL:        "https://mirror.example.com/fedora/40",
		GPGKeyName: "RPM-GPG-KEY-fedora-40",
		LastSync:   &synced,
	}}

	out, err := executeCommand(t, api, "repo", "info", "--id", "7", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "Arch:")
	assert.Contains(t, out, "URL:")
	assert.Contains(t, out, "https://mirror.example.com/fedora/40")
	assert.Contains(t, out, "GPG key:")
	assert.Contains(t, out, "RPM-GPG-KEY-fedora-40")
	assert.Contains(t, out, "2026-08-20 14:30:00 UTC")
}

func TestRepoInfoNotFound(t *testing.T) {
	api := &mockAPI{err: &client.APIError{Op: "GetRepo", StatusCode: 404, Err: client.ErrNotFound}}

	_, err := executeCommand(t, api, "repo", "info", "--id", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to get repository")
	assert.Equal(t, foundry.ExitExternalServiceUnavailable, exitCode(err))
	assert.True(t, client.IsNotFound(err))
}
