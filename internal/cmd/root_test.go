package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyhq/canopy/pkg/client"
)

func TestSetVersionInfo(t *testing.T) {
	defer func() {
		SetVersionInfo("dev", "HEAD", "unknown")
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-08-23")

	assert.Equal(t, "1.2.3", versionInfo.Version)
	assert.Contains(t, rootCmd.Version, "1.2.3")
	assert.Contains(t, rootCmd.Version, "abc1234")
	assert.Contains(t, rootCmd.Version, "2026-08-23")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "coded error",
			err:  exitError(foundry.ExitExternalServiceUnavailable, "Server unreachable", errors.New("boom")),
			want: foundry.ExitExternalServiceUnavailable,
		},
		{
			name: "wrapped coded error",
			err:  &client.APIError{Op: "X", Err: exitError(foundry.ExitInvalidArgument, "bad", errors.New("boom"))},
			want: foundry.ExitInvalidArgument,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestPing(t *testing.T) {
	api := &mockAPI{status: &client.ServerStatus{Status: "ok", Version: "1.4.2"}}

	out, err := executeCommand(t, api, "ping")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "Ping", api.calls[0].method)
	assert.Contains(t, out, "Server status: ok (version 1.4.2)")
}

func TestPingUnavailable(t *testing.T) {
	api := &mockAPI{err: &client.APIError{Op: "Ping", Err: client.ErrServerUnavailable}}

	_, err := executeCommand(t, api, "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Server unreachable")
	assert.Equal(t, foundry.ExitExternalServiceUnavailable, exitCode(err))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canopy", "config.yaml")

	out, err := executeCommand(t, &mockAPI{}, "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: https://localhost/api")
	assert.Contains(t, string(data), "timeout: 30s")

	// a second run refuses to overwrite without --force
	_, err = executeCommand(t, &mockAPI{}, "config", "init", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, foundry.ExitFileWriteError, exitCode(err))

	_, err = executeCommand(t, &mockAPI{}, "config", "init", "--path", path, "--force")
	require.NoError(t, err)
}

func TestConfigView(t *testing.T) {
	out, err := executeCommand(t, &mockAPI{}, "config", "view")
	require.NoError(t, err)
	assert.Contains(t, out, "url: https://localhost/api")
}

func TestConfigViewMasksPassword(t *testing.T) {
	out, err := executeCommand(t, &mockAPI{},
		"--username", "admin", "--password", "s3cret", "config", "view")
	require.NoError(t, err)

	assert.Contains(t, out, "username: admin")
	assert.Contains(t, out, "password: '********'")
	assert.NotContains(t, out, "s3cret")
}
