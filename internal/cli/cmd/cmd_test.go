package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/internal/cli"
	"github.com/bnema/goluigi/internal/domain/build"
	"github.com/bnema/goluigi/internal/infrastructure/ffi"
)

// execute runs the root command against an isolated config home and a library
// path that cannot be loaded.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ENV", "")
	t.Setenv("LUIGI_LOG_LEVEL", "")
	t.Setenv("LUIGI_LOG_FORMAT", "")
	t.Setenv(ffi.LibraryEnv, filepath.Join(t.TempDir(), ffi.LibraryName()))

	app = nil
	appOpts = cli.Options{}
	exitCode = 0
	runFlags.width, runFlags.height = 0, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "luigi.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)

	assert.Contains(t, out, `"search_paths"`)
	assert.Contains(t, out, `"font"`)
	assert.Nil(t, app, "schema needs no app")
}

func TestConfigShow_Defaults(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[logging]")
	assert.Contains(t, out, "[window]")
	assert.Contains(t, out, "800")
}

func TestConfigShow_ExplicitFile(t *testing.T) {
	path := writeFile(t, "[font]\nname = \"DejaVuSans.ttf\"\nsize = 20\n")

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "DejaVuSans.ttf")
	assert.Contains(t, out, "20")
}

func TestConfigPath(t *testing.T) {
	path := writeFile(t, "")

	out, err := execute(t, "-c", path, "config", "path")
	require.NoError(t, err)

	assert.Contains(t, out, path)
}

func TestInvalidConfigAbortsCommand(t *testing.T) {
	path := writeFile(t, "[font]\nsize = 500\n")

	_, err := execute(t, "--config", path, "about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestAbout(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "about")
	require.NoError(t, err)

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestDoctor_MissingLibrary(t *testing.T) {
	out, err := execute(t, "doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "Not loaded")
	assert.Contains(t, out, "LUIGI_LIBRARY")
	assert.Equal(t, 1, exitCode)
}

func TestDoctor_ReportsInvalidConfig(t *testing.T) {
	path := writeFile(t, "[logging]\nformat = \"xml\"\n")

	out, err := execute(t, "--config", path, "doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid")
	assert.Equal(t, 1, exitCode)
}

func TestRun_RejectsUnknownDemo(t *testing.T) {
	_, err := execute(t, "run", "tetris")
	require.Error(t, err)
	assert.Nil(t, app, "arguments are validated before the app is built")
}

func TestRun_MissingLibrary(t *testing.T) {
	_, err := execute(t, "run", "counter")
	require.Error(t, err)

	assert.ErrorIs(t, err, ffi.ErrLibraryNotFound)
	assert.Equal(t, 0, exitCode)
}
