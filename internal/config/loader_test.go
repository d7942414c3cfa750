package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config directory at a temp dir and clears LUIGI_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("ENV", "")
	for _, key := range []string{"LUIGI_LOG_LEVEL", "LUIGI_LOG_FORMAT", "LUIGI_FONT_SIZE", "LUIGI_FONT_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
	return filepath.Join(home, appName)
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, "luigi.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 13, mgr.viper.GetInt("font.size"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 800, mgr.viper.GetInt("window.width"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	dir := isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	want := filepath.Join(dir, "luigi.toml")
	assert.Equal(t, want, mgr.CreatedFile())
	assert.FileExists(t, want)
	cfg, def := mgr.Get(), DefaultConfig()
	assert.Equal(t, def.Font, cfg.Font)
	assert.Equal(t, def.Logging, cfg.Logging)
	assert.Equal(t, def.Window, cfg.Window)
	assert.Empty(t, cfg.Library.Path)
	assert.Empty(t, cfg.Library.SearchPaths)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[library]
path = "/opt/luigi/libluigi.so"
search_paths = ["/opt/luigi"]

[font]
name = "DejaVuSansMono.ttf"
size = 16

[window]
width = 1024
`)
	mgr, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Empty(t, mgr.CreatedFile())
	assert.Equal(t, "/opt/luigi/libluigi.so", cfg.Library.Path)
	assert.Equal(t, []string{"/opt/luigi"}, cfg.Library.SearchPaths)
	assert.Equal(t, "DejaVuSansMono.ttf", cfg.Font.Name)
	assert.Equal(t, 16, cfg.Font.Size)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[font]\nsize = 16\n")
	t.Setenv("LUIGI_FONT_SIZE", "20")
	t.Setenv("LUIGI_LOG_LEVEL", "WARNING")
	mgr, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 20, cfg.Font.Size)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[font]\nsize = 100\n[logging]\nformat = \"xml\"\n")
	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "font.size")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoad_UseFileMustExist(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.UseFile(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, mgr.Load())
}

func TestGet_ReturnsCopy(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[library]\nsearch_paths = [\"/a\"]\n")
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Library.SearchPaths[0] = "/mutated"
	cfg.Font.Size = 1

	assert.Equal(t, []string{"/a"}, mgr.Get().Library.SearchPaths)
	assert.Equal(t, 13, mgr.Get().Font.Size)
}

func TestHandleChange_ReloadsAndNotifies(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[font]\nsize = 12\n")
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	writeConfig(t, dir, "[font]\nsize = 14\n")
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.Equal(t, 14, got.Font.Size)
	assert.Equal(t, 14, mgr.Get().Font.Size)
}

func TestHandleChange_KeepsPreviousOnInvalidFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[font]\nsize = 12\n")
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, dir, "[font]\nsize = 0\n[window]\nwidth = -1\n")
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, 12, mgr.Get().Font.Size)
}

func TestWatch_RequiresLoadedFile(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}
