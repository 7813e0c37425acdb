package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/justyntemme/booktracker-t/internal/config"
	"github.com/justyntemme/booktracker-t/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newCLI()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"booktracker-t"}, args...))
	return buf.String(), err
}

func TestThemesCommand(t *testing.T) {
	out, err := runCLI(t, "themes")
	require.NoError(t, err)

	for _, name := range []string{"dark", "light", "lagoon", "solarized", "nord", "gruvbox"} {
		assert.Contains(t, out, name)
	}
}

func TestConfigCommandAppliesFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nrecent_limit: 3\n"), 0600))

	out, err := runCLI(t,
		"--config", path,
		"--theme", "nord",
		"--log-level", "debug",
		"--log-file", filepath.Join(dir, "bt.log"),
		"--banner", "/tmp/cover.png",
		"config",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "theme: nord")
	assert.Contains(t, out, "recent_limit: 3")
	assert.Contains(t, out, "level: debug")
	assert.Contains(t, out, "bt.log")
	assert.Contains(t, out, "banner_image: /tmp/cover.png")
}

func TestConfigCommandRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runCLI(t, "--config", path, "--theme", "neon", "config")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestThemeSaveIgnoresFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0600))

	app := newCLI()
	app.Action = func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		return cfg.SetTheme("gruvbox")
	}
	require.NoError(t, app.Run([]string{"booktracker-t",
		"--config", path,
		"--banner", "/tmp/cover.png",
		"--log-level", "debug",
		"--log-file", filepath.Join(dir, "bt.log"),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme: gruvbox\n", string(data))
}

func TestSetupLoggingWritesToFile(t *testing.T) {
	logger.ResetForTesting()
	t.Cleanup(logger.ResetForTesting)

	dir := t.TempDir()
	cfg := config.Default(filepath.Join(dir, "config.yaml"))
	cfg.Log.Format = "json"

	log, closer, err := setupLogging(cfg)
	require.NoError(t, err)
	log.Info("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestSetupLoggingDisabled(t *testing.T) {
	logger.ResetForTesting()
	t.Cleanup(logger.ResetForTesting)

	dir := t.TempDir()
	cfg := config.Default(filepath.Join(dir, "config.yaml"))
	cfg.Log.Level = "disabled"

	log, closer, err := setupLogging(cfg)
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("dropped")
	require.NoError(t, closer.Close())

	_, err = os.Stat(cfg.Log.File)
	assert.True(t, os.IsNotExist(err))
}
