package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "log_limit: 50\nui:\n  output_height: 12\n")
	// A local file is ignored when a file is named explicitly.
	writeFile(t, filepath.Join(dir, localConfigName), "log_limit: 7\n")

	got, path, err := loadConfig(explicit, dir, filepath.Join(dir, "default.yaml"))
	require.NoError(t, err)
	require.Equal(t, explicit, path)
	require.Equal(t, 50, got.LogLimit)
	require.Equal(t, 12, got.UI.OutputHeight)
	require.Equal(t, config.Defaults().Theme, got.Theme, "unset keys keep defaults")
}

func TestLoadConfig_LocalBeforeDefault(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, localConfigName)
	writeFile(t, local, "refresh_debounce: 2s\n")
	defaultPath := filepath.Join(dir, "home", "config.yaml")

	got, path, err := loadConfig("", dir, defaultPath)
	require.NoError(t, err)
	require.Equal(t, local, path)
	require.Equal(t, 2*time.Second, got.RefreshDebounce)
	require.NoFileExists(t, defaultPath)
}

func TestLoadConfig_WritesDefaultOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "home", "twig", "config.yaml")

	got, path, err := loadConfig("", dir, defaultPath)
	require.NoError(t, err)
	require.Equal(t, defaultPath, path)
	require.FileExists(t, defaultPath)
	require.Equal(t, config.Defaults().LogLimit, got.LogLimit)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := loadConfig(filepath.Join(dir, "nope.yaml"), dir, filepath.Join(dir, "default.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "bad.yaml")
	writeFile(t, explicit, "log_limit: 0\n")

	_, _, err := loadConfig(explicit, dir, filepath.Join(dir, "default.yaml"))
	require.ErrorContains(t, err, "invalid configuration")
	require.ErrorContains(t, err, "log_limit")
}

// run executes the root command against a config whose store lives in a
// temp directory.
func run(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.ExecuteContext(t.Context()))
	return out.String()
}

func TestReposCommands(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "store:\n  path: "+filepath.Join(dir, "repos.db")+"\n")

	repo := filepath.Join(dir, "work", "alpha")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(repo, "pkg"), 0o750))

	require.Contains(t, run(t, configPath, "repos", "list"), "no repositories registered")

	out := run(t, configPath, "repos", "add", filepath.Join(repo, "pkg"))
	require.Contains(t, out, "added alpha ("+repo+")")

	out = run(t, configPath, "repos", "list")
	require.Contains(t, out, "alpha")
	require.Contains(t, out, repo)
	require.Contains(t, out, "never")

	require.Contains(t, run(t, configPath, "repos", "remove", repo), "removed "+repo)
	require.Contains(t, run(t, configPath, "repos", "list"), "no repositories registered")
}

func TestReposAdd_NotARepository(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "store:\n  path: "+filepath.Join(dir, "repos.db")+"\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--config", configPath, "repos", "add", dir})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.Error(t, rootCmd.ExecuteContext(t.Context()))
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "log_limit: 10\n")

	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })
	require.Equal(t, "twig 1.2.3\n", run(t, configPath, "version"))
}
