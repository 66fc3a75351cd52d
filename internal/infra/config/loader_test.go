package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the environment overrides for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGeminiAPIKey, EnvGoogleAPIKey, EnvDataDir} {
		t.Setenv(k, "")
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)
	loader := NewLoaderWithGlobalDir(filepath.Join(t.TempDir(), "missing.toml"), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, domain.DefaultDataDir, cfg.Store.Dir)
	assert.Equal(t, domain.DefaultModel, cfg.Generation.Model)
	assert.Equal(t, domain.DefaultLanguage, cfg.Generation.Language)
	assert.Equal(t, domain.DefaultGenerateTimeout, cfg.Generation.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	clearEnv(t)
	globalDir := t.TempDir()
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)

	globalConfig := `
[generation]
model = "gemini-2.5-pro"
language = "Japanese"
api_key = "global-key"

[log]
level = "debug"
`
	projectConfig := `
[server]
addr = "127.0.0.1:9000"

[generation]
language = "German"
timeout = "15s"
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(globalConfig), 0o644))
	require.NoError(t, os.WriteFile(projectPath, []byte(projectConfig), 0o644))

	cfg, err := NewLoaderWithGlobalDir(projectPath, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.5-pro", cfg.Generation.Model)
	assert.Equal(t, "German", cfg.Generation.Language)
	assert.Equal(t, "global-key", cfg.Generation.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_ZeroTimeoutDisables(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("[generation]\ntimeout = \"0s\"\n"), 0o644))

	cfg, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Generation.Timeout)
}

func TestLoader_Load_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("[generation]\ntimeout = \"soon\"\n"), 0o644))

	_, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	assert.Error(t, err)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("[server\naddr ="), 0o644))

	_, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	assert.Error(t, err)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	content := `
[server]
addr = ":1"
port = 8080

[cache]
size = 1
`
	require.NoError(t, os.WriteFile(projectPath, []byte(content), 0o644))

	cfg, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown key in [server]: port", "unknown section: cache"}, cfg.Warnings)
}

func TestLoader_Load_WrongTypeWarns(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	content := `
[server]
addr = 8080

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(projectPath, []byte(content), 0o644))

	cfg, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "[server] addr")
	assert.Contains(t, cfg.Warnings[0], "expected a string")
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("[generation]\napi_key = \"file-key\"\n"), 0o644))

	t.Setenv(EnvGoogleAPIKey, "google-key")
	t.Setenv(EnvDataDir, "/var/lib/drafter")

	cfg, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.Generation.APIKey)
	assert.Equal(t, "/var/lib/drafter", cfg.Store.Dir)

	t.Setenv(EnvGeminiAPIKey, "gemini-key")
	cfg, err = NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Generation.APIKey)
}

func TestLoader_Load_TemplateParses(t *testing.T) {
	clearEnv(t)
	projectPath := filepath.Join(t.TempDir(), domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte(domain.ConfigTemplate()), 0o644))

	cfg, err := NewLoaderWithGlobalDir(projectPath, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.NewDefaultConfig().Generation, cfg.Generation)
}
