package domain

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestGlobalConfigDir(t *testing.T) {
	got := GlobalConfigDir("/home/user/.config")
	want := "/home/user/.config/issue-drafter"
	if got != want {
		t.Errorf("GlobalConfigDir() = %q, want %q", got, want)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Store.Dir != DefaultDataDir {
		t.Errorf("Store.Dir = %q, want %q", cfg.Store.Dir, DefaultDataDir)
	}
	if cfg.Generation.Model != DefaultModel {
		t.Errorf("Generation.Model = %q, want %q", cfg.Generation.Model, DefaultModel)
	}
	if cfg.Generation.Language != DefaultLanguage {
		t.Errorf("Generation.Language = %q, want %q", cfg.Generation.Language, DefaultLanguage)
	}
	if cfg.Generation.Timeout != DefaultGenerateTimeout {
		t.Errorf("Generation.Timeout = %v, want %v", cfg.Generation.Timeout, DefaultGenerateTimeout)
	}
	if cfg.Generation.APIKey != "" {
		t.Error("APIKey should be empty by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Dir = "/var/lib/drafter"

	if got := cfg.IssuesPath(); got != "/var/lib/drafter/issues.json" {
		t.Errorf("IssuesPath() = %q", got)
	}
	if got := cfg.RepositoriesPath(); got != "/var/lib/drafter/repositories.json" {
		t.Errorf("RepositoriesPath() = %q", got)
	}
}

func TestConfigTemplate(t *testing.T) {
	tmpl := ConfigTemplate()

	for _, section := range []string{"[server]", "[store]", "[generation]", "[log]"} {
		if !strings.Contains(tmpl, section) {
			t.Errorf("template missing %s section", section)
		}
	}

	// The template must stay valid TOML so "config init" output loads.
	var parsed map[string]any
	if err := toml.Unmarshal([]byte(tmpl), &parsed); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
	gen, ok := parsed["generation"].(map[string]any)
	if !ok {
		t.Fatal("generation section missing after parse")
	}
	if gen["model"] != DefaultModel {
		t.Errorf("template model = %v, want %v", gen["model"], DefaultModel)
	}
}
