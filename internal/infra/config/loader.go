// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-drafter/internal/domain"
)

// Environment variables that override file settings.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
	EnvDataDir      = "DRAFTER_DATA_DIR"
)

// Loader loads configuration from TOML files.
type Loader struct {
	projectPath   string // Path to the project config file (e.g., ./drafter.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-drafter)
}

// NewLoader creates a new Loader.
func NewLoader(projectPath string) *Loader {
	return &Loader{
		projectPath:   projectPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectPath, globalConfDir string) *Loader {
	return &Loader{
		projectPath:   projectPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalPath returns the global config file path, or "" when unavailable.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// ProjectPath returns the project config file path.
func (l *Loader) ProjectPath() string {
	return l.projectPath
}

// Load returns the merged configuration: defaults <- global <- project,
// followed by environment overrides. Missing files are skipped.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for _, path := range []string{l.GlobalPath(), l.projectPath} {
		if path == "" {
			continue
		}
		raw, err := readRaw(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if err := applyRaw(cfg, raw); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	sort.Strings(cfg.Warnings)
	return cfg, nil
}

// readRaw reads a TOML file into a generic map.
func readRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// applyRaw overlays the keys present in raw onto cfg and collects warnings
// for keys it does not know.
func applyRaw(cfg *domain.Config, raw map[string]any) error {
	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "server":
			for k, v := range m {
				switch k {
				case "addr":
					setString(cfg, "[server] addr", &cfg.Server.Addr, v)
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [server]: %s", k))
				}
			}
		case "store":
			for k, v := range m {
				switch k {
				case "dir":
					setString(cfg, "[store] dir", &cfg.Store.Dir, v)
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "generation":
			for k, v := range m {
				switch k {
				case "model":
					setString(cfg, "[generation] model", &cfg.Generation.Model, v)
				case "api_key":
					setString(cfg, "[generation] api_key", &cfg.Generation.APIKey, v)
				case "language":
					setString(cfg, "[generation] language", &cfg.Generation.Language, v)
				case "timeout":
					d, err := parseDuration(v)
					if err != nil {
						return fmt.Errorf("[generation] timeout: %w", err)
					}
					cfg.Generation.Timeout = d
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [generation]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					setString(cfg, "[log] level", &cfg.Log.Level, v)
				case "file":
					setString(cfg, "[log] file", &cfg.Log.File, v)
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}
	return nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *domain.Config) {
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		cfg.Generation.APIKey = key
	} else if key := os.Getenv(EnvGoogleAPIKey); key != "" {
		cfg.Generation.APIKey = key
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.Store.Dir = dir
	}
}

// setString stores a string value, warning about values of another type.
func setString(cfg *domain.Config, key string, dst *string, v any) {
	s, ok := v.(string)
	if !ok {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: expected a string, got %v; ignored", key, v))
		return
	}
	*dst = s
}

// parseDuration accepts "90s"-style strings and integer seconds.
func parseDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case string:
		return time.ParseDuration(x)
	case int64:
		return time.Duration(x) * time.Second, nil
	default:
		return 0, fmt.Errorf("expected a duration string, got %T", v)
	}
}
