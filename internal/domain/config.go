package domain

import (
	_ "embed"
	"path/filepath"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file locations.
const (
	AppDirName             = "issue-drafter" // Directory name under $XDG_CONFIG_HOME
	ConfigFileName         = "config.toml"   // Global config file name
	ProjectConfigFileName  = "drafter.toml"  // Config file name in the working directory
	IssuesFileName         = "issues.json"
	RepositoriesFileName   = "repositories.json"
	DefaultDataDir         = "data"
	DefaultAddr            = ":8000"
	DefaultModel           = "gemini-2.5-flash"
	DefaultGenerateTimeout = 60 * time.Second
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings   []string         `toml:"-"`
	Server     ServerConfig     `toml:"server"`
	Store      StoreConfig      `toml:"store"`
	Log        LogConfig        `toml:"log"`
	Generation GenerationConfig `toml:"generation"`
}

// ServerConfig holds HTTP settings from [server] section.
type ServerConfig struct {
	Addr string `toml:"addr,omitempty"` // Listen address, e.g. ":8000"
}

// StoreConfig holds persistence settings from [store] section.
type StoreConfig struct {
	Dir string `toml:"dir,omitempty"` // Directory holding issues.json and repositories.json
}

// GenerationConfig holds completion service settings from [generation] section.
type GenerationConfig struct {
	Model    string        `toml:"model,omitempty"`    // Gemini model name
	APIKey   string        `toml:"api_key,omitempty"`  // API key (GEMINI_API_KEY takes precedence)
	Language string        `toml:"language,omitempty"` // Language the draft is written in
	Timeout  time.Duration `toml:"-"`                  // Per-call timeout; 0 disables
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Optional log file (appended)
}

// NewDefaultConfig returns the configuration used when no file overrides it.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Store:  StoreConfig{Dir: DefaultDataDir},
		Log:    LogConfig{Level: "info"},
		Generation: GenerationConfig{
			Model:    DefaultModel,
			Language: DefaultLanguage,
			Timeout:  DefaultGenerateTimeout,
		},
	}
}

// IssuesPath returns the path of the issue store file.
func (c *Config) IssuesPath() string {
	return filepath.Join(c.Store.Dir, IssuesFileName)
}

// RepositoriesPath returns the path of the repository registry file.
func (c *Config) RepositoriesPath() string {
	return filepath.Join(c.Store.Dir, RepositoriesFileName)
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigTemplate returns the commented template written by "config init".
func ConfigTemplate() string {
	return configTemplateContent
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
