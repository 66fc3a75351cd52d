package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// Manager manages configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a new Manager for the files the loader reads.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.ProjectPath())
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.GlobalPath())
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	if path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig writes the default template to the project config path.
func (m *Manager) InitProjectConfig() (string, error) {
	path := m.loader.ProjectPath()
	if path == "" {
		return "", errors.New("project config path not set")
	}
	return path, initConfig(path)
}

// InitGlobalConfig writes the default template to the global config path.
func (m *Manager) InitGlobalConfig() (string, error) {
	path := m.loader.GlobalPath()
	if path == "" {
		return "", errors.New("global config directory not available")
	}
	return path, initConfig(path)
}

// initConfig creates a config file with the default template.
func initConfig(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
