package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gatetools/gate/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds user-level runner settings, loaded from
// ~/.config/gate/settings.toml. Unlike the project configuration, these
// are machine-local preferences and are never required.
type Settings struct {
	// Color controls colored output: "auto" (default), "always", or "never".
	Color string `toml:"color,omitempty"`

	// FailFast, when set, overrides the project-level fail_fast default.
	FailFast *bool `toml:"fail_fast,omitempty"`

	// CacheDir overrides where remote hook repositories are cloned
	// (default: ~/.cache/gate).
	CacheDir string `toml:"cache_dir,omitempty"`

	// Extensions captures all other top-level tables for tool-specific
	// sections such as [logging].
	Extensions map[string]interface{} `toml:"-"`
}

// SettingsPath returns the path of the user settings file.
func SettingsPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gate", "settings.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gate", "settings.toml"), nil
}

// LoadSettings reads the user settings file. A missing file yields zero
// settings, not an error.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return &Settings{}, nil
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	// Keep unknown tables around for tool-specific sections.
	delete(raw, "color")
	delete(raw, "fail_fast")
	delete(raw, "cache_dir")
	settings.Extensions = raw

	return &settings, nil
}

// UnmarshalExtension decodes a specific extension table from the settings
// into the provided target struct. The target must be a pointer. Missing
// tables leave the target zero-valued.
//
// Example:
//
//	var logCfg logging.Config
//	err := settings.UnmarshalExtension("logging", &logCfg)
func (s *Settings) UnmarshalExtension(key string, target interface{}) error {
	extension, ok := s.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "toml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extension); err != nil {
		return fmt.Errorf("failed to decode settings section '%s': %w", key, err)
	}

	return nil
}

// ResolveCacheDir returns the directory used for cloned hook repositories,
// honoring the cache_dir setting and XDG_CACHE_HOME.
func (s *Settings) ResolveCacheDir() (string, error) {
	if s.CacheDir != "" {
		return pathutil.Expand(s.CacheDir)
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gate"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(home, ".cache", "gate"), nil
}
