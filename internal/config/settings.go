package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds user-configurable options.
type Settings struct {
	Animations      bool          `yaml:"animations"`      // Enable UI animations (live pulse)
	Source          string        `yaml:"source"`          // Telemetry source: "sim" or "host"
	RefreshInterval time.Duration `yaml:"refreshInterval"` // Telemetry poll interval
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Animations:      true, // On by default
		Source:          "sim",
		RefreshInterval: 2 * time.Second,
	}
}

// settingsPath returns the path to the settings file.
func settingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "drivemon", "settings.yaml"), nil
}

// LoadSettings loads settings from disk, returning defaults if not found.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return DefaultSettings(), nil
	}

	// #nosec G304 - path is constructed from trusted sources
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), err
	}
	if settings.RefreshInterval <= 0 {
		settings.RefreshInterval = DefaultSettings().RefreshInterval
	}

	return settings, nil
}

// SaveSettings writes settings to disk.
func SaveSettings(s *Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// CurrentSettings holds the loaded settings (singleton).
var CurrentSettings *Settings

// InitSettings initializes the global settings.
func InitSettings() error {
	settings, err := LoadSettings()
	if err != nil {
		return err
	}
	CurrentSettings = settings
	return nil
}

func init() {
	// Initialize with default settings on package load
	CurrentSettings = DefaultSettings()
}
