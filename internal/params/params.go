// Package params is the persisted key-value store the panel reads
// subscription flags from. The panel only ever consumes it; writes come
// from the settings UI or from outside the process entirely.
package params

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Params holds the persisted flags.
type Params struct {
	PrimeRedirected bool `yaml:"primeRedirected"` // subscription lapsed, traffic redirected
}

// DefaultParams returns the default params.
func DefaultParams() *Params {
	return &Params{
		PrimeRedirected: false,
	}
}

// paramsPath returns the path to the params file.
func paramsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "drivemon", "params.yaml"), nil
}

// LoadParams loads params from disk, returning defaults if not found.
func LoadParams() (*Params, error) {
	path, err := paramsPath()
	if err != nil {
		return DefaultParams(), nil
	}

	// #nosec G304 - path is constructed from trusted sources
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultParams(), nil
		}
		return DefaultParams(), err
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultParams(), err
	}

	return &p, nil
}

// SaveParams writes params to disk.
func SaveParams(p *Params) error {
	path, err := paramsPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// CurrentParams holds the loaded params (singleton).
var CurrentParams *Params

// InitParams initializes the global params.
func InitParams() error {
	p, err := LoadParams()
	if err != nil {
		return err
	}
	CurrentParams = p
	return nil
}

func init() {
	// Initialize with defaults on package load
	CurrentParams = DefaultParams()
}
