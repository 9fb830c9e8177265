package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the shooter configuration.
// Search order: customPath -> ~/.shooter/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// A search-path file that exists but cannot be read or parsed is an error;
// only a missing file moves the search on.
func Load(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, _, err := loadFile(customPath, true)
		return cfg, err
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if cfg, found, err := loadFile(userCfgPath, false); found || err != nil {
			return cfg, err
		}
	}

	// Try local configs directory
	if cfg, found, err := loadFile(filepath.Join("configs", "shooter.yaml"), false); found || err != nil {
		return cfg, err
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses path. found is false when the file does not
// exist and required is false.
func loadFile(path string, required bool) (cfg ShooterConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return ShooterConfig{}, false, nil
		}
		return ShooterConfig{}, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return ShooterConfig{}, true, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", filename)
}
