package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up in the user and local config directories.
const configFileName = "logo.yaml"

// Load loads the logo configuration.
// Search order: customPath -> ~/.gearlogo/configs/logo.yaml -> ./configs/logo.yaml -> embedded default
//
// Only a custom path that cannot be read or parsed is an error; the other
// tiers fall through silently. The result is not validated.
func Load(customPath string) (LogoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LogoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LogoConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLogoYAML)
	if err != nil {
		return DefaultLogoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of DefaultLogoConfig, so keys
// missing from the document keep their default values.
func Parse(data []byte) (LogoConfig, error) {
	cfg := DefaultLogoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LogoConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg LogoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gearlogo", "configs", filename)
}

// ApplyOverrides modifies the config with the non-nil override values.
func ApplyOverrides(cfg *LogoConfig, o Overrides) {
	if o.GearTeeth != nil {
		cfg.Gear.Teeth = *o.GearTeeth
	}
	if o.RackTeeth != nil {
		cfg.Rack.Teeth = *o.RackTeeth
	}
	if o.Angle != nil {
		cfg.Epicyclic.Angle = *o.Angle
	}
	if o.Correction != nil {
		cfg.Epicyclic.Correction = *o.Correction
	}
	if o.Epicyclic != nil {
		cfg.Epicyclic.Enabled = *o.Epicyclic
	}
}
