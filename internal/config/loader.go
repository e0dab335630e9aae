package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const sceneFile = "scene.yaml"

// LoadScene loads the scene configuration.
// Search order: customPath -> ~/.crisscross/scenes/scene.yaml -> ./configs/scene.yaml -> embedded default
func LoadScene(customPath string) (Scene, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseScene(data)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(sceneFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseScene(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", sceneFile)); err == nil {
		if cfg, err := ParseScene(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseScene(defaultSceneYAML)
	if err != nil {
		return DefaultScene(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseScene decodes a scene from YAML. Fields missing from the document keep
// their DefaultScene values. The result is validated.
func ParseScene(data []byte) (Scene, error) {
	cfg := DefaultScene()
	cfg.Blocked = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Scene{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}
	return cfg, nil
}

// MarshalScene encodes a scene as YAML.
func MarshalScene(s Scene) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode scene: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crisscross", "scenes", filename)
}
