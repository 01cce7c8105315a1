package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names looked up in each search directory.
var configNames = []string{"pong.yaml", "pong.yml", "pong.toml"}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.{yaml,yml,toml} ->
// ./configs/pong.{yaml,yml,toml} -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. Only an explicit customPath can produce an error; broken
// files found by the search are skipped.
func LoadPong(customPath string) (PongConfig, error) {
	var dirs []string
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	dirs = append(dirs, "configs")
	return loadPong(customPath, dirs)
}

func loadPong(customPath string, dirs []string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodePong(customPath, data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := decodePong(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decodePong("pong.yaml", defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodePong decodes data on top of DefaultPongConfig, choosing the
// format from the file extension.
func decodePong(path string, data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
