package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.arcade/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A broken user or local file is skipped with a warning; a
// broken custom file is an error.
func LoadChase(customPath string, logger *log.Logger) (ChaseConfig, Source, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeChase(data)
		if err != nil {
			return ChaseConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath("chase.yaml"), SourceUser},
		{filepath.Join("configs", "chase.yaml"), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		data, err := os.ReadFile(c.path)
		if err != nil {
			continue
		}
		cfg, err := decodeChase(data)
		if err != nil {
			logger.Warn("ignoring unreadable config", "path", c.path, "error", err)
			continue
		}
		return cfg, c.source, nil
	}

	// Use embedded default YAML
	cfg, err := decodeChase(defaultChaseYAML)
	if err != nil {
		logger.Warn("embedded config unreadable, using builtin defaults", "error", err)
		return DefaultChaseConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decodeChase decodes YAML over the builtin defaults and rejects unknown keys.
func decodeChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return ChaseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ChaseConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
