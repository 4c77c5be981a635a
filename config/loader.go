package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes the configuration file at path. The format is
// chosen by extension. An empty path yields a zero Config so callers can
// pass the result of Find straight through. Unknown keys inside the format
// section are rejected so a typo never silently falls back to defaults.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	block, ok := raw["format"]
	if !ok {
		return cfg, nil
	}
	section, err := toStringKeyMap(block)
	if err != nil {
		return cfg, fmt.Errorf("format: %w", err)
	}
	for key, value := range section {
		switch key {
		case "local_prefix":
			s, err := expectString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Format.LocalPrefix = &s
		case "tab_width":
			n, err := expectInt(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Format.TabWidth = &n
		case "tab_indent":
			b, err := expectBool(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Format.TabIndent = &b
		case "format_only":
			b, err := expectBool(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Format.FormatOnly = &b
		default:
			return cfg, fmt.Errorf("format: unknown key %q", key)
		}
	}
	return cfg, nil
}

// toStringKeyMap normalizes the decoder-specific map types (yaml.v3 may
// produce map[any]any) into map[string]any.
func toStringKeyMap(value any) (map[string]any, error) {
	switch m := value.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a table, got %T", value)
	}
}

func expectString(value any, key string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, value)
	}
	return s, nil
}

func expectBool(value any, key string) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected a bool, got %T", key, value)
	}
	return b, nil
}

// expectInt accepts the integer representations the three decoders produce
// (int, int64, and JSON's float64 when integral).
func expectInt(value any, key string) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s: expected an integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s: expected an integer, got %T", key, value)
	}
}
