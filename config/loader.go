package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/docfront/syntax"
)

// Load reads the configuration at path. An empty path yields the default
// configuration.
func Load(path string) (Config, error) {
	cfg := Default()
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
	if err := decodeConfigMap(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfigMap(raw map[string]any, cfg *Config) error {
	for key, value := range raw {
		switch normalizeKey(key) {
		case "grammars":
			list, ok := value.([]any)
			if !ok {
				return fmt.Errorf("expected list for grammars, got %T", value)
			}
			for i, item := range list {
				g, err := decodeGrammar(item)
				if err != nil {
					return fmt.Errorf("grammars[%d]: %w", i, err)
				}
				cfg.Grammars = append(cfg.Grammars, g)
			}
		case "width", "text_width":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("width must not be negative, got %d", n)
			}
			cfg.Width = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
	}
	return nil
}

func decodeGrammar(item any) (GrammarConfig, error) {
	var g GrammarConfig
	section, err := toStringKeyMap(item)
	if err != nil {
		return g, err
	}
	for key, value := range section {
		switch normalizeKey(key) {
		case "name", "tag":
			name, err := expectString(value, key)
			if err != nil {
				return g, err
			}
			g.Name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		case "hosts", "host":
			names, err := expectStringList(value, key)
			if err != nil {
				return g, err
			}
			for _, name := range names {
				kind, ok := syntax.ParseKind(normalizeKey(name))
				if !ok {
					return g, fmt.Errorf("unknown host kind %q", name)
				}
				g.Hosts = append(g.Hosts, kind)
			}
		case "grammar":
			name, err := expectString(value, key)
			if err != nil {
				return g, err
			}
			g.Grammar = normalizeKey(name)
		default:
			return g, fmt.Errorf("unknown grammar key: %s", key)
		}
	}
	if g.Grammar == "" {
		g.Grammar = "annotation"
	}
	return g, g.validate()
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return splitList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, strings.TrimSpace(str))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
