package quick

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/LixenWraith/dirlog"
)

// config parses configuration strings into a LoggerConfig.
// Each argument should be in "key=value" format where key matches a LoggerConfig toml tag.
func config(args ...string) (*dirlog.LoggerConfig, error) {
	cfg := &dirlog.LoggerConfig{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are removed from both parts.
func parseKeyValue(arg string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
	if !ok || strings.Contains(value, "=") {
		return "", "", fmt.Errorf("invalid format")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid format")
	}
	return key, strings.TrimSpace(value), nil
}

// setValue updates a LoggerConfig field using reflection.
// Field matching is case-insensitive. The level is validated here so that a
// typo is reported against its key.
func setValue(cfg *dirlog.LoggerConfig, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != key {
			continue
		}

		f := v.Field(i)
		if f.Kind() != reflect.String {
			return fmt.Errorf("unsupported config type for %s", key)
		}

		switch key {
		case "level":
			if _, err := dirlog.ParsePriority(value); err != nil {
				return err
			}
			f.SetString(strings.ToLower(value))
		case "extension":
			f.SetString(strings.TrimPrefix(value, "."))
		default:
			// Keep original case for directory and prefix
			f.SetString(value)
		}
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
