package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FromEnv builds a configuration layer from TCEX_UTIL_* environment
// variables. getenv is injectable for tests; nil reads nothing.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := parseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid integer %q", key, raw))
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Format.LocalPrefix, "TCEX_UTIL_LOCAL_PREFIX")
	setInt(&cfg.Format.TabWidth, "TCEX_UTIL_TAB_WIDTH")
	setBool(&cfg.Format.TabIndent, "TCEX_UTIL_TAB_INDENT")
	setBool(&cfg.Format.FormatOnly, "TCEX_UTIL_FORMAT_ONLY")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

func parseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("%s: invalid boolean %q", key, raw)
}
