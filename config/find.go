package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	configFilenames = []string{
		".tcexutil.yaml",
		".tcexutil.yml",
		".tcexutil.toml",
		".tcexutil.json",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Find locates the configuration file to load. Precedence: an explicit
// path (from TCEX_UTIL_CONFIG or a caller), then an upward search from
// startDir for a .tcexutil.* file, then $XDG_CONFIG_HOME/tcexutil, then
// dotfiles in the home directory. The second return names the source that
// matched ("explicit", "cwd-up", "xdg", "home"); both returns are empty
// when no file exists anywhere.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate := explicit
		if !filepath.IsAbs(candidate) {
			cwd, err := os.Getwd()
			if err != nil {
				return "", "", err
			}
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("TCEX_UTIL_CONFIG %q points to a directory", candidate)
		}
		return candidate, "explicit", nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}
	dir := absStart
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, "cwd-up", nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" {
		homeDir := strings.TrimSpace(home)
		if homeDir == "" {
			if h, err := os.UserHomeDir(); err == nil {
				homeDir = h
			}
		}
		if homeDir != "" {
			xdgRoot = filepath.Join(homeDir, ".config")
		}
	}
	if xdgRoot != "" {
		for _, name := range xdgFilenames {
			candidate := filepath.Join(xdgRoot, "tcexutil", name)
			if fileExists(candidate) {
				return candidate, "xdg", nil
			}
		}
	}

	homeDir := strings.TrimSpace(home)
	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}
	if homeDir != "" {
		for _, name := range configFilenames {
			candidate := filepath.Join(homeDir, name)
			if fileExists(candidate) {
				return candidate, "home", nil
			}
		}
	}

	return "", "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
