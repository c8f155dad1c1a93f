// Package config resolves the process configuration from flags,
// environment variables and platform defaults, in that order.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	EnvDir     = "WOWCOPY_DIR"
	EnvVerbose = "WOWCOPY_VERBOSE"
)

type Config struct {
	InstallDir string
	Verbose    bool
}

// Resolve fills unset fields from the environment and platform defaults
// and expands a leading ~ in the install directory.
func Resolve(cfg Config) (Config, error) {
	if cfg.InstallDir == "" {
		cfg.InstallDir = os.Getenv(EnvDir)
	}
	if cfg.InstallDir == "" {
		dir, err := DefaultInstallDir()
		if err != nil {
			return cfg, err
		}
		cfg.InstallDir = dir
	}

	expanded, err := homedir.Expand(cfg.InstallDir)
	if err != nil {
		return cfg, err
	}
	cfg.InstallDir = expanded

	if !cfg.Verbose {
		cfg.Verbose = envTruthy(os.Getenv(EnvVerbose))
	}
	return cfg, nil
}

// DefaultInstallDir returns the stock install location for the current
// platform. The linux default assumes the usual Battle.net Wine prefix.
func DefaultInstallDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return `C:\Program Files (x86)\World of Warcraft`, nil
	case "darwin":
		return "/Applications/World of Warcraft", nil
	default:
		home, err := homedir.Dir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Games", "battlenet", "drive_c", "Program Files (x86)", "World of Warcraft"), nil
	}
}

func envTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
