package config

import (
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestResolvePrefersFlagOverEnv(t *testing.T) {
	t.Setenv(EnvDir, "/from/env")

	cfg, err := Resolve(Config{InstallDir: "/from/flag"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cfg.InstallDir != "/from/flag" {
		t.Errorf("InstallDir = %q, want the flag value", cfg.InstallDir)
	}

	cfg, err = Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cfg.InstallDir != "/from/env" {
		t.Errorf("InstallDir = %q, want the env value", cfg.InstallDir)
	}
}

func TestResolveFallsBackToPlatformDefault(t *testing.T) {
	t.Setenv(EnvDir, "")

	cfg, err := Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want, err := DefaultInstallDir()
	if err != nil {
		t.Fatalf("DefaultInstallDir returned error: %v", err)
	}
	if cfg.InstallDir != want {
		t.Errorf("InstallDir = %q, want %q", cfg.InstallDir, want)
	}
	if !strings.Contains(want, "World of Warcraft") {
		t.Errorf("default %q does not point at a World of Warcraft folder", want)
	}
}

func TestResolveExpandsHome(t *testing.T) {
	t.Setenv(EnvDir, "~/Games/wow")

	cfg, err := Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	home, err := homedir.Dir()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(cfg.InstallDir, home) {
		t.Errorf("InstallDir = %q, want it under %q", cfg.InstallDir, home)
	}
	if strings.Contains(cfg.InstallDir, "~") {
		t.Errorf("InstallDir = %q still contains ~", cfg.InstallDir)
	}
}

func TestResolveVerboseFromEnv(t *testing.T) {
	t.Setenv(EnvDir, "/somewhere")

	t.Setenv(EnvVerbose, "yes")
	cfg, err := Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be on for WOWCOPY_VERBOSE=yes")
	}

	t.Setenv(EnvVerbose, "0")
	cfg, err = Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cfg.Verbose {
		t.Error("Verbose should stay off for WOWCOPY_VERBOSE=0")
	}

	// an explicit flag is never overridden by the environment
	cfg, err = Resolve(Config{Verbose: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose flag lost during resolve")
	}
}

func TestEnvTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "yes", "on", " On "} {
		if !envTruthy(value) {
			t.Errorf("envTruthy(%q) = false, want true", value)
		}
	}
	for _, value := range []string{"", "0", "false", "off", "nope"} {
		if envTruthy(value) {
			t.Errorf("envTruthy(%q) = true, want false", value)
		}
	}
}
