package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wowcopy/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newInstallFixture lays out one version with a playable source character
// on ACC1 and an untouched target character on ACC2.
func newInstallFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	srcChar := filepath.Join(dir, "_retail_", "WTF", "Account", "ACC1", "Ravencrest", "Alpha")
	for _, name := range domain.CharacterFiles {
		writeFile(t, filepath.Join(srcChar, name), name)
	}
	writeFile(t, filepath.Join(srcChar, domain.SavedVariablesDir, "Details.lua"), "details")

	srcAccount := filepath.Join(dir, "_retail_", "WTF", "Account", "ACC1")
	for _, name := range domain.AccountFiles {
		writeFile(t, filepath.Join(srcAccount, name), name)
	}
	writeFile(t, filepath.Join(srcAccount, domain.SavedVariablesDir, "Bartender4.lua"), "bars")

	dstChar := filepath.Join(dir, "_retail_", "WTF", "Account", "ACC2", "Stormrage", "Beta")
	if err := os.MkdirAll(dstChar, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsTheDiscoveredTree(t *testing.T) {
	dir := newInstallFixture(t)

	out, err := runCommand(t, "--dir", dir, "--no-color", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"_retail_", "ACC1", "Ravencrest", "Alpha", "Beta", "(no SavedVariables)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestListReportsNoInstall(t *testing.T) {
	_, err := runCommand(t, "--dir", t.TempDir(), "list")
	if !errors.Is(err, domain.ErrNoInstall) {
		t.Fatalf("err = %v, want ErrNoInstall", err)
	}
}

func TestRootNeedsATerminal(t *testing.T) {
	_, err := runCommand(t, "--dir", t.TempDir())
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("err = %v, want the no-terminal error", err)
	}
}

func copyArgs(dir string, extra ...string) []string {
	args := []string{
		"--dir", dir, "--no-color", "copy", "--yes",
		"--source-version", "_retail_", "--source-account", "ACC1",
		"--source-realm", "Ravencrest", "--source-character", "Alpha",
		"--target-version", "_retail_", "--target-account", "ACC2",
		"--target-realm", "Stormrage", "--target-character", "Beta",
	}
	return append(args, extra...)
}

func TestCopyFullyFlaggedRunsWithoutPrompts(t *testing.T) {
	dir := newInstallFixture(t)

	out, err := runCommand(t, copyArgs(dir)...)
	if err != nil {
		t.Fatalf("copy: %v\n%s", err, out)
	}
	for _, want := range []string{"copied AddOns.txt", "copied bindings-cache.wtf", "copied Details.lua"} {
		if !strings.Contains(out, want) {
			t.Errorf("copy output missing %q:\n%s", want, out)
		}
	}

	copied := filepath.Join(dir, "_retail_", "WTF", "Account", "ACC2",
		"Stormrage", "Beta", domain.SavedVariablesDir, "Details.lua")
	if _, err := os.Stat(copied); err != nil {
		t.Fatalf("target SavedVariables not populated: %v", err)
	}
}

func TestCopySkipAccountKeepsTargetAccountFiles(t *testing.T) {
	dir := newInstallFixture(t)

	out, err := runCommand(t, copyArgs(dir, "--skip-account")...)
	if err != nil {
		t.Fatalf("copy: %v\n%s", err, out)
	}
	if !strings.Contains(out, "skipping account copy.") {
		t.Fatalf("copy output missing the skip line:\n%s", out)
	}

	stray := filepath.Join(dir, "_retail_", "WTF", "Account", "ACC2", "bindings-cache.wtf")
	if _, err := os.Stat(stray); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("account file copied despite --skip-account: %v", err)
	}
}

func TestCopyRejectsUnknownSourceCharacter(t *testing.T) {
	dir := newInstallFixture(t)

	args := copyArgs(dir)
	for i, arg := range args {
		if arg == "Alpha" {
			args[i] = "Nobody"
		}
	}
	_, err := runCommand(t, args...)
	if err == nil {
		t.Fatal("expected an invalid-selection error")
	}
}
