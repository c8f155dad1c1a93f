package app

import (
	"fmt"
	"path/filepath"

	"wowcopy/internal/domain"
	apperrors "wowcopy/internal/errors"
)

// Copier runs one copy between two fully specified characters. A failure
// on a single file becomes a log line so the rest of the run continues;
// a failure that undermines the whole run (listing a SavedVariables
// folder, creating the target one) aborts it.
type Copier struct {
	FS FileSystem
}

// Run performs the account and character steps of req and returns the
// operation log in execution order. On a fatal error the log is nil: the
// caller renders either a complete log or an error, never both.
func (c *Copier) Run(req domain.CopyRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.NotReady, "copy", "", err)
	}

	var log []string

	if req.Source.Account == req.Target.Account || !req.OverwriteAccount {
		log = append(log, "skipping account copy.")
	} else {
		srcAccount := req.Source.AccountRoot(req.InstallDir)
		dstAccount := req.Target.AccountRoot(req.InstallDir)

		for _, name := range domain.AccountFiles {
			log = append(log, c.copyEntry(srcAccount, dstAccount, name))
		}
		lines, err := c.copyVars(srcAccount, dstAccount)
		if err != nil {
			return nil, err
		}
		log = append(log, lines...)
		log = append(log, c.removeCache(dstAccount))
	}

	srcChar := req.Source.CharacterRoot(req.InstallDir)
	dstChar := req.Target.CharacterRoot(req.InstallDir)

	for _, name := range domain.CharacterFiles {
		log = append(log, c.copyEntry(srcChar, dstChar, name))
	}

	dstVars := filepath.Join(dstChar, domain.SavedVariablesDir)
	exists, err := c.FS.DirExists(dstVars)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Structural, "stat", dstVars, err)
	}
	if !exists {
		log = append(log, fmt.Sprintf("destination SavedVariables missing, creating: %s", dstVars))
		if err := c.FS.MkdirAll(dstVars, 0o755); err != nil {
			return nil, apperrors.Wrap(apperrors.Structural, "mkdir", dstVars, err)
		}
	}

	lines, err := c.copyVars(srcChar, dstChar)
	if err != nil {
		return nil, err
	}
	log = append(log, lines...)
	log = append(log, c.removeCache(dstChar))

	return log, nil
}

// copyEntry copies one named file between two directories and renders the
// outcome as a log line.
func (c *Copier) copyEntry(srcDir, dstDir, name string) string {
	if err := c.FS.CopyFile(filepath.Join(srcDir, name), filepath.Join(dstDir, name)); err != nil {
		return fmt.Sprintf("error copying %s: %v", name, err)
	}
	return fmt.Sprintf("copied %s", name)
}

// copyVars copies every .lua file directly inside srcRoot/SavedVariables
// into dstRoot/SavedVariables. Subdirectories and other extensions are
// ignored. Failing to list the source folder is fatal.
func (c *Copier) copyVars(srcRoot, dstRoot string) ([]string, error) {
	srcVars := filepath.Join(srcRoot, domain.SavedVariablesDir)
	dstVars := filepath.Join(dstRoot, domain.SavedVariablesDir)

	entries, err := c.FS.ReadDir(srcVars)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Structural, "list", srcVars, err)
	}

	var lines []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != domain.LuaExt {
			continue
		}
		lines = append(lines, c.copyEntry(srcVars, dstVars, entry.Name()))
	}
	return lines, nil
}

// removeCache deletes the destination's cache.md5 so the client rebuilds
// it on next launch. Absence is reported in the log, not fatal.
func (c *Copier) removeCache(dstRoot string) string {
	if err := c.FS.Remove(filepath.Join(dstRoot, domain.CacheFile)); err != nil {
		return fmt.Sprintf("error removing %s: %v", domain.CacheFile, err)
	}
	return fmt.Sprintf("removed %s", domain.CacheFile)
}
