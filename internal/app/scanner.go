package app

import (
	"path/filepath"

	"wowcopy/internal/domain"
	apperrors "wowcopy/internal/errors"
	"wowcopy/internal/logging"
)

// Scanner discovers the layout of an installation directory. The directory
// tree on disk is the only source of truth, there is no index to consult.
type Scanner struct {
	FS     FileSystem
	Logger logging.Logger
}

// Discover reads the install tree under root and returns it as a
// domain.Install. A subdirectory counts as a version when it carries the
// WTF/Account layout. When none does, Discover returns domain.ErrNoInstall
// wrapped as a NotFound error.
func (s *Scanner) Discover(root string) (domain.Install, error) {
	defer s.Logger.Measure("scan " + root)()

	names, readable := s.subdirs(root)
	if !readable {
		return domain.Install{}, apperrors.Wrap(apperrors.NotFound, "discover", root, domain.ErrNoInstall)
	}

	var versions []domain.Version
	for _, name := range names {
		accountRoot := filepath.Join(root, name, domain.WTFDir, domain.AccountDir)
		ok, err := s.FS.DirExists(accountRoot)
		if err != nil {
			s.Logger.Verbosef("skipping %s: %v", accountRoot, err)
			continue
		}
		if !ok {
			continue
		}
		versions = append(versions, domain.Version{
			Name: name,
			Wtfs: s.scanAccounts(accountRoot),
		})
	}

	if len(versions) == 0 {
		return domain.Install{}, apperrors.Wrap(apperrors.NotFound, "discover", root, domain.ErrNoInstall)
	}

	s.Logger.Verbosef("found %d version folder(s) under %s", len(versions), root)
	return domain.Install{Dir: root, Versions: versions}, nil
}

// scanAccounts enumerates account/realm/character triples under one
// version's WTF/Account folder. The SavedVariables folder sits next to the
// realm folders at account level and is not a realm.
func (s *Scanner) scanAccounts(accountRoot string) []domain.Wtf {
	var wtfs []domain.Wtf
	accounts, _ := s.subdirs(accountRoot)
	for _, account := range accounts {
		accountDir := filepath.Join(accountRoot, account)
		realms, _ := s.subdirs(accountDir)
		for _, realm := range realms {
			if realm == domain.SavedVariablesDir {
				continue
			}
			realmDir := filepath.Join(accountDir, realm)
			characters, _ := s.subdirs(realmDir)
			for _, character := range characters {
				varsDir := filepath.Join(realmDir, character, domain.SavedVariablesDir)
				hasVars, err := s.FS.DirExists(varsDir)
				if err != nil {
					s.Logger.Verbosef("checking %s: %v", varsDir, err)
					hasVars = false
				}
				wtfs = append(wtfs, domain.Wtf{
					Account:   account,
					Realm:     realm,
					Character: character,
					HasVars:   hasVars,
				})
			}
		}
	}
	return wtfs
}

// subdirs lists the immediate subdirectories of path in listing order.
// Discovery is best-effort: an unreadable directory contributes nothing so
// a bad branch cannot hide its siblings. The readable flag lets the top
// level distinguish an unreadable root from an empty one.
func (s *Scanner) subdirs(path string) (names []string, readable bool) {
	entries, err := s.FS.ReadDir(path)
	if err != nil {
		s.Logger.Verbosef("skipping unreadable directory %s: %v", path, err)
		return nil, false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, true
}
