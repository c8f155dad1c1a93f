package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"

	"wowcopy/internal/domain"
	apperrors "wowcopy/internal/errors"
)

var (
	ErrUnknownVersion = errors.New("no such version")
	ErrNoCandidates   = errors.New("no matching character")
)

// SideFlags carries the command line's partial answer for one side. Empty
// fields are prompted for, set fields narrow the candidates.
type SideFlags struct {
	Version   string
	Account   string
	Realm     string
	Character string
}

// Flow walks a user through completing a copy request, prompting only for
// what the flags left open.
type Flow struct {
	UI UI
}

// PickInstallDir asks for an install directory after discovery failed at
// the previous one.
func (f Flow) PickInstallDir(previous string) (string, error) {
	dir := previous
	if err := f.UI.Input("Where is World of Warcraft installed?", &dir); err != nil {
		return "", err
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", apperrors.Wrap(apperrors.NotFound, "pick install dir", previous, domain.ErrNoInstall)
	}
	return homedir.Expand(dir)
}

// CompleteSide resolves one side of the copy to a concrete character. The
// version is asked for unless flagged; the character is picked from the
// role-filtered list narrowed by the account, realm and character flags. A
// sole remaining candidate is taken without prompting.
func (f Flow) CompleteSide(install domain.Install, role domain.Role, flags SideFlags) (domain.CharacterRef, error) {
	version, err := f.pickVersion(install, role, flags.Version)
	if err != nil {
		return domain.CharacterRef{}, err
	}

	candidates := filterWtfs(version.SelectableWtfs(role), flags)
	if len(candidates) == 0 {
		return domain.CharacterRef{}, apperrors.Wrap(apperrors.InvalidSelection, "pick "+role.String(), version.Name, ErrNoCandidates)
	}

	chosen := candidates[0]
	if len(candidates) > 1 {
		options := make([]string, len(candidates))
		for i, wtf := range candidates {
			options[i] = wtf.String()
		}
		picked := options[0]
		if err := f.UI.Select(fmt.Sprintf("Pick the %s character", role), options, &picked); err != nil {
			return domain.CharacterRef{}, err
		}
		for _, wtf := range candidates {
			if wtf.String() == picked {
				chosen = wtf
				break
			}
		}
	}

	return domain.CharacterRef{
		Version:   version.Name,
		Account:   chosen.Account,
		Realm:     chosen.Realm,
		Character: chosen.Character,
	}, nil
}

// ConfirmOverwrite asks whether account level data should be overwritten.
// Same-account copies skip the account step on their own, so there is
// nothing to ask then.
func (f Flow) ConfirmOverwrite(sameAccount bool) (bool, error) {
	if sameAccount {
		return true, nil
	}
	overwrite := true
	if err := f.UI.Confirm("Overwrite the target account's bindings, macros and account SavedVariables?", &overwrite); err != nil {
		return false, err
	}
	return overwrite, nil
}

// ConfirmRun is the final gate before the engine touches files.
func (f Flow) ConfirmRun() (bool, error) {
	proceed := false
	if err := f.UI.Confirm("Proceed with the copy?", &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}

func (f Flow) pickVersion(install domain.Install, role domain.Role, name string) (domain.Version, error) {
	if name != "" {
		version, ok := install.Version(name)
		if !ok {
			return domain.Version{}, apperrors.Wrap(apperrors.InvalidSelection, "pick "+role.String(), name, ErrUnknownVersion)
		}
		return version, nil
	}
	if len(install.Versions) == 1 {
		return install.Versions[0], nil
	}

	names := make([]string, len(install.Versions))
	for i, version := range install.Versions {
		names[i] = version.Name
	}
	picked := names[0]
	if err := f.UI.Select(fmt.Sprintf("Pick the %s version", role), names, &picked); err != nil {
		return domain.Version{}, err
	}
	version, ok := install.Version(picked)
	if !ok {
		return domain.Version{}, apperrors.Wrap(apperrors.InvalidSelection, "pick "+role.String(), picked, ErrUnknownVersion)
	}
	return version, nil
}

func filterWtfs(wtfs []domain.Wtf, flags SideFlags) []domain.Wtf {
	var out []domain.Wtf
	for _, wtf := range wtfs {
		if flags.Account != "" && wtf.Account != flags.Account {
			continue
		}
		if flags.Realm != "" && wtf.Realm != flags.Realm {
			continue
		}
		if flags.Character != "" && wtf.Character != flags.Character {
			continue
		}
		out = append(out, wtf)
	}
	return out
}
