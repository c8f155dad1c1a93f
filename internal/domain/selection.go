package domain

import (
	"errors"
	"path/filepath"
)

var (
	ErrNoInstall = errors.New("no installation found")
	ErrNotReady  = errors.New("operation not ready for copying")
	ErrNoVersion = errors.New("choose a version before a character")
)

// Side tracks one side's selection progress. A character is only held
// together with the version it was chosen under: choosing a version drops
// any previously chosen character, so the two can never disagree.
type Side struct {
	version *Version
	wtf     *Wtf
}

func (s *Side) ChooseVersion(v Version) {
	s.version = &v
	s.wtf = nil
}

func (s *Side) ChooseWtf(w Wtf) error {
	if s.version == nil {
		return ErrNoVersion
	}
	s.wtf = &w
	return nil
}

func (s *Side) Reset() {
	s.version = nil
	s.wtf = nil
}

func (s *Side) Version() (Version, bool) {
	if s.version == nil {
		return Version{}, false
	}
	return *s.version, true
}

func (s *Side) Wtf() (Wtf, bool) {
	if s.wtf == nil {
		return Wtf{}, false
	}
	return *s.wtf, true
}

func (s *Side) ref() (CharacterRef, bool) {
	if s.version == nil || s.wtf == nil {
		return CharacterRef{}, false
	}
	return CharacterRef{
		Version:   s.version.Name,
		Account:   s.wtf.Account,
		Realm:     s.wtf.Realm,
		Character: s.wtf.Character,
	}, true
}

// Selection is the state of one copy operation: the chosen install and the
// progress of both sides. It owns the install tree exclusively and replaces
// it wholesale on re-selection.
type Selection struct {
	install          *Install
	Source           Side
	Target           Side
	OverwriteAccount bool
	Logs             []string
}

func NewSelection() *Selection {
	return &Selection{OverwriteAccount: true}
}

// SetInstall replaces the install tree and clears both sides: selections
// made against an old tree mean nothing against a new one.
func (sel *Selection) SetInstall(inst Install) {
	sel.install = &inst
	sel.Source.Reset()
	sel.Target.Reset()
}

func (sel *Selection) Install() (Install, bool) {
	if sel.install == nil {
		return Install{}, false
	}
	return *sel.install, true
}

func (sel *Selection) Ready() bool {
	_, err := sel.CopyRequest()
	return err == nil
}

// SameAccount reports whether both chosen characters live under the same
// account folder. False while either side is incomplete.
func (sel *Selection) SameAccount() bool {
	src, okSrc := sel.Source.Wtf()
	dst, okDst := sel.Target.Wtf()
	return okSrc && okDst && src.Account == dst.Account
}

func (sel *Selection) SameVersion() bool {
	src, okSrc := sel.Source.Version()
	dst, okDst := sel.Target.Version()
	return okSrc && okDst && src.Name == dst.Name
}

// CopyRequest collapses the selection into the copy engine's input,
// returning ErrNotReady until the install and both sides are fully chosen.
func (sel *Selection) CopyRequest() (CopyRequest, error) {
	if sel.install == nil {
		return CopyRequest{}, ErrNotReady
	}
	src, ok := sel.Source.ref()
	if !ok {
		return CopyRequest{}, ErrNotReady
	}
	dst, ok := sel.Target.ref()
	if !ok {
		return CopyRequest{}, ErrNotReady
	}
	return CopyRequest{
		InstallDir:       sel.install.Dir,
		Source:           src,
		Target:           dst,
		OverwriteAccount: sel.OverwriteAccount,
	}, nil
}

// CharacterRef names one character's configuration location precisely
// enough to derive its paths.
type CharacterRef struct {
	Version   string
	Account   string
	Realm     string
	Character string
}

func (r CharacterRef) AccountRoot(installDir string) string {
	return filepath.Join(installDir, r.Version, WTFDir, AccountDir, r.Account)
}

func (r CharacterRef) CharacterRoot(installDir string) string {
	return filepath.Join(r.AccountRoot(installDir), r.Realm, r.Character)
}

func (r CharacterRef) complete() bool {
	return r.Version != "" && r.Account != "" && r.Realm != "" && r.Character != ""
}

// CopyRequest is the fully resolved input of one copy run.
type CopyRequest struct {
	InstallDir       string
	Source           CharacterRef
	Target           CharacterRef
	OverwriteAccount bool
}

func (req CopyRequest) Validate() error {
	if req.InstallDir == "" || !req.Source.complete() || !req.Target.complete() {
		return ErrNotReady
	}
	return nil
}
