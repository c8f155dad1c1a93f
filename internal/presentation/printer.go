// Package presentation renders install trees, copy plans and operation
// logs for the command line.
package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wowcopy/internal/domain"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	errLine = color.New(color.FgRed)
	muted   = color.New(color.Faint)
)

type Printer struct {
	Out io.Writer
}

// PrintInstall renders the discovered tree grouped by version, account and
// realm. Characters without SavedVariables are marked, since they cannot
// serve as a copy source.
func (p Printer) PrintInstall(install domain.Install) {
	header.Fprintln(p.Out, install.Dir)
	for _, version := range install.Versions {
		fmt.Fprintf(p.Out, "  %s\n", version.Name)
		if len(version.Wtfs) == 0 {
			muted.Fprintln(p.Out, "    (no characters)")
			continue
		}
		lastAccount, lastRealm := "", ""
		for _, wtf := range version.Wtfs {
			if wtf.Account != lastAccount {
				fmt.Fprintf(p.Out, "    %s\n", wtf.Account)
				lastAccount, lastRealm = wtf.Account, ""
			}
			if wtf.Realm != lastRealm {
				fmt.Fprintf(p.Out, "      %s\n", wtf.Realm)
				lastRealm = wtf.Realm
			}
			if wtf.HasVars {
				fmt.Fprintf(p.Out, "        %s\n", wtf.Character)
			} else {
				fmt.Fprintf(p.Out, "        %s %s\n", wtf.Character, muted.Sprint("(no SavedVariables)"))
			}
		}
	}
}

// PrintPlan summarizes what a copy request will do, for confirmation.
func (p Printer) PrintPlan(req domain.CopyRequest) {
	fmt.Fprintf(p.Out, "%s %s\n", header.Sprint("from:"), refLabel(req.Source))
	fmt.Fprintf(p.Out, "%s %s\n", header.Sprint("  to:"), refLabel(req.Target))
	switch {
	case req.Source.Account == req.Target.Account:
		muted.Fprintln(p.Out, "account data: skipped (same account)")
	case !req.OverwriteAccount:
		muted.Fprintln(p.Out, "account data: kept")
	default:
		fmt.Fprintln(p.Out, "account data: overwritten")
	}
}

// PrintLog writes the engine's operation log in order, error lines in red.
func (p Printer) PrintLog(lines []string) {
	for _, line := range lines {
		if strings.HasPrefix(line, "error ") {
			errLine.Fprintln(p.Out, line)
			continue
		}
		fmt.Fprintln(p.Out, line)
	}
}

func refLabel(ref domain.CharacterRef) string {
	return fmt.Sprintf("%s %s/%s/%s", ref.Version, ref.Account, ref.Realm, ref.Character)
}
