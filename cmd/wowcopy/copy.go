package main

import (
	"errors"

	"github.com/spf13/cobra"

	"wowcopy/internal/app"
	"wowcopy/internal/domain"
	"wowcopy/internal/infra/fs"
	"wowcopy/internal/presentation"
	"wowcopy/internal/wizard"
)

type copyFlags struct {
	source      wizard.SideFlags
	target      wizard.SideFlags
	skipAccount bool
	yes         bool
}

func newCopyCmd(root *rootFlags) *cobra.Command {
	flags := &copyFlags{}
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy configuration from one character to another",
		Long:  "Copies the account and character configuration files and every .lua\nSavedVariables file from the source character to the target character.\nSelections not given as flags are asked for interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.source.Version, "source-version", "", "version folder to copy from (e.g. _retail_)")
	f.StringVar(&flags.source.Account, "source-account", "", "account folder to copy from")
	f.StringVar(&flags.source.Realm, "source-realm", "", "realm to copy from")
	f.StringVar(&flags.source.Character, "source-character", "", "character to copy from")
	f.StringVar(&flags.target.Version, "target-version", "", "version folder to copy to")
	f.StringVar(&flags.target.Account, "target-account", "", "account folder to copy to")
	f.StringVar(&flags.target.Realm, "target-realm", "", "realm to copy to")
	f.StringVar(&flags.target.Character, "target-character", "", "character to copy to")
	f.BoolVar(&flags.skipAccount, "skip-account", false, "keep the target account's files untouched")
	f.BoolVarP(&flags.yes, "yes", "y", false, "run without confirmation prompts")
	return cmd
}

func runCopy(cmd *cobra.Command, root *rootFlags, flags *copyFlags) error {
	cfg, err := resolve(root)
	if err != nil {
		return err
	}

	scanner := newScanner(cfg)
	flow := wizard.Flow{UI: wizard.NewHuhUI()}
	printer := presentation.Printer{Out: cmd.OutOrStdout()}

	install, err := discoverWithFallback(scanner, flow, cfg.InstallDir)
	if err != nil {
		return err
	}

	source, err := flow.CompleteSide(install, domain.RoleSource, flags.source)
	if err != nil {
		return err
	}
	target, err := flow.CompleteSide(install, domain.RoleTarget, flags.target)
	if err != nil {
		return err
	}

	overwrite := !flags.skipAccount
	if overwrite && !flags.yes && source.Account != target.Account {
		overwrite, err = flow.ConfirmOverwrite(false)
		if err != nil {
			return err
		}
	}

	req := domain.CopyRequest{
		InstallDir:       install.Dir,
		Source:           source,
		Target:           target,
		OverwriteAccount: overwrite,
	}
	printer.PrintPlan(req)

	if !flags.yes {
		proceed, err := flow.ConfirmRun()
		if err != nil {
			return err
		}
		if !proceed {
			return wizard.ErrAborted
		}
	}

	copier := &app.Copier{FS: fs.OSFS{}}
	log, err := copier.Run(req)
	if err != nil {
		return err
	}
	printer.PrintLog(log)
	return nil
}

// discoverWithFallback scans dir and, when nothing is found there, keeps
// asking for another directory as long as the session is interactive.
func discoverWithFallback(scanner *app.Scanner, flow wizard.Flow, dir string) (domain.Install, error) {
	for {
		install, err := scanner.Discover(dir)
		if err == nil {
			return install, nil
		}
		if !errors.Is(err, domain.ErrNoInstall) || !wizard.Interactive() {
			return domain.Install{}, err
		}
		dir, err = flow.PickInstallDir(dir)
		if err != nil {
			return domain.Install{}, err
		}
	}
}
