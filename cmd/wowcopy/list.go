package main

import (
	"github.com/spf13/cobra"

	"wowcopy/internal/presentation"
)

func newListCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the discovered versions, accounts and characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(root)
			if err != nil {
				return err
			}
			install, err := newScanner(cfg).Discover(cfg.InstallDir)
			if err != nil {
				return err
			}
			presentation.Printer{Out: cmd.OutOrStdout()}.PrintInstall(install)
			return nil
		},
	}
}
