package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wowcopy/internal/app"
	"wowcopy/internal/config"
	"wowcopy/internal/infra/fs"
	"wowcopy/internal/logging"
	"wowcopy/internal/tui"
	"wowcopy/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoTerminal = errors.New("the interactive view needs a terminal; use `wowcopy list` or `wowcopy copy` instead")

type rootFlags struct {
	dir     string
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "wowcopy",
		Short:         "Copy WoW configuration and SavedVariables between characters",
		Long:          "wowcopy discovers a World of Warcraft installation's versions, accounts\nand characters, and copies configuration and SavedVariables files from\none character to another. Without a subcommand it opens the interactive\nview.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}
	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "d", "", "installation directory (default: the platform's stock location)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	cmd.AddCommand(newListCmd(flags), newCopyCmd(flags))
	return cmd
}

// resolve turns the persistent flags into the process configuration and
// applies the color switch.
func resolve(flags *rootFlags) (config.Config, error) {
	if flags.noColor {
		color.NoColor = true
	}
	return config.Resolve(config.Config{InstallDir: flags.dir, Verbose: flags.verbose})
}

func newScanner(cfg config.Config) *app.Scanner {
	return &app.Scanner{
		FS:     fs.OSFS{},
		Logger: logging.New(os.Stderr, cfg.Verbose),
	}
}

func runTUI(flags *rootFlags) error {
	if !wizard.Interactive() {
		return errNoTerminal
	}
	cfg, err := resolve(flags)
	if err != nil {
		return err
	}

	scanner := newScanner(cfg)
	copier := &app.Copier{FS: fs.OSFS{}}
	model := tui.NewModel(tui.Config{
		InstallDir: cfg.InstallDir,
		Discover:   scanner.Discover,
		Copy:       copier.Run,
		Styles:     tui.NewStyles(lipgloss.HasDarkBackground()),
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
