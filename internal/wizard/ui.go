// Package wizard drives the interactive prompts of the copy command. The
// UI interface exists so flows can be tested without a terminal.
package wizard

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

var (
	// ErrNotInteractive reports a prompt attempted without a terminal.
	ErrNotInteractive = errors.New("interactive prompt requires a terminal")
	// ErrAborted reports that the user backed out of a prompt.
	ErrAborted = errors.New("aborted")
)

// Interactive reports whether stdin and stdout are both terminals.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// UI is the prompt surface used by Flow.
type UI interface {
	Select(title string, options []string, value *string) error
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
}

// HuhUI implements UI with charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: Interactive}
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	check := ui.isTerminal
	if check == nil {
		check = Interactive
	}
	if !check() {
		return ErrNotInteractive
	}
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func (ui *HuhUI) Select(title string, options []string, value *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, option := range options {
		opts[i] = huh.NewOption(option, option)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(value),
	)))
}

func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(value),
	)))
}

func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(value),
	)))
}
