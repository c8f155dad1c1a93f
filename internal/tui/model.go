package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wowcopy/internal/domain"
	apperrors "wowcopy/internal/errors"
)

type phase int

const (
	phaseLoading phase = iota
	phasePickDir
	phaseBrowse
	phaseCopying
)

type (
	installLoadedMsg struct {
		install domain.Install
		err     error
	}
	copyDoneMsg struct {
		log []string
		err error
	}
)

// DiscoverFunc and CopyFunc are injected so the model drives the
// application without depending on it.
type (
	DiscoverFunc func(root string) (domain.Install, error)
	CopyFunc     func(req domain.CopyRequest) ([]string, error)
)

type Config struct {
	InstallDir string
	Discover   DiscoverFunc
	Copy       CopyFunc
	Styles     Styles
}

// Model is the interactive view: install path on top, a source and a
// target selection column, and the operation log below. One operation is
// in flight at most; the copy key is inert while phaseCopying.
type Model struct {
	cfg    Config
	styles Styles

	phase phase
	sel   *domain.Selection
	dir   string

	focus  domain.Role
	cursor map[domain.Role]int
	status string

	dirInput textinput.Model
	spinner  spinner.Model
	logView  viewport.Model

	width    int
	height   int
	Quitting bool
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cfg.Styles.Spinner

	ti := textinput.New()
	ti.Placeholder = "/path/to/World of Warcraft"
	ti.SetValue(cfg.InstallDir)

	return Model{
		cfg:      cfg,
		styles:   cfg.Styles,
		phase:    phaseLoading,
		sel:      domain.NewSelection(),
		dir:      cfg.InstallDir,
		focus:    domain.RoleSource,
		cursor:   map[domain.Role]int{domain.RoleSource: 0, domain.RoleTarget: 0},
		dirInput: ti,
		spinner:  s,
		logView:  viewport.New(76, 8),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.discoverCmd(m.dir))
}

func (m Model) discoverCmd(root string) tea.Cmd {
	return func() tea.Msg {
		install, err := m.cfg.Discover(root)
		return installLoadedMsg{install: install, err: err}
	}
}

func (m Model) copyCmd(req domain.CopyRequest) tea.Cmd {
	return func() tea.Msg {
		log, err := m.cfg.Copy(req)
		return copyDoneMsg{log: log, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(20, msg.Width-6)
		m.logView.Height = max(3, msg.Height-18)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case installLoadedMsg:
		if msg.err != nil {
			m.status = apperrors.UserMessage(msg.err)
			m.phase = phasePickDir
			m.dirInput.Focus()
			return m, textinput.Blink
		}
		m.sel.SetInstall(msg.install)
		m.dir = msg.install.Dir
		m.cursor[domain.RoleSource] = 0
		m.cursor[domain.RoleTarget] = 0
		m.status = ""
		m.phase = phaseBrowse
		return m, nil

	case copyDoneMsg:
		m.phase = phaseBrowse
		if msg.err != nil {
			// a structural error takes the log's place, so the user
			// always sees something explaining the outcome
			m.status = apperrors.UserMessage(msg.err)
			m.sel.Logs = nil
			m.logView.SetContent(m.styles.Error.Render(m.status))
			return m, nil
		}
		m.status = ""
		m.sel.Logs = msg.log
		m.logView.SetContent(m.renderLogLines(msg.log))
		m.logView.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseLoading || m.phase == phaseCopying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.phase == phaseBrowse {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phasePickDir:
		switch msg.String() {
		case "enter":
			dir := strings.TrimSpace(m.dirInput.Value())
			if dir == "" {
				return m, nil
			}
			m.phase = phaseLoading
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.discoverCmd(dir))
		case "esc":
			if _, ok := m.sel.Install(); ok {
				m.phase = phaseBrowse
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.dirInput, cmd = m.dirInput.Update(msg)
		return m, cmd

	case phaseBrowse:
		return m.updateBrowseKey(msg)
	}

	// loading and copying only react to quit
	if msg.String() == "q" {
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "tab":
		if m.focus == domain.RoleSource {
			m.focus = domain.RoleTarget
		} else {
			m.focus = domain.RoleSource
		}
	case "up", "k":
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
	case "down", "j":
		if m.cursor[m.focus] < len(m.options(m.focus))-1 {
			m.cursor[m.focus]++
		}
	case "enter":
		m.choose(m.focus)
	case "r":
		m.side(m.focus).Reset()
		m.cursor[m.focus] = 0
	case "o":
		if !m.sel.SameAccount() {
			m.sel.OverwriteAccount = !m.sel.OverwriteAccount
		}
	case "i":
		m.phase = phasePickDir
		m.dirInput.SetValue(m.dir)
		m.dirInput.Focus()
		return m, textinput.Blink
	case "c":
		req, err := m.sel.CopyRequest()
		if err != nil {
			m.status = apperrors.UserMessage(apperrors.Wrap(apperrors.NotReady, "copy", "", err))
			return m, nil
		}
		m.phase = phaseCopying
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.copyCmd(req))
	}
	return m, nil
}

func (m Model) side(role domain.Role) *domain.Side {
	if role == domain.RoleSource {
		return &m.sel.Source
	}
	return &m.sel.Target
}

// options lists what the cursor currently moves over for one side:
// versions until one is chosen, then the role-filtered characters, then
// nothing once the side is complete.
func (m Model) options(role domain.Role) []string {
	install, ok := m.sel.Install()
	if !ok {
		return nil
	}
	side := m.side(role)
	version, ok := side.Version()
	if !ok {
		names := make([]string, len(install.Versions))
		for i, v := range install.Versions {
			names[i] = v.Name
		}
		return names
	}
	if _, ok := side.Wtf(); ok {
		return nil
	}
	wtfs := version.SelectableWtfs(role)
	labels := make([]string, len(wtfs))
	for i, w := range wtfs {
		labels[i] = w.String()
	}
	return labels
}

func (m *Model) choose(role domain.Role) {
	install, ok := m.sel.Install()
	if !ok {
		return
	}
	side := m.side(role)
	cursor := m.cursor[role]

	version, ok := side.Version()
	if !ok {
		if cursor < len(install.Versions) {
			side.ChooseVersion(install.Versions[cursor])
			m.cursor[role] = 0
		}
		return
	}
	if _, ok := side.Wtf(); ok {
		return
	}
	wtfs := version.SelectableWtfs(role)
	if cursor < len(wtfs) {
		_ = side.ChooseWtf(wtfs[cursor])
		m.cursor[role] = 0
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("wowcopy"))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render("copy WoW configuration between characters"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("install: "))
	b.WriteString(m.styles.Dir.Render(m.dir))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString(fmt.Sprintf("%s scanning %s...", m.spinner.View(), m.dir))
	case phasePickDir:
		b.WriteString(m.renderPickDir())
	case phaseBrowse:
		b.WriteString(m.renderBrowse())
	case phaseCopying:
		b.WriteString(m.renderBrowse())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s copying...", m.spinner.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderPickDir() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.styles.Warning.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString("Where is World of Warcraft installed?\n")
	b.WriteString(m.dirInput.View())
	return b.String()
}

func (m Model) renderBrowse() string {
	var b strings.Builder

	source := m.renderSide(domain.RoleSource)
	target := m.renderSide(domain.RoleTarget)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, source, " ", target))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}
	if len(m.sel.Logs) > 0 || m.logView.TotalLineCount() > 0 {
		b.WriteString(m.styles.LogBox.Render(m.logView.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSide(role domain.Role) string {
	var b strings.Builder
	b.WriteString(m.styles.RoleTitle.Render(role.String()))
	b.WriteString("\n")

	side := m.side(role)
	if version, ok := side.Version(); ok {
		b.WriteString(m.styles.Chosen.Render(iconChosen + " " + version.Name))
		b.WriteString("\n")
	}

	if wtf, ok := side.Wtf(); ok {
		b.WriteString(m.styles.Chosen.Render(iconChosen + " " + wtf.String()))
		b.WriteString("\n")
		b.WriteString(m.renderSummary(role))
	} else {
		b.WriteString(m.renderOptions(role))
	}

	panel := m.styles.Panel
	if role == m.focus {
		panel = m.styles.PanelFocus
	}
	return panel.Width(max(30, m.width/2-4)).Render(b.String())
}

func (m Model) renderOptions(role domain.Role) string {
	options := m.options(role)
	if len(options) == 0 {
		return m.styles.Muted.Render("(nothing to pick)")
	}
	var b strings.Builder
	cursor := m.cursor[role]
	for i, option := range options {
		if i == cursor && role == m.focus {
			b.WriteString(m.styles.Cursor.Render(iconArrow + " " + option))
		} else {
			b.WriteString(m.styles.Item.Render("  " + option))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSummary(role domain.Role) string {
	if role != domain.RoleTarget {
		return ""
	}
	switch {
	case m.sel.SameAccount():
		return m.styles.Muted.Render("account data: skipped (same account)") + "\n"
	case !m.sel.OverwriteAccount:
		return m.styles.Muted.Render("account data: kept (o to overwrite)") + "\n"
	default:
		return m.styles.Warning.Render("account data: overwritten (o to keep)") + "\n"
	}
}

func (m Model) renderLogLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if strings.HasPrefix(line, "error ") {
			b.WriteString(m.styles.Error.Render(iconError + " " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	switch m.phase {
	case phasePickDir:
		return m.styles.Help.Render("enter scan · esc back · ctrl+c quit")
	case phaseBrowse:
		help := "tab side · ↑/↓ move · enter pick · r reset · i dir · q quit"
		if m.sel.Ready() {
			help = "c copy · " + help
		}
		return m.styles.Help.Render(help)
	default:
		return m.styles.Help.Render("q quit")
	}
}
