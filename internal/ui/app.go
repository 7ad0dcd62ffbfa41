package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabatui/tabata/internal/prefs"
	"github.com/tabatui/tabata/internal/settings"
	"github.com/tabatui/tabata/internal/timer"
)

// View represents the current active view.
type View int

const (
	ViewTimer View = iota
	ViewSettings
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    *timer.Engine
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It owns the tick
// subscription: ticks are scheduled only while the engine reports an active
// phase, and a generation counter discards ticks that were already in flight
// when the countdown stopped.
type Model struct {
	ctx       context.Context
	engine    *timer.Engine
	snap      timer.Snapshot
	form      settings.Form
	keys      keyMap
	theme     Theme
	styles    Styles
	prefsPath string

	currentView View
	cycleBar    progress.Model
	inputs      []fieldInput
	focusIdx    int

	width    int
	height   int
	ready    bool
	showHelp bool

	tickGen int // invalidates stale tick subscriptions
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	engine := opts.Engine
	if engine == nil {
		engine = timer.New()
	}

	theme := GetTheme(opts.ThemeName)
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		engine:      engine,
		snap:        engine.Snapshot(),
		form:        settings.New(engine.Config()),
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		prefsPath:   prefsPath,
		currentView: ViewTimer,
		cycleBar:    newCycleBar(theme),
	}
}

func newCycleBar(t Theme) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return bar
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if w := msg.Width - 10; w > 0 && w < 40 {
			m.cycleBar.Width = w
		}
		return m, nil

	case tickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick advances the engine by one second, fires any cue, and re-arms
// the subscription while the countdown stays active.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// A tick from a cancelled subscription (stop, reset, or a completed run)
	// must not reach the engine.
	if msg.gen != m.tickGen || !m.snap.TickActive {
		return m, nil
	}

	m.snap = m.engine.Handle(timer.Tick{})

	var cmds []tea.Cmd
	if cmd := cueCmd(m.snap.Cue); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.snap.TickActive {
		cmds = append(cmds, tickCmd(m.tickGen))
	}
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewSettings {
		return m.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.cycleBar = newCycleBar(m.theme)
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.StartStop):
		if m.snap.TickActive {
			m.snap = m.engine.Handle(timer.Stop{})
			return m, nil
		}
		m.snap = m.engine.Handle(timer.Start{})
		if m.snap.TickActive {
			// A fresh generation supersedes any tick still in flight, so
			// exactly one subscription exists at a time.
			m.tickGen++
			return m, tickCmd(m.tickGen)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.snap = m.engine.Handle(timer.Reset{})
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		return m.openSettings()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.currentView == ViewSettings {
		return m.renderSettings()
	}
	return m.renderTimer()
}

// renderTimer renders the main timer view.
func (m Model) renderTimer() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	radius := ringRadius(m.width, m.height)
	ring := renderRing(radius, m.snap.Progress, m.snap.Display, m.snap.Darken, m.styles)
	b.WriteString(centerBlock(ring, m.width))
	b.WriteString("\n\n")

	cycles := fmt.Sprintf("%d/%d cycles", m.snap.Completed, m.snap.Cycles)
	bar := m.cycleBar.ViewAs(m.snap.Progress) + "  " + m.styles.MutedText.Render(cycles)
	b.WriteString(centerBlock(bar, m.width))
	b.WriteString("\n\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the logo, phase, and status message line.
func (m Model) renderHeader() string {
	parts := []string{
		m.styles.Logo.Render("tabata"),
		m.phaseBadge(),
		m.styles.Text.Render(m.snap.Message),
	}
	line := strings.Join(parts, "  ")
	return m.styles.Header.Width(max(m.width, lipgloss.Width(line))).Render(line)
}

func (m Model) phaseBadge() string {
	switch m.snap.Phase {
	case timer.PhaseStart:
		return m.styles.WarningText.Render("● READY")
	case timer.PhaseOn:
		return m.styles.SuccessText.Render("● WORK")
	case timer.PhaseOff:
		return m.styles.AccentText.Render("● REST")
	case timer.PhasePaused:
		return m.styles.WarningText.Render("● PAUSED")
	default:
		return m.styles.MutedText.Render("● IDLE")
	}
}

// renderFooter renders the short key-hint line.
func (m Model) renderFooter() string {
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints,
			m.styles.AccentText.Render(h.Key)+" "+m.styles.MutedText.Render(h.Desc))
	}
	line := strings.Join(hints, m.styles.FaintText.Render("  •  "))
	return m.styles.Footer.Width(max(m.width, lipgloss.Width(line))).Render(line)
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("tabata"))
	b.WriteString(m.styles.MutedText.Render(" · interval timer"))
	b.WriteString("\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.AccentText.Render(fmt.Sprintf("%-11s", h.Key)),
				m.styles.Text.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.MutedText.Render("  Press any key to close."))
	return b.String()
}

// ringRadius picks the largest ring that fits the window, leaving room for
// the header, cycle bar, and footer.
func ringRadius(width, height int) int {
	byHeight := (height - 9) / 2
	byWidth := (width - 2) / 4
	r := byHeight
	if byWidth < r {
		r = byWidth
	}
	if r < 4 {
		r = 4
	}
	if r > 12 {
		r = 12
	}
	return r
}

// centerBlock centers every line of a multi-line block within width columns.
func centerBlock(block string, width int) string {
	if width <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// Messages

type tickMsg struct {
	gen int
}

// Commands

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// cueCmd plays an audio cue as a terminal bell. Fire and forget; the engine
// never hears back.
func cueCmd(c timer.Cue) tea.Cmd {
	if c == timer.CueNone {
		return nil
	}
	return func() tea.Msg {
		bell := "\a"
		if c == timer.CueLongBeep {
			bell = "\a\a"
		}
		_, _ = io.WriteString(os.Stderr, bell)
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
