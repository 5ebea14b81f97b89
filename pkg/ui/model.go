package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
	"github.com/Dicklesworthstone/responsive_tui/pkg/export"
	"github.com/Dicklesworthstone/responsive_tui/pkg/store"
	"github.com/Dicklesworthstone/responsive_tui/pkg/tracker"
)

// ProfileReloadedMsg is sent by the config watcher when the profile file
// changed on disk and parsed cleanly.
type ProfileReloadedMsg struct {
	Profile config.Profile
}

// platformCycle is the order the 'p' key steps through, so eligibility of
// landscape breakpoints can be exercised live.
var platformCycle = []breakpoint.Platform{
	breakpoint.PlatformLinux,
	breakpoint.PlatformMacOS,
	breakpoint.PlatformWindows,
	breakpoint.PlatformWeb,
	breakpoint.PlatformAndroid,
	breakpoint.PlatformIOS,
	breakpoint.PlatformFuchsia,
}

type keyMap struct {
	Quit     key.Binding
	Debug    key.Binding
	Help     key.Binding
	Copy     key.Binding
	Platform key.Binding
	Dismiss  key.Binding
	Export   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Debug:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "debug overlay")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy debug report")),
		Platform: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle platform")),
		Dismiss:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss prompt")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
	}
}

// Model is the demo shell: it feeds terminal resizes into a tracker and
// renders its panes according to the resolved breakpoint state.
type Model struct {
	tracker *tracker.Tracker
	profile config.Profile
	prompts *store.Store // may be nil when bookkeeping is disabled

	keys   keyMap
	help   HelpOverlayModel
	width  int
	height int

	debugVisible    bool
	status          string
	visits          int
	promptDismissed bool
}

// NewModel builds the demo model. prompts may be nil.
func NewModel(profile config.Profile, prompts *store.Store) Model {
	m := Model{
		tracker: profile.NewTracker(),
		profile: profile,
		prompts: prompts,
		keys:    newKeyMap(),
		help:    NewHelpOverlayModel(),
	}
	if prompts != nil {
		if visits, err := prompts.RecordVisit(); err == nil {
			m.visits = visits
		}
		if counts, err := prompts.Snapshot(); err == nil {
			m.promptDismissed = counts.Dismissals > 0
		}
	}
	return m
}

// Tracker exposes the model's tracker, used by the watcher wiring in main.
func (m Model) Tracker() *tracker.Tracker {
	return m.tracker
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.tracker.SetMetrics(float64(msg.Width), float64(msg.Height))
		return m, nil

	case ProfileReloadedMsg:
		m.profile = msg.Profile
		m.tracker.Reconfigure(msg.Profile.Primary, msg.Profile.Landscape, msg.Profile.LandscapePlatforms)
		m.status = "profile reloaded"
		return m, nil

	case tea.KeyMsg:
		if m.help.IsVisible() {
			m.help, _ = m.help.Update(msg)
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Debug):
			m.debugVisible = !m.debugVisible
		case key.Matches(msg, m.keys.Help):
			m.help.Show()
		case key.Matches(msg, m.keys.Platform):
			m.cyclePlatform()
		case key.Matches(msg, m.keys.Copy):
			report := DebugReport(m.tracker.State(), demoConditionNames())
			if err := clipboard.WriteAll(report); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = "debug report copied"
			}
		case key.Matches(msg, m.keys.Dismiss):
			m.dismissPrompt()
		case key.Matches(msg, m.keys.Export):
			m.exportRuler()
		}
	}
	return m, nil
}

func (m *Model) cyclePlatform() {
	current := m.tracker.Platform()
	next := platformCycle[0]
	for i, p := range platformCycle {
		if p == current {
			next = platformCycle[(i+1)%len(platformCycle)]
			break
		}
	}
	m.tracker.SetPlatform(next)
	m.status = "platform: " + string(next)
}

func (m *Model) dismissPrompt() {
	if m.promptDismissed {
		return
	}
	m.promptDismissed = true
	if m.prompts != nil {
		if err := m.prompts.RecordDismissal("keyboard"); err != nil {
			m.status = fmt.Sprintf("dismissal not saved: %v", err)
			return
		}
	}
	m.status = "install prompt dismissed"
}

func (m *Model) exportRuler() {
	st := m.tracker.State()
	if !st.Valid() {
		m.status = "nothing to export yet"
		return
	}
	path := "breakpoints.svg"
	err := export.SaveRulerSVG(path, st.ActiveSet, export.RulerOptions{
		Marker:     st.Width,
		ShowMarker: true,
	})
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = "wrote " + path
}
