package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# rtv

Live viewer for the responsive breakpoint engine. Resize the terminal and
watch the classification change.

## Keys

| Key | Action |
| --- | ------ |
| d   | Toggle the debug overlay |
| p   | Cycle the reported platform |
| e   | Export the active set as an SVG ruler |
| y   | Copy the debug report to the clipboard |
| x   | Dismiss the install prompt |
| q   | Quit |

## Platforms

Landscape breakpoints and landscape value overrides only activate on
landscape-eligible platforms (ios, android, fuchsia by default). Cycling
to a desktop platform with *p* shows the same wide terminal classified
against the primary set instead.
`

// HelpOverlayModel shows the keyboard help, rendered from markdown.
type HelpOverlayModel struct {
	visible  bool
	width    int
	height   int
	rendered string
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel() HelpOverlayModel {
	return HelpOverlayModel{}
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
	m.render()
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.visible {
		m.render()
	}
}

func (m *HelpOverlayModel) render() {
	wrap := m.width - 2*SpaceLG
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.rendered = helpMarkdown
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		out = helpMarkdown
	}
	m.rendered = out
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}
	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}
	box := overlayStyle.Render(m.rendered)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
