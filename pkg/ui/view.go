package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const installPromptAfterVisits = 3

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "measuring terminal..."
	}
	if m.help.IsVisible() {
		return m.help.View()
	}

	st := m.tracker.State()
	lay := layoutFor(st)

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.rulerView())
	b.WriteString("\n\n")

	if m.debugVisible {
		b.WriteString(overlayStyle.Width(min(m.width-2, 76)).Render(DebugReport(st, demoConditionNames())))
	} else {
		b.WriteString(m.panesView(lay))
	}
	b.WriteString("\n")

	if m.visits >= installPromptAfterVisits && !m.promptDismissed {
		b.WriteString(promptStyle.Render("Enjoying this? Install the app! (x to dismiss)"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("d debug · ? help · p platform · e export · y copy · q quit"))
	return b.String()
}

func (m Model) headerView() string {
	st := m.tracker.State()

	badge := sentinelBadgeStyle.Render("no match")
	if st.Valid() && !st.ActiveRange.IsSentinel() {
		name := st.ActiveRange.Name
		if name == "" {
			name = st.ActiveRange.String()
		}
		badge = badgeStyle.Render(name)
	}

	left := headerStyle.Render(fmt.Sprintf("rtv %dx%d", m.width, m.height))
	orient := orientationStyle.Render(st.Orientation.String())
	platform := footerStyle.Render(string(m.tracker.Platform()))
	return lipgloss.JoinHorizontal(lipgloss.Center, left, " ", badge, " ", orient, " ", platform)
}

// rulerView renders the active set as a one-line strip of named segments
// with the active range highlighted.
func (m Model) rulerView() string {
	st := m.tracker.State()
	if !st.Valid() || st.ActiveSet.Len() == 0 {
		return rulerInactiveStyle.Render(padRight("(no breakpoints configured)", m.width))
	}

	ranges := st.ActiveSet.Ranges()
	segWidth := m.width / len(ranges)
	if segWidth < 4 {
		segWidth = 4
	}

	var segs []string
	for _, r := range ranges {
		label := r.Name
		if label == "" {
			label = r.String()
		}
		label = " " + runewidth.Truncate(label, segWidth-2, "…") + " "
		label = padRight(label, segWidth)
		if r.SameBounds(st.ActiveRange) {
			segs = append(segs, rulerActiveStyle.Render(label))
		} else {
			segs = append(segs, rulerInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segs...)
}

func (m Model) panesView(lay paneLayout) string {
	cols := lay.columns
	if cols < 1 {
		cols = 1
	}
	totalGutter := lay.gutter * (cols - 1)
	paneWidth := (m.width - totalGutter) / cols
	if paneWidth < 10 {
		paneWidth = 10
		cols = 1
	}

	var panes []string
	for i := 0; i < cols; i++ {
		title := paneTitleStyle.Render(fmt.Sprintf("Pane %d", i+1))
		body := fmt.Sprintf("%s\ndensity: %s", title, lay.density)
		if i == 0 && lay.showSidebar {
			body += "\nsidebar: on"
		}
		panes = append(panes, paneStyle.Width(paneWidth-2).Render(body))
	}

	gutter := strings.Repeat(" ", lay.gutter)
	joined := make([]string, 0, len(panes)*2)
	for i, p := range panes {
		if i > 0 {
			joined = append(joined, gutter)
		}
		joined = append(joined, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func padRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
