package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
)

func stateAt(width, height float64) breakpoint.State {
	p := config.Default()
	return breakpoint.NewState(width, height, p.Primary, nil, breakpoint.PlatformLinux, p.LandscapePlatforms)
}

func TestLayoutFor_ColumnsByWidth(t *testing.T) {
	cases := []struct {
		width float64
		want  int
	}{
		{60, 1},
		{100, 2},
		{130, 3},
		{200, 4},
	}
	for _, tc := range cases {
		lay := layoutFor(stateAt(tc.width, 40))
		if lay.columns != tc.want {
			t.Errorf("width %v: got %d columns, want %d", tc.width, lay.columns, tc.want)
		}
	}
}

func TestLayoutFor_ZeroStateDefaults(t *testing.T) {
	lay := layoutFor(breakpoint.State{})
	if lay.columns != 1 || lay.density != "compact" {
		t.Errorf("zero state should yield compact defaults, got %+v", lay)
	}
}

func TestLayoutFor_SidebarHiddenWhenCompact(t *testing.T) {
	if lay := layoutFor(stateAt(60, 40)); lay.showSidebar {
		t.Error("sidebar should be hidden below COMPACT end")
	}
	if lay := layoutFor(stateAt(120, 40)); !lay.showSidebar {
		t.Error("sidebar should show beyond COMPACT")
	}
}

func TestLayoutFor_DensityLandscapeOverride(t *testing.T) {
	p := config.Default()
	// A terminal is numerically landscape; on an eligible platform the
	// override value must win.
	eligible := breakpoint.NewState(100, 40, p.Primary, nil, breakpoint.PlatformAndroid, p.LandscapePlatforms)
	if lay := layoutFor(eligible); lay.density != "rotated" {
		t.Errorf("eligible landscape: got %q, want rotated", lay.density)
	}
	desktop := breakpoint.NewState(100, 40, p.Primary, nil, breakpoint.PlatformLinux, p.LandscapePlatforms)
	if lay := layoutFor(desktop); lay.density != "regular" {
		t.Errorf("desktop: got %q, want regular", lay.density)
	}
}

func TestDemoConditionNames(t *testing.T) {
	names := demoConditionNames()
	if len(names) == 0 {
		t.Fatal("demo conditions should reference named breakpoints")
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
	if !seen["STANDARD"] {
		t.Error("STANDARD should be among referenced names")
	}
}

func TestDebugReport_MarksActiveRange(t *testing.T) {
	st := stateAt(100, 40)
	report := DebugReport(st, demoConditionNames())
	if !strings.Contains(report, "> STANDARD[80-119]") {
		t.Errorf("active range not marked:\n%s", report)
	}
	if !strings.Contains(report, "100x40") {
		t.Errorf("metrics missing:\n%s", report)
	}
}

func TestDebugReport_InvalidState(t *testing.T) {
	report := DebugReport(breakpoint.State{}, nil)
	if !strings.Contains(report, "no metrics") {
		t.Errorf("unexpected report for zero state:\n%s", report)
	}
}

func TestUnknownNames_Suggestions(t *testing.T) {
	set := breakpoint.NewSet(
		breakpoint.MustRange(0, 79, "COMPACT"),
		breakpoint.MustRange(80, 119, "STANDARD"),
	)
	unknown := unknownNames(set, []string{"STANDARD", "STNDRD", "ZZZ"})
	if _, ok := unknown["STANDARD"]; ok {
		t.Error("known name must not be reported")
	}
	if got := unknown["STNDRD"]; got != "STANDARD" {
		t.Errorf("suggestion for STNDRD: got %q, want STANDARD", got)
	}
	if _, ok := unknown["ZZZ"]; !ok {
		t.Error("ZZZ should be reported as unknown")
	}
}

func TestModel_WindowSizeFeedsTracker(t *testing.T) {
	m := NewModel(config.Default(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	st := m.Tracker().State()
	if !st.Valid() {
		t.Fatal("resize must produce a valid state")
	}
	if st.ActiveRange.Name != "STANDARD" {
		t.Errorf("100 cols should classify STANDARD, got %v", st.ActiveRange)
	}

	view := m.View()
	if !strings.Contains(view, "STANDARD") {
		t.Error("view should show the active breakpoint name")
	}
}

func TestModel_ProfileReload(t *testing.T) {
	m := NewModel(config.Default(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	p, err := config.Parse([]byte("breakpoints:\n  - {name: EVERYTHING, start: 0, end: 9999}\n"))
	if err != nil {
		t.Fatal(err)
	}
	updated, _ = m.Update(ProfileReloadedMsg{Profile: p})
	m = updated.(Model)

	if got := m.Tracker().State().ActiveRange.Name; got != "EVERYTHING" {
		t.Errorf("reload must reclassify, got %q", got)
	}
}
