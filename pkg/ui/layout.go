package ui

import "github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"

// paneLayout carries the responsive decisions for the demo view. Everything
// in it comes out of condition resolution against the current state, so the
// demo renders exactly what the engine decided.
type paneLayout struct {
	columns     int
	gutter      int
	showSidebar bool
	density     string
}

// The demo conditions reference the names of the default profile. Against a
// custom profile with other names they simply never match and the defaults
// apply, which is the documented degenerate behavior for unknown names.
//
// Later entries override earlier ones, so the most specific condition goes
// last.
var (
	columnConditions = []breakpoint.Condition[int]{
		breakpoint.SmallerThanWidth(80, 1),
		breakpoint.Equals("STANDARD", 2),
		breakpoint.LargerThan("STANDARD", 3),
		breakpoint.Equals("ULTRAWIDE", 4),
	}

	gutterConditions = []breakpoint.Condition[int]{
		breakpoint.SmallerThanWidth(100, SpaceXS),
		breakpoint.Between(100, 159, SpaceSM),
		breakpoint.LargerThanWidth(159, SpaceMD),
	}

	densityConditions = []breakpoint.Condition[string]{
		breakpoint.SmallerThan("STANDARD", "compact"),
		breakpoint.Equals("STANDARD", "regular").Landscape("rotated"),
		breakpoint.LargerThan("STANDARD", "spacious").Landscape("rotated-wide"),
	}
)

// demoConditionNames lists every breakpoint name the demo conditions refer
// to, for the debug report's unknown-name diagnostics.
func demoConditionNames() []string {
	seen := map[string]bool{}
	var names []string
	collect := func(name string, ok bool) {
		if ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, c := range columnConditions {
		collect(c.Name())
	}
	for _, c := range densityConditions {
		collect(c.Name())
	}
	return names
}

// layoutFor resolves the demo layout from a snapshot. The zero state (no
// metrics yet) yields the single-column defaults.
func layoutFor(st breakpoint.State) paneLayout {
	if !st.Valid() {
		return paneLayout{columns: 1, gutter: SpaceXS, density: "compact"}
	}
	return paneLayout{
		columns:     breakpoint.Resolve(columnConditions, st, 1),
		gutter:      breakpoint.Resolve(gutterConditions, st, SpaceXS),
		showSidebar: st.LargerThan("COMPACT"),
		density:     breakpoint.Resolve(densityConditions, st, "compact"),
	}
}
