package ui

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
)

// DebugReport renders a plain-text summary of the current breakpoint state:
// the classified range, every range in the active set, and diagnostics for
// condition names that do not exist in the set. The same text is shown in
// the debug overlay and copied to the clipboard.
func DebugReport(st breakpoint.State, conditionNames []string) string {
	var b strings.Builder
	b.WriteString("breakpoint state\n")
	if !st.Valid() {
		b.WriteString("  (no metrics received yet)\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  metrics:     %.0fx%.0f (%s)\n", st.Width, st.Height, st.Orientation)
	fmt.Fprintf(&b, "  platform:    %s (landscape overrides %s)\n", st.Platform, enabledWord(st.LandscapeActive()))
	if st.ActiveRange.IsSentinel() {
		b.WriteString("  active:      none (sentinel)\n")
	} else {
		fmt.Fprintf(&b, "  active:      %s\n", st.ActiveRange)
	}

	b.WriteString("  ranges:\n")
	for _, r := range st.ActiveSet.Ranges() {
		marker := "   "
		if r.SameBounds(st.ActiveRange) {
			marker = " > "
		}
		fmt.Fprintf(&b, "  %s%s\n", marker, r)
	}

	if unknown := unknownNames(st.ActiveSet, conditionNames); len(unknown) > 0 {
		b.WriteString("  unmatched condition names:\n")
		for name, suggestion := range unknown {
			if suggestion != "" {
				fmt.Fprintf(&b, "    %s (did you mean %s?)\n", name, suggestion)
			} else {
				fmt.Fprintf(&b, "    %s\n", name)
			}
		}
	}
	return b.String()
}

func enabledWord(on bool) string {
	if on {
		return "active"
	}
	return "inactive"
}

// unknownNames maps each condition name missing from the set to its closest
// configured name, or "" when nothing comes close.
func unknownNames(set breakpoint.Set, conditionNames []string) map[string]string {
	configured := set.Names()
	var unknown map[string]string
	for _, name := range conditionNames {
		if _, ok := set.ByName(name); ok {
			continue
		}
		if unknown == nil {
			unknown = make(map[string]string)
		}
		suggestion := ""
		if matches := fuzzy.Find(name, configured); len(matches) > 0 {
			suggestion = configured[matches[0].Index]
		}
		unknown[name] = suggestion
	}
	return unknown
}
