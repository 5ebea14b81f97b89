package breakpoint

type condKind int

const (
	condEquals condKind = iota
	condBetween
	condLargerThan
	condSmallerThan
)

func (k condKind) String() string {
	switch k {
	case condEquals:
		return "equals"
	case condBetween:
		return "between"
	case condLargerThan:
		return "largerThan"
	default:
		return "smallerThan"
	}
}

// Condition pairs a predicate over the breakpoint state with the value
// selected when the predicate holds. Conditions are built only through the
// Equals/Between/LargerThan/SmallerThan constructors, so a condition can
// never carry fields that do not belong to its case.
type Condition[T any] struct {
	kind   condKind
	name   string
	start  float64
	end    float64
	bound  float64
	byName bool

	value        T
	landscape    T
	hasLandscape bool
}

// Equals matches when the active range carries the given name.
func Equals[T any](name string, value T) Condition[T] {
	return Condition[T]{kind: condEquals, name: name, byName: true, value: value}
}

// Between matches when the width lies inside the closed interval
// [start, end].
func Between[T any](start, end float64, value T) Condition[T] {
	return Condition[T]{kind: condBetween, start: start, end: end, value: value}
}

// LargerThan matches when the width lies beyond the end of the named range.
// A name unknown to the active set never matches.
func LargerThan[T any](name string, value T) Condition[T] {
	return Condition[T]{kind: condLargerThan, name: name, byName: true, value: value}
}

// LargerThanWidth matches when the width exceeds the given numeric bound.
func LargerThanWidth[T any](width float64, value T) Condition[T] {
	return Condition[T]{kind: condLargerThan, bound: width, value: value}
}

// SmallerThan matches when the width lies below the start of the named
// range. A name unknown to the active set never matches.
func SmallerThan[T any](name string, value T) Condition[T] {
	return Condition[T]{kind: condSmallerThan, name: name, byName: true, value: value}
}

// SmallerThanWidth matches when the width is below the given numeric bound.
func SmallerThanWidth[T any](width float64, value T) Condition[T] {
	return Condition[T]{kind: condSmallerThan, bound: width, value: value}
}

// Landscape attaches an alternate value used when the matched state is in
// landscape orientation on a landscape-eligible platform. Returns a copy.
func (c Condition[T]) Landscape(value T) Condition[T] {
	c.landscape = value
	c.hasLandscape = true
	return c
}

// Name returns the breakpoint name the condition refers to, if any.
func (c Condition[T]) Name() (string, bool) {
	return c.name, c.byName
}

func (c Condition[T]) needsContext() bool {
	return c.byName
}

func (c Condition[T]) matches(st State) bool {
	switch c.kind {
	case condEquals:
		return st.ActiveRange.Name == c.name
	case condBetween:
		return st.Width >= c.start && st.Width <= c.end
	case condLargerThan:
		if !c.byName {
			return st.Width > c.bound
		}
		r, ok := st.ActiveSet.ByName(c.name)
		if !ok {
			return false
		}
		return st.Width > r.End
	case condSmallerThan:
		if !c.byName {
			return st.Width < c.bound
		}
		r, ok := st.ActiveSet.ByName(c.name)
		if !ok {
			return false
		}
		return st.Width < r.Start
	}
	return false
}

func (c Condition[T]) pick(st State) T {
	if c.hasLandscape && st.LandscapeActive() {
		return c.landscape
	}
	return c.value
}

// Resolve evaluates the conditions against the state and returns the value
// of the first match, scanning in reverse declaration order: the last
// declared condition has the highest priority. This mirrors how overriding
// entries are appended to a shared condition list, and changing it would
// change observable resolution results.
//
// When no condition matches, def is returned. Passing a name-based
// condition while the state has no classification context is a
// misconfiguration that would otherwise silently resolve to def, so it
// panics instead.
func Resolve[T any](conditions []Condition[T], st State, def T) T {
	for _, c := range conditions {
		if c.needsContext() {
			st.requireContext(c.kind.String() + "(" + c.name + ") condition")
		}
	}
	for i := len(conditions) - 1; i >= 0; i-- {
		if conditions[i].matches(st) {
			return conditions[i].pick(st)
		}
	}
	return def
}
