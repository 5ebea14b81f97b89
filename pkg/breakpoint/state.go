package breakpoint

import "fmt"

// State is an immutable snapshot of the current classification. A new State
// is published wholesale whenever the metrics change; it is never mutated in
// place, so readers holding an old snapshot stay consistent.
//
// The zero State means "no classification context": name-based queries and
// conditions against it are a programming error and panic.
type State struct {
	Width       float64
	Height      float64
	ActiveRange Range
	ActiveSet   Set
	Orientation Orientation
	Platform    Platform

	valid            bool
	landscapeEnabled bool
}

// NewState classifies the metrics against the set chosen by
// SelectActiveSet and returns the resulting snapshot.
func NewState(width, height float64, primary Set, landscape *Set, platform Platform, allowedLandscape []Platform) State {
	orientation := OrientationOf(width, height)
	active := SelectActiveSet(primary, landscape, orientation, platform, allowedLandscape)
	return State{
		Width:            width,
		Height:           height,
		ActiveRange:      Classify(width, active),
		ActiveSet:        active,
		Orientation:      orientation,
		Platform:         platform,
		valid:            true,
		landscapeEnabled: platform.In(allowedLandscape),
	}
}

// Valid reports whether the snapshot came from a configured classification
// context. The zero State is not valid.
func (s State) Valid() bool {
	return s.valid
}

// LandscapeActive reports whether landscape value overrides apply: the
// orientation is landscape and the platform is landscape-eligible.
func (s State) LandscapeActive() bool {
	return s.valid && s.Orientation == Landscape && s.landscapeEnabled
}

// Equal compares snapshots by width, height and active range. The active
// set reference and platform do not participate, matching the notion that
// two states rendering identically are the same state.
func (s State) Equal(other State) bool {
	return s.Width == other.Width &&
		s.Height == other.Height &&
		s.ActiveRange.SameBounds(other.ActiveRange)
}

func (s State) String() string {
	return fmt.Sprintf("%vx%v %s %s", s.Width, s.Height, s.ActiveRange, s.Orientation)
}

func (s State) requireContext(op string) {
	if !s.valid {
		panic("breakpoint: " + op + " evaluated without a classification context; construct the state via NewState or a tracker before using name-based queries")
	}
}

// Is reports whether the active range carries the given name.
func (s State) Is(name string) bool {
	s.requireContext("Is(" + name + ")")
	return s.ActiveRange.Name == name
}

// LargerThan reports whether the width lies beyond the named range's end.
// Unknown names never match.
func (s State) LargerThan(name string) bool {
	s.requireContext("LargerThan(" + name + ")")
	r, ok := s.ActiveSet.ByName(name)
	if !ok {
		return false
	}
	return s.Width > r.End
}

// LargerOrEqualTo reports whether the active range is the named one or the
// width lies beyond it.
func (s State) LargerOrEqualTo(name string) bool {
	return s.Is(name) || s.LargerThan(name)
}

// SmallerThan reports whether the width lies below the named range's start.
// Unknown names never match.
func (s State) SmallerThan(name string) bool {
	s.requireContext("SmallerThan(" + name + ")")
	r, ok := s.ActiveSet.ByName(name)
	if !ok {
		return false
	}
	return s.Width < r.Start
}

// SmallerOrEqualTo reports whether the active range is the named one or the
// width lies below it.
func (s State) SmallerOrEqualTo(name string) bool {
	return s.Is(name) || s.SmallerThan(name)
}

// Between reports whether the width lies inside [start of nameA, end of
// nameB]. It never matches when either name is unknown.
func (s State) Between(nameA, nameB string) bool {
	s.requireContext("Between(" + nameA + "," + nameB + ")")
	lo, okA := s.ActiveSet.ByName(nameA)
	hi, okB := s.ActiveSet.ByName(nameB)
	if !okA || !okB {
		return false
	}
	return s.Width >= lo.Start && s.Width <= hi.End
}
