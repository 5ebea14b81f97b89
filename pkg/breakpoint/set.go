package breakpoint

import "sort"

// Set is an ordered collection of ranges, kept sorted ascending by Start.
// Overlapping ranges are tolerated; classification resolves overlaps in
// favor of the earlier Start.
type Set struct {
	ranges []Range
}

// NewSet copies and sorts the given ranges into a Set. Sorting is stable so
// that ranges sharing a Start keep their declaration order.
func NewSet(ranges ...Range) Set {
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Start < rs[j].Start
	})
	return Set{ranges: rs}
}

// Ranges returns the sorted ranges. The slice is a copy; a Set never
// changes after construction.
func (s Set) Ranges() []Range {
	rs := make([]Range, len(s.ranges))
	copy(rs, s.ranges)
	return rs
}

// Len returns the number of ranges in the set.
func (s Set) Len() int {
	return len(s.ranges)
}

// ByName returns the first range with the given name.
func (s Set) ByName(name string) (Range, bool) {
	if name == "" {
		return Range{}, false
	}
	for _, r := range s.ranges {
		if r.Name == name {
			return r, true
		}
	}
	return Range{}, false
}

// Names returns the names of all named ranges in sorted order.
func (s Set) Names() []string {
	var names []string
	for _, r := range s.ranges {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}

// Classify maps a width to the first range, in ascending Start order, whose
// closed interval contains it. When two ranges overlap at the width, the one
// with the smaller Start wins. Returns the sentinel range when nothing
// matches.
func Classify(width float64, s Set) Range {
	for _, r := range s.ranges {
		if r.Contains(width) {
			return r
		}
	}
	return Sentinel()
}
