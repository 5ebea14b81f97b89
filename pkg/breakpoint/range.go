// Package breakpoint classifies screen sizes into named width ranges and
// resolves typed values from ordered condition lists against the active
// classification.
package breakpoint

import "fmt"

// Range is a closed interval of screen widths. Both bounds are inclusive.
// Name is optional ("" means unnamed) and Data carries an arbitrary payload
// for callers that want to attach layout hints to a range.
type Range struct {
	Start float64
	End   float64
	Name  string
	Data  any
}

// NewRange builds a Range, rejecting inverted bounds up front so that
// classification never has to deal with them.
func NewRange(start, end float64, name string) (Range, error) {
	if start > end {
		return Range{}, fmt.Errorf("breakpoint range %q: start %v exceeds end %v", name, start, end)
	}
	return Range{Start: start, End: end, Name: name}, nil
}

// MustRange is NewRange for static configuration; it panics on inverted
// bounds.
func MustRange(start, end float64, name string) Range {
	r, err := NewRange(start, end, name)
	if err != nil {
		panic(err)
	}
	return r
}

// Sentinel is the placeholder range reported when no configured range
// contains the current width.
func Sentinel() Range {
	return Range{}
}

// IsSentinel reports whether r is the no-match placeholder.
func (r Range) IsSentinel() bool {
	return r.Start == 0 && r.End == 0 && r.Name == ""
}

// Contains reports whether w falls inside the closed interval.
func (r Range) Contains(w float64) bool {
	return w >= r.Start && w <= r.End
}

// Overlaps reports whether the two ranges share any width.
func (r Range) Overlaps(other Range) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// SameBounds reports whether two ranges describe the same interval and name.
// Data is deliberately ignored; it is an opaque payload.
func (r Range) SameBounds(other Range) bool {
	return r.Start == other.Start && r.End == other.End && r.Name == other.Name
}

func (r Range) String() string {
	if r.Name == "" {
		return fmt.Sprintf("[%v-%v]", r.Start, r.End)
	}
	return fmt.Sprintf("%s[%v-%v]", r.Name, r.Start, r.End)
}
