package breakpoint

import "testing"

func testSet() Set {
	return NewSet(
		MustRange(0, 450, "MOBILE"),
		MustRange(451, 800, "TABLET"),
		MustRange(801, 1920, "DESKTOP"),
	)
}

func portraitState(width float64) State {
	return NewState(width, width+200, testSet(), nil, PlatformAndroid, DefaultLandscapePlatforms())
}

func TestResolve_LastDeclaredWins(t *testing.T) {
	st := portraitState(300)
	got := Resolve([]Condition[int]{
		Equals("MOBILE", 8),
		Equals("MOBILE", 16),
	}, st, 0)
	if got != 16 {
		t.Errorf("got %d, want 16 (later declaration wins)", got)
	}
}

func TestResolve_FallsThroughToDefault(t *testing.T) {
	st := portraitState(300)
	got := Resolve([]Condition[string]{
		Equals("DESKTOP", "wide"),
		Between[string](900, 1200, "huge"),
	}, st, "base")
	if got != "base" {
		t.Errorf("got %q, want default", got)
	}
}

func TestResolve_BetweenUsesWidth(t *testing.T) {
	st := portraitState(460)
	got := Resolve([]Condition[int]{
		Between(0, 450, 1),
		Between(451, 800, 2),
	}, st, 0)
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestResolve_LargerSmallerBounds(t *testing.T) {
	st := portraitState(801)
	if got := Resolve([]Condition[int]{LargerThan("TABLET", 5)}, st, 0); got != 5 {
		t.Errorf("width 801 is larger than TABLET end 800: got %d", got)
	}
	st = portraitState(800)
	if got := Resolve([]Condition[int]{LargerThan("TABLET", 5)}, st, 0); got != 0 {
		t.Errorf("width 800 is not larger than TABLET end 800: got %d", got)
	}
	st = portraitState(450)
	if got := Resolve([]Condition[int]{SmallerThan("TABLET", 7)}, st, 0); got != 7 {
		t.Errorf("width 450 is smaller than TABLET start 451: got %d", got)
	}
	st = portraitState(451)
	if got := Resolve([]Condition[int]{SmallerThan("TABLET", 7)}, st, 0); got != 0 {
		t.Errorf("width 451 is not smaller than TABLET start 451: got %d", got)
	}
}

func TestResolve_NumericBounds(t *testing.T) {
	st := portraitState(500)
	if got := Resolve([]Condition[int]{LargerThanWidth(499, 1)}, st, 0); got != 1 {
		t.Errorf("largerThan 499 at width 500: got %d", got)
	}
	if got := Resolve([]Condition[int]{SmallerThanWidth(501, 2)}, st, 0); got != 2 {
		t.Errorf("smallerThan 501 at width 500: got %d", got)
	}
	if got := Resolve([]Condition[int]{LargerThanWidth(500, 1)}, st, 0); got != 0 {
		t.Errorf("largerThan 500 at width 500 must not match: got %d", got)
	}
}

func TestResolve_UnknownNameNeverMatches(t *testing.T) {
	st := portraitState(300)
	got := Resolve([]Condition[int]{
		SmallerThan("GIGANTIC", 1),
		LargerThan("MICROSCOPIC", 2),
	}, st, 42)
	if got != 42 {
		t.Errorf("unknown names must fall through to default, got %d", got)
	}
}

func TestResolve_LandscapeOverride(t *testing.T) {
	set := testSet()
	cond := []Condition[int]{Equals("MOBILE", 8).Landscape(12)}

	portrait := NewState(300, 500, set, nil, PlatformAndroid, DefaultLandscapePlatforms())
	if got := Resolve(cond, portrait, 0); got != 8 {
		t.Errorf("portrait: got %d, want 8", got)
	}

	landscape := NewState(400, 300, set, nil, PlatformAndroid, DefaultLandscapePlatforms())
	if got := Resolve(cond, landscape, 0); got != 12 {
		t.Errorf("eligible landscape: got %d, want 12", got)
	}

	desktop := NewState(400, 300, set, nil, PlatformLinux, DefaultLandscapePlatforms())
	if got := Resolve(cond, desktop, 0); got != 8 {
		t.Errorf("ineligible platform in physical landscape: got %d, want 8", got)
	}
}

func TestResolve_LandscapeWithoutOverrideKeepsValue(t *testing.T) {
	set := testSet()
	landscape := NewState(400, 300, set, nil, PlatformIOS, DefaultLandscapePlatforms())
	got := Resolve([]Condition[int]{Equals("MOBILE", 8)}, landscape, 0)
	if got != 8 {
		t.Errorf("no landscape value declared: got %d, want 8", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	st := portraitState(620)
	conds := []Condition[int]{
		SmallerThan("DESKTOP", 2),
		Equals("TABLET", 3),
		Between(600, 700, 4),
	}
	first := Resolve(conds, st, -1)
	second := Resolve(conds, st, -1)
	if first != second {
		t.Errorf("resolve is not idempotent: %d then %d", first, second)
	}
	if first != 4 {
		t.Errorf("got %d, want 4 (last declared match)", first)
	}
}

func TestResolve_PanicsWithoutContext(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("name-based condition without classification context must panic")
		}
	}()
	Resolve([]Condition[int]{Equals("MOBILE", 8)}, State{}, 0)
}

func TestResolve_NumericConditionsWorkWithoutContext(t *testing.T) {
	// Width-only conditions carry their own bounds; they do not need a
	// configured set and must not panic on the zero state.
	got := Resolve([]Condition[int]{SmallerThanWidth(100, 9)}, State{}, 1)
	if got != 9 {
		t.Errorf("got %d, want 9 (zero width is smaller than 100)", got)
	}
}
