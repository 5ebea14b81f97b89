package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
)

const sampleProfile = `
platform: android
landscape_platforms: [ios, android]
breakpoints:
  - name: MOBILE
    start: 0
    end: 450
  - name: TABLET
    start: 451
    end: 800
landscape:
  - name: MOBILE_WIDE
    start: 0
    end: 800
`

func TestParse_FullProfile(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Primary.Len() != 2 {
		t.Errorf("expected 2 primary ranges, got %d", p.Primary.Len())
	}
	if p.Platform != breakpoint.PlatformAndroid {
		t.Errorf("platform: got %q", p.Platform)
	}
	if len(p.LandscapePlatforms) != 2 {
		t.Errorf("landscape_platforms: got %v", p.LandscapePlatforms)
	}
	if p.Landscape == nil || p.Landscape.Len() != 1 {
		t.Error("landscape set should carry 1 range")
	}
	if r, ok := p.Primary.ByName("TABLET"); !ok || r.Start != 451 {
		t.Errorf("TABLET lookup: %v %v", r, ok)
	}
}

func TestParse_RejectsInvertedRange(t *testing.T) {
	_, err := Parse([]byte(`
breakpoints:
  - name: BAD
    start: 800
    end: 450
`))
	if err == nil {
		t.Fatal("inverted range must be rejected at parse time")
	}
}

func TestParse_RejectsEmptyAndUnknownPlatform(t *testing.T) {
	if _, err := Parse([]byte(`breakpoints: []`)); err == nil {
		t.Error("empty breakpoint list must be rejected")
	}
	if _, err := Parse([]byte("platform: amiga\nbreakpoints:\n  - {name: A, start: 0, end: 10}\n")); err == nil {
		t.Error("unknown platform must be rejected")
	}
}

func TestDefault_CoversCommonTerminalWidths(t *testing.T) {
	p := Default()
	cases := map[float64]string{
		79:  "COMPACT",
		80:  "STANDARD",
		120: "WIDE",
		200: "ULTRAWIDE",
	}
	for w, want := range cases {
		if got := breakpoint.Classify(w, p.Primary); got.Name != want {
			t.Errorf("width %v: got %q, want %q", w, got.Name, want)
		}
	}
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := p.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Primary.Len() != p.Primary.Len() || loaded.Platform != p.Platform {
		t.Errorf("round trip changed the profile: %+v vs %+v", loaded, p)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "definitely-not-there.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProfile_NewTracker(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tr := p.NewTracker()
	tr.SetMetrics(640, 360)
	if got := tr.State().ActiveRange.Name; got != "MOBILE_WIDE" {
		t.Errorf("android landscape should classify against the landscape set, got %q", got)
	}
}
