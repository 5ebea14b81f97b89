// Package config loads breakpoint profiles from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
	"github.com/Dicklesworthstone/responsive_tui/pkg/tracker"
)

// Profile is a fully validated breakpoint configuration.
type Profile struct {
	Primary            breakpoint.Set
	Landscape          *breakpoint.Set
	Platform           breakpoint.Platform
	LandscapePlatforms []breakpoint.Platform
}

type rangeYAML struct {
	Name  string  `yaml:"name,omitempty"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type profileYAML struct {
	Platform           string      `yaml:"platform,omitempty"`
	LandscapePlatforms []string    `yaml:"landscape_platforms,omitempty"`
	Breakpoints        []rangeYAML `yaml:"breakpoints"`
	Landscape          []rangeYAML `yaml:"landscape,omitempty"`
}

// Load reads and validates a profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse validates raw YAML into a Profile. Inverted ranges are rejected
// here, at configuration time, so classification never sees them.
func Parse(data []byte) (Profile, error) {
	var raw profileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if len(raw.Breakpoints) == 0 {
		return Profile{}, fmt.Errorf("profile declares no breakpoints")
	}

	primary, err := toSet(raw.Breakpoints)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Primary:            primary,
		Platform:           breakpoint.CurrentPlatform(),
		LandscapePlatforms: breakpoint.DefaultLandscapePlatforms(),
	}

	if len(raw.Landscape) > 0 {
		land, err := toSet(raw.Landscape)
		if err != nil {
			return Profile{}, fmt.Errorf("landscape: %w", err)
		}
		p.Landscape = &land
	}

	if raw.Platform != "" {
		platform, err := breakpoint.ParsePlatform(raw.Platform)
		if err != nil {
			return Profile{}, err
		}
		p.Platform = platform
	}

	if len(raw.LandscapePlatforms) > 0 {
		allowed := make([]breakpoint.Platform, 0, len(raw.LandscapePlatforms))
		for _, s := range raw.LandscapePlatforms {
			platform, err := breakpoint.ParsePlatform(s)
			if err != nil {
				return Profile{}, fmt.Errorf("landscape_platforms: %w", err)
			}
			allowed = append(allowed, platform)
		}
		p.LandscapePlatforms = allowed
	}

	return p, nil
}

func toSet(raws []rangeYAML) (breakpoint.Set, error) {
	ranges := make([]breakpoint.Range, 0, len(raws))
	for _, r := range raws {
		br, err := breakpoint.NewRange(r.Start, r.End, r.Name)
		if err != nil {
			return breakpoint.Set{}, err
		}
		ranges = append(ranges, br)
	}
	return breakpoint.NewSet(ranges...), nil
}

// Default returns the built-in profile used when no config file exists:
// classic terminal width classes.
func Default() Profile {
	return Profile{
		Primary: breakpoint.NewSet(
			breakpoint.MustRange(0, 79, "COMPACT"),
			breakpoint.MustRange(80, 119, "STANDARD"),
			breakpoint.MustRange(120, 159, "WIDE"),
			breakpoint.MustRange(160, 10000, "ULTRAWIDE"),
		),
		Platform:           breakpoint.CurrentPlatform(),
		LandscapePlatforms: breakpoint.DefaultLandscapePlatforms(),
	}
}

// NewTracker builds a tracker from the profile.
func (p Profile) NewTracker() *tracker.Tracker {
	opts := []tracker.Option{
		tracker.WithPlatform(p.Platform),
		tracker.WithLandscapePlatforms(p.LandscapePlatforms...),
	}
	if p.Landscape != nil {
		opts = append(opts, tracker.WithLandscapeSet(*p.Landscape))
	}
	return tracker.New(p.Primary, opts...)
}

// Write serializes the profile back to YAML at path, used by the init flow.
func (p Profile) Write(path string) error {
	raw := profileYAML{Platform: string(p.Platform)}
	for _, platform := range p.LandscapePlatforms {
		raw.LandscapePlatforms = append(raw.LandscapePlatforms, string(platform))
	}
	for _, r := range p.Primary.Ranges() {
		raw.Breakpoints = append(raw.Breakpoints, rangeYAML{Name: r.Name, Start: r.Start, End: r.End})
	}
	if p.Landscape != nil {
		for _, r := range p.Landscape.Ranges() {
			raw.Landscape = append(raw.Landscape, rangeYAML{Name: r.Name, Start: r.Start, End: r.End})
		}
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
