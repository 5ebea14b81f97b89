package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
)

// runInit walks the user through a starter profile and writes it to path.
func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	preset := "terminal"
	includeLandscape := false
	platform := string(breakpoint.CurrentPlatform())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Base profile").
				Options(
					huh.NewOption("Terminal widths (80 / 120 / 160 columns)", "terminal"),
					huh.NewOption("Device widths (450 / 800 / 1920 units)", "device"),
				).
				Value(&preset),
			huh.NewSelect[string]().
				Title("Platform").
				Options(
					huh.NewOption("Detected ("+platform+")", platform),
					huh.NewOption("ios", "ios"),
					huh.NewOption("android", "android"),
					huh.NewOption("fuchsia", "fuchsia"),
					huh.NewOption("web", "web"),
				).
				Value(&platform),
			huh.NewConfirm().
				Title("Include a landscape set?").
				Description("Used only in landscape orientation on eligible platforms.").
				Value(&includeLandscape),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("init form: %w", err)
	}

	profile := presetProfile(preset, includeLandscape)
	p, err := breakpoint.ParsePlatform(platform)
	if err != nil {
		return err
	}
	profile.Platform = p

	return profile.Write(path)
}

func presetProfile(preset string, includeLandscape bool) config.Profile {
	if preset == "device" {
		profile := config.Profile{
			Primary: breakpoint.NewSet(
				breakpoint.MustRange(0, 450, "MOBILE"),
				breakpoint.MustRange(451, 800, "TABLET"),
				breakpoint.MustRange(801, 1920, "DESKTOP"),
			),
			Platform:           breakpoint.CurrentPlatform(),
			LandscapePlatforms: breakpoint.DefaultLandscapePlatforms(),
		}
		if includeLandscape {
			land := breakpoint.NewSet(
				breakpoint.MustRange(0, 800, "MOBILE_WIDE"),
				breakpoint.MustRange(801, 1920, "TABLET_WIDE"),
			)
			profile.Landscape = &land
		}
		return profile
	}

	profile := config.Default()
	if includeLandscape {
		land := breakpoint.NewSet(
			breakpoint.MustRange(0, 119, "SHORT_WIDE"),
			breakpoint.MustRange(120, 10000, "FULL_WIDE"),
		)
		profile.Landscape = &land
	}
	return profile
}
