package breakpoint

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies the host platform reported to the engine. It gates
// whether landscape-specific breakpoints may activate: a desktop window
// resized wider than tall must not trip mobile-rotation breakpoints.
type Platform string

// Known platforms.
const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformFuchsia Platform = "fuchsia"
	PlatformWeb     Platform = "web"
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
)

// DefaultLandscapePlatforms lists the platforms on which physical rotation
// activates landscape breakpoints. Web and desktop are excluded.
func DefaultLandscapePlatforms() []Platform {
	return []Platform{PlatformIOS, PlatformAndroid, PlatformFuchsia}
}

// ParsePlatform converts a config string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformIOS:
		return PlatformIOS, nil
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformFuchsia:
		return PlatformFuchsia, nil
	case PlatformWeb:
		return PlatformWeb, nil
	case PlatformLinux:
		return PlatformLinux, nil
	case PlatformMacOS, "darwin":
		return PlatformMacOS, nil
	case PlatformWindows:
		return PlatformWindows, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// CurrentPlatform maps the running OS onto a Platform.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "android":
		return PlatformAndroid
	case "ios":
		return PlatformIOS
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	case "js", "wasip1":
		return PlatformWeb
	default:
		return PlatformLinux
	}
}

// In reports whether p is one of the given platforms.
func (p Platform) In(allowed []Platform) bool {
	for _, a := range allowed {
		if p == a {
			return true
		}
	}
	return false
}

// Orientation is derived from the metrics: landscape iff width > height.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// OrientationOf derives the orientation from raw metrics.
func OrientationOf(width, height float64) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// SelectActiveSet picks the breakpoint set to classify against. The
// landscape set is used only when one was supplied, the orientation is
// landscape, and the platform is in the allowed list. In every other case
// the primary set applies regardless of physical rotation.
func SelectActiveSet(primary Set, landscape *Set, orientation Orientation, platform Platform, allowed []Platform) Set {
	if landscape != nil && orientation == Landscape && platform.In(allowed) {
		return *landscape
	}
	return primary
}
