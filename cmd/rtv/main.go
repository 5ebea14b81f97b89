package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
	"github.com/Dicklesworthstone/responsive_tui/pkg/export"
	"github.com/Dicklesworthstone/responsive_tui/pkg/store"
	"github.com/Dicklesworthstone/responsive_tui/pkg/ui"
	"github.com/Dicklesworthstone/responsive_tui/pkg/watcher"
)

const storePath = ".rtv/prompt.db"

func main() {
	configPath := flag.String("config", "", "Breakpoint profile YAML (watched for live reload)")
	platform := flag.String("platform", "", "Override the detected platform (ios|android|fuchsia|web|linux|macos|windows)")
	initProfile := flag.Bool("init", false, "Interactively create a starter profile and exit")
	exportSVG := flag.String("export-svg", "", "Write the profile as an SVG ruler diagram and exit")
	exportPNG := flag.String("export-png", "", "Write the profile as a PNG ruler diagram and exit")
	noStore := flag.Bool("no-store", false, "Disable visit/dismissal bookkeeping")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: rtv [options]")
		fmt.Println("\nA live viewer for responsive terminal breakpoints.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("rtv version 0.1.0")
		os.Exit(0)
	}

	if *initProfile {
		path := *configPath
		if path == "" {
			path = "breakpoints.yaml"
		}
		if err := runInit(path); err != nil {
			fmt.Printf("Error creating profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	profile := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading profile: %v\n", err)
			fmt.Println("Create one with 'rtv -init'.")
			os.Exit(1)
		}
		profile = loaded
	}

	if *platform != "" {
		p, err := breakpoint.ParsePlatform(*platform)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		profile.Platform = p
	}

	if *exportSVG != "" || *exportPNG != "" {
		if err := runExport(profile, *exportSVG, *exportPNG); err != nil {
			fmt.Printf("Error exporting: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	var prompts *store.Store
	if !*noStore {
		s, err := store.Open(storePath)
		if err != nil {
			log.Printf("bookkeeping disabled: %v", err)
		} else {
			prompts = s
			defer s.Close()
		}
	}

	m := ui.NewModel(profile, prompts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if *configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := watcher.Watch(ctx, *configPath, 0, func(prof config.Profile) {
				p.Send(ui.ProfileReloadedMsg{Profile: prof})
			})
			if err != nil && err != context.Canceled {
				log.Printf("config watch stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

// runExport renders the profile's ruler diagrams. When stdout is a
// terminal, its current width becomes the marker so the diagram shows where
// this very terminal would classify.
func runExport(profile config.Profile, svgPath, pngPath string) error {
	opts := export.RulerOptions{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Marker = float64(cols)
			opts.ShowMarker = true
		}
	}

	if svgPath != "" {
		if err := export.SaveRulerSVG(svgPath, profile.Primary, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", svgPath)
	}
	if pngPath != "" {
		if err := export.SaveRulerPNG(pngPath, profile.Primary, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", pngPath)
	}
	return nil
}
