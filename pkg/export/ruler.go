// Package export renders breakpoint sets as ruler diagrams, for debugging a
// profile outside the terminal: each range becomes a labelled bar on a
// shared width axis, with an optional marker for the current screen width.
package export

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/floats"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
)

// RulerOptions controls diagram geometry.
type RulerOptions struct {
	// Width is the diagram width in pixels. Zero selects 800.
	Width int
	// RowHeight is the per-range bar height in pixels. Zero selects 28.
	RowHeight int
	// Marker, when ShowMarker is set, draws a vertical line at the given
	// screen width (the currently classified width).
	Marker     float64
	ShowMarker bool
}

const (
	rulerMargin  = 40
	axisHeight   = 30
	rowGap       = 8
	minExtent    = 1
	barFill      = "#bd93f9"
	barStroke    = "#6272a4"
	markerStroke = "#ff5555"
	labelFill    = "#282a36"
)

func (o RulerOptions) withDefaults() RulerOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.RowHeight <= 0 {
		o.RowHeight = 28
	}
	return o
}

// extent computes the axis upper bound: the largest range end, stretched to
// include the marker when one is shown.
func extent(set breakpoint.Set, o RulerOptions) float64 {
	ends := []float64{minExtent}
	for _, r := range set.Ranges() {
		ends = append(ends, r.End)
	}
	if o.ShowMarker {
		ends = append(ends, o.Marker)
	}
	return floats.Max(ends)
}

// WriteRulerSVG writes an SVG ruler of the set to w.
func WriteRulerSVG(w io.Writer, set breakpoint.Set, opts RulerOptions) error {
	if set.Len() == 0 {
		return fmt.Errorf("empty breakpoint set")
	}
	o := opts.withDefaults()
	ranges := set.Ranges()
	max := extent(set, o)
	height := axisHeight + len(ranges)*(o.RowHeight+rowGap) + rulerMargin

	scale := func(v float64) int {
		return rulerMargin + int(v/max*float64(o.Width-2*rulerMargin))
	}

	canvas := svg.New(w)
	canvas.Start(o.Width, height)
	canvas.Rect(0, 0, o.Width, height, "fill:#f8f8f2")

	// Axis line and end labels.
	axisY := height - rulerMargin/2
	canvas.Line(scale(0), axisY, scale(max), axisY, "stroke:"+barStroke+";stroke-width:1")
	canvas.Text(scale(0), axisY+14, "0", "font-size:11px;fill:"+labelFill)
	canvas.Text(scale(max), axisY+14, fmt.Sprintf("%.0f", max), "font-size:11px;fill:"+labelFill+";text-anchor:end")

	for i, r := range ranges {
		y := axisHeight + i*(o.RowHeight+rowGap)
		x0, x1 := scale(r.Start), scale(r.End)
		if x1 <= x0 {
			x1 = x0 + 1 // degenerate single-width range stays visible
		}
		canvas.Rect(x0, y, x1-x0, o.RowHeight,
			"fill:"+barFill+";fill-opacity:0.6;stroke:"+barStroke)
		label := r.String()
		canvas.Text(x0+4, y+o.RowHeight-9, label, "font-size:12px;fill:"+labelFill)
	}

	if o.ShowMarker {
		x := scale(o.Marker)
		canvas.Line(x, axisHeight/2, x, axisY, "stroke:"+markerStroke+";stroke-width:2")
		canvas.Text(x+4, axisHeight/2+10, fmt.Sprintf("%.0f", o.Marker), "font-size:11px;fill:"+markerStroke)
	}

	canvas.End()
	return nil
}

// SaveRulerSVG writes the SVG ruler to a file.
func SaveRulerSVG(path string, set breakpoint.Set, opts RulerOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteRulerSVG(f, set, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
