package export

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
)

// SaveRulerPNG renders the ruler diagram to a PNG file. Same geometry as
// the SVG variant.
func SaveRulerPNG(path string, set breakpoint.Set, opts RulerOptions) error {
	if set.Len() == 0 {
		return fmt.Errorf("empty breakpoint set")
	}
	o := opts.withDefaults()
	ranges := set.Ranges()
	max := extent(set, o)
	height := axisHeight + len(ranges)*(o.RowHeight+rowGap) + rulerMargin

	scale := func(v float64) float64 {
		return rulerMargin + v/max*float64(o.Width-2*rulerMargin)
	}

	dc := gg.NewContext(o.Width, height)
	dc.SetHexColor("#f8f8f2")
	dc.Clear()

	face, err := rulerFace(12)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	axisY := float64(height - rulerMargin/2)
	dc.SetHexColor(barStroke)
	dc.SetLineWidth(1)
	dc.DrawLine(scale(0), axisY, scale(max), axisY)
	dc.Stroke()
	dc.SetHexColor(labelFill)
	dc.DrawString("0", scale(0), axisY+14)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f", max), scale(max), axisY+14, 1, 0)

	for i, r := range ranges {
		y := float64(axisHeight + i*(o.RowHeight+rowGap))
		x0, x1 := scale(r.Start), scale(r.End)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		dc.SetRGBA(0.74, 0.58, 0.98, 0.6)
		dc.DrawRectangle(x0, y, x1-x0, float64(o.RowHeight))
		dc.Fill()
		dc.SetHexColor(barStroke)
		dc.DrawRectangle(x0, y, x1-x0, float64(o.RowHeight))
		dc.Stroke()
		dc.SetHexColor(labelFill)
		dc.DrawString(r.String(), x0+4, y+float64(o.RowHeight)-9)
	}

	if o.ShowMarker {
		x := scale(o.Marker)
		dc.SetHexColor(markerStroke)
		dc.SetLineWidth(2)
		dc.DrawLine(x, float64(axisHeight)/2, x, axisY)
		dc.Stroke()
		dc.DrawString(fmt.Sprintf("%.0f", o.Marker), x+4, float64(axisHeight)/2+10)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func rulerFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}
