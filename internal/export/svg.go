package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/render"
	"github.com/san-kum/gravwell/internal/viz"
)

const DefaultBackground = "#0a0a0a"

// SVGFrame renders simulation frames into an SVG document. It satisfies the
// same frame-renderer contract as the GPU renderer, so a simulation can be
// pointed at it for one Render call and the result written to disk.
type SVGFrame struct {
	width, height uint32
	Background    string
	tint          dynamo.Color

	body   strings.Builder
	trails int
}

func NewSVGFrame(width, height uint32) *SVGFrame {
	return &SVGFrame{
		width:      width,
		height:     height,
		Background: DefaultBackground,
		tint:       render.DefaultSelectionTint,
	}
}

func (f *SVGFrame) SetSelectionTint(c dynamo.Color) { f.tint = c }

// ClearScreen drops everything drawn so far and paints the background.
func (f *SVGFrame) ClearScreen() {
	f.body.Reset()
	fmt.Fprintf(&f.body, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", f.Background)
}

// RenderParticles draws each trail with a gradient from the opaque particle
// color at its head to full transparency at its tail, as the GPU renderer
// does.
func (f *SVGFrame) RenderParticles(particles []dynamo.Particle, trailScale float64) {
	if len(particles) == 0 {
		return
	}
	f.body.WriteString("<g stroke-width=\"1\" stroke-linecap=\"round\">\n")
	for _, p := range particles {
		from, to := p.Trail(trailScale)
		id := fmt.Sprintf("t%d", f.trails)
		f.trails++

		c := hexColor(p.Color)
		fmt.Fprintf(&f.body, "<linearGradient id=\"%s\" gradientUnits=\"userSpaceOnUse\" x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\">", id, from.X, from.Y, to.X, to.Y)
		fmt.Fprintf(&f.body, "<stop offset=\"0\" stop-color=\"%s\"/><stop offset=\"1\" stop-color=\"%s\" stop-opacity=\"0\"/></linearGradient>\n", c, c)
		fmt.Fprintf(&f.body, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"url(#%s)\"/>\n",
			from.X, from.Y, to.X, to.Y, id)
	}
	f.body.WriteString("</g>\n")
}

// RenderGravityWells draws each well as a ring with a spoke at its rotation.
// Selected wells are drawn in white tinted by the selection color.
func (f *SVGFrame) RenderGravityWells(wells []dynamo.GravityWell) {
	for _, w := range wells {
		c := dynamo.White
		if w.IsSelected {
			c.Tint(f.tint)
		}
		a := w.RotationDeg * math.Pi / 180
		ex := w.Pos.X + dynamo.WellRadius*math.Cos(a)
		ey := w.Pos.Y + dynamo.WellRadius*math.Sin(a)

		fmt.Fprintf(&f.body, "<g stroke=\"%s\" stroke-width=\"2\" fill=\"none\">\n", hexColor(c))
		fmt.Fprintf(&f.body, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.0f\"/>\n", w.Pos.X, w.Pos.Y, dynamo.WellRadius)
		fmt.Fprintf(&f.body, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", w.Pos.X, w.Pos.Y, ex, ey)
		f.body.WriteString("</g>\n")
	}
}

// ResetParticles is a no-op: nothing is cached between frames.
func (f *SVGFrame) ResetParticles() {}

func (f *SVGFrame) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, f.width, f.height, f.width, f.height)
	sb.WriteString(f.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (f *SVGFrame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

func hexColor(c dynamo.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CanvasToSVG converts a braille canvas to SVG, one circle per set dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.DotWidth()) * scale
	height := float64(canvas.DotHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, DefaultBackground, fill)

	r := scale * 0.4
	for y := 0; y < canvas.DotHeight(); y++ {
		for x := 0; x < canvas.DotWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// SeriesToSVG plots values as a polyline, padded by 10% of the value range.
// It returns "" for fewer than two values.
func SeriesToSVG(values []float64, width, height int, stroke string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	hi += span * 0.1
	span = hi - lo

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, DefaultBackground, stroke)

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}

	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
