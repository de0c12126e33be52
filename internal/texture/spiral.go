package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/gravwell/internal/render"
)

// Spiral draws a size x size swirl that fades to transparent at the rim.
// inner and outer are the colors at the center and the edge of the arms.
func Spiral(size, arms int, inner, outer colorful.Color) render.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	radius := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			r := math.Hypot(dx, dy) / radius
			if r > 1 {
				continue
			}

			theta := math.Atan2(dy, dx)
			arm := 0.5 + 0.5*math.Cos(float64(arms)*theta-r*4*math.Pi)
			alpha := (1 - r) * (0.35 + 0.65*arm)

			col := inner.BlendLab(outer, r).Clamped()
			cr, cg, cb := col.RGB255()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(cr) * alpha),
				G: uint8(float64(cg) * alpha),
				B: uint8(float64(cb) * alpha),
				A: uint8(255 * alpha),
			})
		}
	}
	return FromRGBA(img)
}

// DefaultSpiral is the well texture used when none is configured.
func DefaultSpiral() render.Image {
	inner, _ := colorful.Hex("#fff4d6")
	outer, _ := colorful.Hex("#3a5bff")
	return Spiral(64, 3, inner, outer)
}
