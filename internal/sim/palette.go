package sim

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/gravwell/internal/dynamo"
)

// Palette picks a fully opaque color for a new particle.
type Palette func(rng *rand.Rand) dynamo.Color

// RandomPalette draws each of r, g and b uniformly from [0, 255].
func RandomPalette(rng *rand.Rand) dynamo.Color {
	return dynamo.Color{
		R: uint8(rng.UintN(256)),
		G: uint8(rng.UintN(256)),
		B: uint8(rng.UintN(256)),
		A: 0xff,
	}
}

// HuePalette draws a uniform hue at fixed saturation and value.
func HuePalette(saturation, value float64) Palette {
	return func(rng *rand.Rand) dynamo.Color {
		r, g, b := colorful.Hsv(rng.Float64()*360, saturation, value).Clamped().RGB255()
		return dynamo.Color{R: r, G: g, B: b, A: 0xff}
	}
}

var palettes = map[string]Palette{
	"random": RandomPalette,
	"hue":    HuePalette(0.85, 1.0),
	"pastel": HuePalette(0.35, 1.0),
}

func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("sim: unknown palette %q", name)
	}
	return p, nil
}

func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
