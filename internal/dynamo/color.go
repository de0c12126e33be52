package dynamo

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// ColorFromUint32 unpacks 0xRRGGBBAA. The high byte is red.
func ColorFromUint32(num uint32) Color {
	return Color{
		R: uint8(num >> 24),
		G: uint8(num >> 16),
		B: uint8(num >> 8),
		A: uint8(num),
	}
}

func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Tint replaces c with the per-channel average of c and other, rounded down.
func (c *Color) Tint(other Color) {
	c.R = uint8((uint16(c.R) + uint16(other.R)) / 2)
	c.G = uint8((uint16(c.G) + uint16(other.G)) / 2)
	c.B = uint8((uint16(c.B) + uint16(other.B)) / 2)
	c.A = uint8((uint16(c.A) + uint16(other.A)) / 2)
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 0xff
	return c
}

// Floats returns the channels normalized to [0, 1], for shader uniforms.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

var (
	White = Color{0xff, 0xff, 0xff, 0xff}
	Black = Color{0, 0, 0, 0xff}
)
