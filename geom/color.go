package geom

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
	Red   = Color{255, 0, 0, 255}
	Green = Color{0, 255, 0, 255}
	Blue  = Color{0, 0, 255, 255}
	Gray  = Color{128, 128, 128, 255}
)

// RGBA builds a color.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Uint32 packs the color as 0xAARRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorFromUint32 unpacks a 0xAARRGGBB value.
func ColorFromUint32(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
