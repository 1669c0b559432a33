// color.go
package scopeprefs

import (
	"fmt"
	"image/color"
)

// Color is the internal color payload: three 16-bit channels, red, green
// and blue. Rich external colors are reduced to this form at construction
// time and reconstructed on demand.
type Color struct {
	R, G, B uint16
}

// ColorFrom extracts the three channels from a rich external color.
// color.Color's RGBA accessors are already 16-bit scaled, so the
// conversion is lossless for opaque colors.
func ColorFrom(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint16(r), G: uint16(g), B: uint16(b)}
}

// External reconstructs a rich color from the stored channels.
// The alpha channel is fully opaque.
func (c Color) External() color.RGBA64 {
	return color.RGBA64{R: c.R, G: c.G, B: c.B, A: 0xFFFF}
}

// Hex renders the channels as a #rrrrggggbbbb triple, four hex digits per
// 16-bit channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%04x%04x%04x", c.R, c.G, c.B)
}
