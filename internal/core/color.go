package core

import "fmt"

// Color is a packed 24-bit RGB foreground color for a screen cell.
// The zero value means "terminal default".
type Color uint32

const colorSet Color = 1 << 24

// Predefined colors for HUD and overlays.
const (
	ColorDefault Color = 0
	ColorWhite   Color = colorSet | 0xFFFFFF
	ColorGray    Color = colorSet | 0x8A8A8A
	ColorRed     Color = colorSet | 0xE05050
	ColorYellow  Color = colorSet | 0xF0D060
	ColorCyan    Color = colorSet | 0x60D0E0
)

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGBf builds a Color from float channels in [0, 1]. Values outside the
// range are clamped.
func RGBf(r, g, b float32) Color {
	return RGB(channel(r), channel(g), channel(b))
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the 8-bit red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Invert returns the RGB complement. The default color inverts to black.
func (c Color) Invert() Color {
	r, g, b := c.Channels()
	return RGB(255-r, 255-g, 255-b)
}

// Hex returns the "#rrggbb" form, or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
