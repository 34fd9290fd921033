package style

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	alpha := uint8(0xFF)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// Components returns the red, green, blue, alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float32) {
	cr, cg, cb, ca := c.Components()
	return float32(cr) / maxByte, float32(cg) / maxByte, float32(cb) / maxByte, float32(ca) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Lerp blends c towards o by t in [0, 1], in RGB space.
func (c Color) Lerp(o Color, t float32) Color {
	from, to := c.colorful(), o.colorful()
	r, g, b := from.BlendRgb(to, float64(t)).Clamped().RGB255()
	_, _, _, a0 := c.Components()
	_, _, _, a1 := o.Components()
	a := float32(a0) + (float32(a1)-float32(a0))*t
	return RGBA(r, g, b, uint8(a+0.5))
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as hex so snapshots stay readable.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: float64(r), G: float64(g), B: float64(b)}
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
