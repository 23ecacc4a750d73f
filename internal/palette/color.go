package palette

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RGB represents a color with 8-bit red, green and blue components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the canonical upper-case "#RRGGBB" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// Components are kept at full precision so that converting back to RGB
// reproduces the original channels. JSON and CSS renderings round each
// component to a whole number:
//   - H: 0-359 degrees (0=red, 120=green, 240=blue)
//   - S: 0-100 percent (0=gray, 100=vivid)
//   - L: 0-100 percent (0=black, 50=normal, 100=white)
type HSL struct {
	H float64
	S float64
	L float64
}

// Rounded returns the whole-number hue, saturation and lightness.
// A hue that rounds up to 360 wraps to 0.
func (c HSL) Rounded() (h, s, l int) {
	h = int(roundHalfUp(c.H)) % 360
	s = int(roundHalfUp(c.S))
	l = int(roundHalfUp(c.L))
	return h, s, l
}

// MarshalJSON renders the rounded components as {"h":..,"s":..,"l":..}.
func (c HSL) MarshalJSON() ([]byte, error) {
	h, s, l := c.Rounded()
	return json.Marshal(struct {
		H int `json:"h"`
		S int `json:"s"`
		L int `json:"l"`
	}{h, s, l})
}

// HexToRGB parses a "#RRGGBB" color string (case-insensitive).
//
// The leading '#' is optional. Any other shape, including the 3-digit
// shorthand, returns an error wrapping ErrInvalidHexFormat.
func HexToRGB(hex string) (RGB, error) {
	digits := hex
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, hex)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, hex)
		}
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, hex)
	}
	return RGB{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, nil
}

// RGBToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Achromatic colors (max == min) have hue and saturation 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/d
	default:
		h = 4.0 + (rf-gf)/d
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to a "#RRGGBB" string.
//
// Hue is taken modulo 360 and saturation/lightness are clamped to [0,100]
// before conversion, so every input produces a color. Each channel is
// computed with the auxiliary function
//
//	a    = s * min(l, 1-l)
//	k(n) = (n + h/30) mod 12
//	f(n) = l - a * max(min(k-3, 9-k, 1), -1)
//
// for n = 0 (red), 8 (green) and 4 (blue), then scaled to 0-255 and rounded.
func HSLToHex(h, s, l float64) string {
	return hslToRGB(HSL{H: h, S: s, L: l}).Hex()
}

func hslToRGB(c HSL) RGB {
	h := wrapHue(c.H)
	s := clampPercent(c.S) / 100
	l := clampPercent(c.L) / 100
	a := s * math.Min(l, 1-l)

	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return channel(v)
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}

// Color is an immutable color value. The canonical form is the upper-case
// hex string; RGB and HSL are derived from it.
//
// Color implements image/color.Color so palettes can be drawn directly.
type Color struct {
	hex string
	rgb RGB
	hsl HSL
}

// ParseColor parses a "#RRGGBB" string into a Color.
func ParseColor(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

// MustParseColor is like ParseColor but panics on invalid input.
// It is intended for color literals.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Color from its RGB components.
func FromRGB(rgb RGB) Color {
	return Color{
		hex: rgb.Hex(),
		rgb: rgb,
		hsl: RGBToHSL(rgb.R, rgb.G, rgb.B),
	}
}

// FromHSL builds a Color from HSL. The hue is wrapped and saturation and
// lightness are clamped; the resulting HSL is re-derived from the rounded
// RGB so the value stays consistent with its hex form.
func FromHSL(hsl HSL) Color {
	return FromRGB(hslToRGB(hsl))
}

// Hex returns the canonical "#RRGGBB" form.
func (c Color) Hex() string { return c.hex }

// RGB returns the 8-bit components.
func (c Color) RGB() RGB { return c.rgb }

// HSL returns the full-precision HSL components.
func (c Color) HSL() HSL { return c.hsl }

// String implements fmt.Stringer.
func (c Color) String() string { return c.hex }

// CSSRGB renders the color as "rgb(r, g, b)".
func (c Color) CSSRGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.rgb.R, c.rgb.G, c.rgb.B)
}

// CSSHSL renders the color as "hsl(h, s%, l%)" with rounded components.
func (c Color) CSSHSL() string {
	h, s, l := c.hsl.Rounded()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.rgb.R)
	r |= r << 8
	g = uint32(c.rgb.G)
	g |= g << 8
	b = uint32(c.rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// MarshalJSON renders the color in all of its representations.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hex    string `json:"hex"`
		RGB    RGB    `json:"rgb"`
		HSL    HSL    `json:"hsl"`
		CSSRGB string `json:"css_rgb"`
		CSSHSL string `json:"css_hsl"`
	}{c.hex, c.rgb, c.hsl, c.CSSRGB(), c.CSSHSL()})
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// roundHalfUp rounds x to the nearest integer, with halves going up.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func channel(v float64) uint8 {
	x := roundHalfUp(255 * v)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
