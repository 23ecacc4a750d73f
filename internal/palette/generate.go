package palette

import (
	"fmt"
	"math"
)

// Default bounds applied to the shifted shades of a Monochromatic palette.
const (
	DefaultMonoMinLightness = 10
	DefaultMonoMaxLightness = 90
)

// DefaultBaseColor is the base color used when none is supplied.
const DefaultBaseColor = "#00FF41"

// Palette is an ordered set of colors produced from one base color by one
// scheme, or sampled from an image.
type Palette struct {
	Name   string  `json:"name"`
	Scheme string  `json:"scheme,omitempty"`
	Base   string  `json:"base,omitempty"`
	Colors []Color `json:"colors"`
}

// Hexes returns the hex form of every color in order.
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

// Generator derives palettes from a base color.
//
// The zero value is not useful; use NewGenerator.
type Generator struct {
	// MonoMinLightness is the floor for darker Monochromatic shades.
	MonoMinLightness float64

	// MonoMaxLightness is the ceiling for lighter Monochromatic shades.
	MonoMaxLightness float64
}

// NewGenerator returns a Generator with the default Monochromatic bounds.
func NewGenerator() *Generator {
	return &Generator{
		MonoMinLightness: DefaultMonoMinLightness,
		MonoMaxLightness: DefaultMonoMaxLightness,
	}
}

// Validate checks that the lightness bounds are ordered and within [0,100].
func (g *Generator) Validate() error {
	if g.MonoMinLightness < 0 || g.MonoMaxLightness > 100 {
		return fmt.Errorf("monochromatic lightness bounds must be within 0-100, got %v-%v",
			g.MonoMinLightness, g.MonoMaxLightness)
	}
	if g.MonoMinLightness > g.MonoMaxLightness {
		return fmt.Errorf("monochromatic lightness min %v exceeds max %v",
			g.MonoMinLightness, g.MonoMaxLightness)
	}
	return nil
}

var defaultGenerator = NewGenerator()

// Generate derives a palette from a "#RRGGBB" base color using the default
// Generator.
func Generate(baseHex string, scheme Scheme) (*Palette, error) {
	return defaultGenerator.Generate(baseHex, scheme)
}

// Generate derives a palette from a "#RRGGBB" base color.
//
// Returns an error wrapping ErrInvalidHexFormat for a malformed base and
// ErrUnknownScheme for an undefined scheme. The output is deterministic:
// the same arguments always yield the same colors in the same order.
func (g *Generator) Generate(baseHex string, scheme Scheme) (*Palette, error) {
	base, err := ParseColor(baseHex)
	if err != nil {
		return nil, err
	}
	return g.GenerateFrom(base, scheme)
}

// GenerateFrom derives a palette from an already parsed base color.
//
// # Ordering
//
//   - Complementary: base, h+180
//   - Analogous: h-30, base, h+30
//   - Triadic: base, h+120, h+240
//   - Monochromatic: l-40, l-20, base, l+20, l+40
//   - SplitComplementary: base, h+150, h+210
//
// Hue offsets wrap modulo 360. Monochromatic shades below the base are
// raised to MonoMinLightness and shades above it lowered to
// MonoMaxLightness. The base itself is always emitted unchanged.
//
// Offsets are applied to the unrounded HSL of base, not to its integer
// display form. Derived colors can therefore differ by one channel step
// from a generator that rounds first: the complement of #00FF41 is
// #FF00BE here and #FF00BF after rounding to hsl(135, 100%, 50%).
func (g *Generator) GenerateFrom(base Color, scheme Scheme) (*Palette, error) {
	if !scheme.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}

	hsl := base.HSL()
	rotate := func(deg float64) Color {
		return FromHSL(HSL{H: hsl.H + deg, S: hsl.S, L: hsl.L})
	}
	shade := func(delta float64) Color {
		l := hsl.L + delta
		if delta < 0 {
			l = math.Max(l, g.MonoMinLightness)
		} else {
			l = math.Min(l, g.MonoMaxLightness)
		}
		return FromHSL(HSL{H: hsl.H, S: hsl.S, L: l})
	}

	var colors []Color
	switch scheme {
	case Complementary:
		colors = []Color{base, rotate(180)}
	case Analogous:
		colors = []Color{rotate(-30), base, rotate(30)}
	case Triadic:
		colors = []Color{base, rotate(120), rotate(240)}
	case Monochromatic:
		colors = []Color{shade(-40), shade(-20), base, shade(20), shade(40)}
	case SplitComplementary:
		colors = []Color{base, rotate(150), rotate(210)}
	}

	return &Palette{
		Name:   scheme.String() + " palette",
		Scheme: scheme.String(),
		Base:   base.Hex(),
		Colors: colors,
	}, nil
}
