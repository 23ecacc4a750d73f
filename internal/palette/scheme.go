package palette

import (
	"fmt"
	"strings"
)

// Scheme is a named rule for deriving related colors from a base color.
type Scheme int

const (
	// Complementary pairs the base with the hue opposite it on the wheel.
	Complementary Scheme = iota
	// Analogous surrounds the base with its two 30 degree neighbours.
	Analogous
	// Triadic spaces three hues evenly around the wheel.
	Triadic
	// Monochromatic varies lightness while keeping hue and saturation.
	Monochromatic
	// SplitComplementary pairs the base with the two hues adjacent to its complement.
	SplitComplementary
)

type schemeDef struct {
	id          string
	name        string
	description string
	size        int
}

var schemeDefs = [...]schemeDef{
	Complementary:      {"complementary", "Complementary", "Colors opposite on the color wheel", 2},
	Analogous:          {"analogous", "Analogous", "Colors next to each other", 3},
	Triadic:            {"triadic", "Triadic", "Three evenly spaced colors", 3},
	Monochromatic:      {"monochromatic", "Monochromatic", "Different shades of one color", 5},
	SplitComplementary: {"split-complementary", "Split Complementary", "Base color plus two adjacent to its complement", 3},
}

// Schemes returns every scheme in display order.
func Schemes() []Scheme {
	return []Scheme{Complementary, Analogous, Triadic, Monochromatic, SplitComplementary}
}

// ParseScheme resolves a scheme id such as "split-complementary".
// Matching ignores case and accepts '_' or ' ' in place of '-'.
func ParseScheme(id string) (Scheme, error) {
	norm := strings.ToLower(strings.TrimSpace(id))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, def := range schemeDefs {
		if def.id == norm {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, id)
}

// Valid reports whether s is one of the defined schemes.
func (s Scheme) Valid() bool {
	return s >= 0 && int(s) < len(schemeDefs)
}

// String returns the scheme id, e.g. "triadic".
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeDefs[s].id
}

// Name returns the human-readable scheme name.
func (s Scheme) Name() string {
	if !s.Valid() {
		return ""
	}
	return schemeDefs[s].name
}

// Description returns a one-line description of the scheme.
func (s Scheme) Description() string {
	if !s.Valid() {
		return ""
	}
	return schemeDefs[s].description
}

// Size returns the number of colors the scheme produces.
func (s Scheme) Size() int {
	if !s.Valid() {
		return 0
	}
	return schemeDefs[s].size
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SchemeInfo describes a scheme for listings.
type SchemeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
}

// DescribeSchemes lists every scheme with its metadata.
func DescribeSchemes() []SchemeInfo {
	schemes := Schemes()
	infos := make([]SchemeInfo, 0, len(schemes))
	for _, s := range schemes {
		infos = append(infos, SchemeInfo{
			ID:          s.String(),
			Name:        s.Name(),
			Description: s.Description(),
			Size:        s.Size(),
		})
	}
	return infos
}
