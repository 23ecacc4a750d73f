package palette

import (
	"fmt"
	"strings"
)

var presetDefs = []struct {
	name   string
	colors []string
}{
	{"MatrixProg Theme", []string{"#00ff41", "#0d7377", "#7209b7", "#f72585", "#14213d"}},
	{"Ocean Blues", []string{"#001219", "#005f73", "#0a9396", "#94d2bd", "#e9d8a6"}},
	{"Sunset Vibes", []string{"#f72585", "#b5179e", "#7209b7", "#480ca8", "#3a0ca3"}},
	{"Forest Greens", []string{"#2d5016", "#3e6b1f", "#568527", "#6da030", "#84bb38"}},
}

// Presets returns the built-in named palettes. Each call returns fresh
// copies.
func Presets() []*Palette {
	out := make([]*Palette, 0, len(presetDefs))
	for _, def := range presetDefs {
		colors := make([]Color, len(def.colors))
		for i, hex := range def.colors {
			colors[i] = MustParseColor(hex)
		}
		out = append(out, &Palette{Name: def.name, Colors: colors})
	}
	return out
}

// LookupPreset finds a built-in palette by name, ignoring case.
func LookupPreset(name string) (*Palette, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
