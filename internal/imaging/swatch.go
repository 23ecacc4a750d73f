package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/transform"
)

// Swatch size bounds. Cell sizes are in pixels.
const (
	DefaultSwatchCell = 64
	MaxSwatchCell     = 512
	MaxSwatchColors   = 64
)

// SwatchResult contains a rendered palette swatch.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Cells       int    `json:"cells"`
	ImageBase64 string `json:"image_base64"`
	DataURL     string `json:"data_url"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch renders colors as a horizontal strip of square cells.
//
// Parameters:
//   - colors: Colors to render, left to right. Between 1 and
//     MaxSwatchColors entries.
//   - cellSize: Edge length of each cell in pixels. Zero selects
//     DefaultSwatchCell; values above MaxSwatchCell are rejected.
//
// Returns the strip encoded as PNG, both as bare base64 and as a data URL.
func RenderSwatch(colors []color.Color, cellSize int) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one color")
	}
	if len(colors) > MaxSwatchColors {
		return nil, fmt.Errorf("swatch takes at most %d colors, got %d", MaxSwatchColors, len(colors))
	}
	if cellSize == 0 {
		cellSize = DefaultSwatchCell
	}
	if cellSize < 0 || cellSize > MaxSwatchCell {
		return nil, fmt.Errorf("cell size %d outside 1-%d", cellSize, MaxSwatchCell)
	}

	// One pixel per color, scaled up without interpolation.
	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		strip.Set(i, 0, c)
	}
	scaled := transform.Resize(strip, len(colors)*cellSize, cellSize, transform.NearestNeighbor)

	dataURL, err := EncodePNGDataURL(scaled)
	if err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       scaled.Bounds().Dx(),
		Height:      scaled.Bounds().Dy(),
		Cells:       len(colors),
		ImageBase64: strings.TrimPrefix(dataURL, pngDataURLPrefix),
		DataURL:     dataURL,
		MimeType:    "image/png",
	}, nil
}
