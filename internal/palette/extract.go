package palette

import (
	"context"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

// Default sampler settings.
const (
	DefaultSampleTarget   = 1000
	DefaultMaxColors      = 8
	DefaultAlphaThreshold = 128

	// MaxExtractColors bounds Extractor.MaxColors.
	MaxExtractColors = 256
)

// ExtractedPaletteName is the name given to palettes sampled from images.
const ExtractedPaletteName = "extracted colors"

// Extractor samples representative colors from an image.
//
// It walks the pixels at a fixed stride and keeps the first distinct opaque
// colors it meets. This is a sampling heuristic, not clustering: colors that
// differ by a single channel step are distinct unless MergeDistance is set.
type Extractor struct {
	// SampleTarget is the approximate number of pixels to visit.
	SampleTarget int

	// MaxColors caps the number of colors returned.
	MaxColors int

	// AlphaThreshold skips pixels whose alpha is at or below it.
	AlphaThreshold uint8

	// MergeDistance, when positive, skips a sampled color whose CIEDE2000
	// distance to an already kept color is below it. go-colorful measures
	// on a 0-1 lightness scale, so 0.01 is roughly one ΔE unit.
	MergeDistance float64

	// Region restricts sampling to part of the image. Nil samples everything.
	Region *imaging.Region
}

// NewExtractor returns an Extractor with the default settings.
func NewExtractor() *Extractor {
	return &Extractor{
		SampleTarget:   DefaultSampleTarget,
		MaxColors:      DefaultMaxColors,
		AlphaThreshold: DefaultAlphaThreshold,
	}
}

// Validate checks the sampler settings.
func (e *Extractor) Validate() error {
	if e.SampleTarget <= 0 {
		return fmt.Errorf("sample target must be positive, got %d", e.SampleTarget)
	}
	if e.MaxColors <= 0 || e.MaxColors > MaxExtractColors {
		return fmt.Errorf("max colors must be between 1 and %d, got %d", MaxExtractColors, e.MaxColors)
	}
	if e.MergeDistance < 0 {
		return fmt.Errorf("merge distance must not be negative, got %v", e.MergeDistance)
	}
	return nil
}

// ExtractDataURL decodes a "data:image/...;base64," URL and samples it.
//
// Malformed URLs return an error wrapping ErrInvalidDataURL and undecodable
// image bytes one wrapping ErrImageDecode.
func (e *Extractor) ExtractDataURL(ctx context.Context, dataURL string) (*Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	img, _, err := imaging.DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.ExtractImage(img)
}

// ExtractFile loads an image through cache and samples it.
func (e *Extractor) ExtractFile(ctx context.Context, cache *imaging.ImageCache, path string) (*Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.ExtractImage(img)
}

// ExtractImage samples up to MaxColors distinct opaque colors from img.
//
// # Sampling
//
// Pixels are indexed in row-major order. The sampler visits indices
// 0, n, 2n, ... where n = max(1, pixels/SampleTarget), so roughly
// SampleTarget pixels are read regardless of image size. Pixels are read
// non-premultiplied; a pixel is kept when its alpha exceeds AlphaThreshold.
// Colors appear in the order they were first seen.
//
// Returns an error wrapping ErrEmptyImage for an image without pixels. An
// image with no opaque pixels yields an empty palette.
func (e *Extractor) ExtractImage(img image.Image) (*Palette, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if e.Region != nil {
		cropped, err := imaging.CropRegion(img, *e.Region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	src := imaging.ToNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	total := width * height
	if total == 0 {
		return nil, ErrEmptyImage
	}

	stride := total / e.SampleTarget
	if stride < 1 {
		stride = 1
	}

	seen := make(map[RGB]bool)
	var kept []colorful.Color
	colors := make([]Color, 0, min(e.MaxColors, total))

	for i := 0; i < total && len(colors) < e.MaxColors; i += stride {
		off := (i/width)*src.Stride + (i%width)*4
		px := src.Pix[off : off+4 : off+4]
		if px[3] <= e.AlphaThreshold {
			continue
		}

		rgb := RGB{R: px[0], G: px[1], B: px[2]}
		if seen[rgb] {
			continue
		}
		seen[rgb] = true

		if e.MergeDistance > 0 {
			cf := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
			if nearAny(cf, kept, e.MergeDistance) {
				continue
			}
			kept = append(kept, cf)
		}

		colors = append(colors, FromRGB(rgb))
	}

	return &Palette{Name: ExtractedPaletteName, Colors: colors}, nil
}

func nearAny(c colorful.Color, kept []colorful.Color, threshold float64) bool {
	for _, k := range kept {
		if c.DistanceCIEDE2000(k) < threshold {
			return true
		}
	}
	return false
}
