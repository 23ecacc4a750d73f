package palette

import (
	"errors"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

// Sentinel errors returned by the palette engine. Callers match them with
// errors.Is; the returned errors usually wrap one of these with the
// offending input.
var (
	// ErrInvalidHexFormat is returned when a color string is not #RRGGBB.
	ErrInvalidHexFormat = errors.New("invalid hex color format")

	// ErrUnknownScheme is returned when a scheme id does not name a Scheme.
	ErrUnknownScheme = errors.New("unknown palette scheme")

	// ErrInvalidDataURL is returned when an image data URL is malformed or
	// does not carry a base64 image payload.
	ErrInvalidDataURL = imaging.ErrInvalidDataURL

	// ErrImageDecode is returned when image bytes cannot be decoded.
	ErrImageDecode = imaging.ErrDecode

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrUnknownPreset is returned when no built-in palette has the given name.
	ErrUnknownPreset = errors.New("unknown preset palette")

	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)
