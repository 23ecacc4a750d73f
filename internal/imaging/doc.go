// Package imaging provides the image input/output used by the palette tools.
//
// It decodes images from files and browser-style data URLs, crops regions,
// normalizes pixels to the non-premultiplied layout a canvas exposes, and
// renders palettes as PNG swatches. The package knows nothing about palettes
// themselves; it works with standard image.Image and color.Color values.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// Decoding goes through github.com/disintegration/imaging, which registers
// PNG, JPEG, GIF, BMP and TIFF, and applies EXIF orientation.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless.
//
// # Error Handling
//
// Decode failures wrap ErrDecode and malformed data URLs wrap
// ErrInvalidDataURL, so callers can tell bad input apart from bad bytes
// with errors.Is.
package imaging
