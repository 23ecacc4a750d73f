// Package palette implements the palette engine: conversion among hex, RGB
// and HSL, scheme-based palette generation, dominant-color sampling from
// images, and palette export.
//
// # Color Representation
//
// A Color is an immutable value whose canonical form is the upper-case hex
// string "#RRGGBB". RGB and HSL are derived from it:
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-359), Saturation (0-100), Lightness (0-100)
//
// HSL is kept at full precision, so hex -> RGB -> HSL -> hex reproduces the
// original color. JSON and CSS renderings round HSL to whole numbers.
//
// # Schemes
//
// Generate derives a fixed number of colors from a base color:
//
//	Complementary       2   base, h+180
//	Analogous           3   h-30, base, h+30
//	Triadic             3   base, h+120, h+240
//	Monochromatic       5   l-40, l-20, base, l+20, l+40 (clamped to 10-90)
//	SplitComplementary  3   base, h+150, h+210
//
// # Error Handling
//
// Invalid input is reported, never masked: malformed hex returns
// ErrInvalidHexFormat, bad image data ErrInvalidDataURL or ErrImageDecode.
// All errors are wrapped and can be matched with errors.Is.
//
// # Thread Safety
//
// Every function is pure. Generator and Extractor values are safe for
// concurrent use as long as their fields are not modified.
package palette
