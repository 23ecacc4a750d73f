package server

import (
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func schemeIDs() []string {
	schemes := palette.Schemes()
	ids := make([]string, len(schemes))
	for i, s := range schemes {
		ids[i] = s.String()
	}
	return ids
}

func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": "Optional region to sample; (x1,y1) inclusive, (x2,y2) exclusive",
	}
}

func colorListSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": description,
	}
}

func swatchColorsSchema() map[string]interface{} {
	schema := colorListSchema("Colors as #RRGGBB, left to right")
	schema["minItems"] = 1
	schema["maxItems"] = imaging.MaxSwatchColors
	return schema
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion
		{
			Name:        "color_convert",
			Description: "Convert a #RRGGBB hex color to RGB and HSL. Returns hex, rgb, hsl and CSS strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB (case-insensitive, '#' optional)",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Palette Generation
		{
			Name:        "palette_schemes",
			Description: "List the palette generation schemes with the number of colors each produces.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_generate",
			Description: "Generate a palette from a base color using a color-wheel scheme (complementary, analogous, triadic, monochromatic, split-complementary).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": map[string]interface{}{
						"type":        "string",
						"description": "Base color as #RRGGBB (default " + palette.DefaultBaseColor + ")",
						"default":     palette.DefaultBaseColor,
					},
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        schemeIDs(),
						"description": "Generation scheme (default complementary)",
						"default":     palette.Complementary.String(),
					},
				},
			},
		},
		{
			Name:        "palette_presets",
			Description: "List the built-in named palettes, or return one by name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Optional preset name (case-insensitive)",
					},
				},
			},
		},

		// Image Sampling
		{
			Name:        "palette_extract",
			Description: "Sample up to 8 distinct opaque colors from an image given as a data URL or a file path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data_url": map[string]interface{}{
						"type":        "string",
						"description": "Image as data:image/...;base64,... (takes precedence over path)",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to an image file",
					},
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum colors to return (default 8)",
						"minimum":     1,
						"maximum":     palette.MaxExtractColors,
					},
					"merge_distance": map[string]interface{}{
						"type":        "number",
						"description": "Skip colors within this CIEDE2000 distance of a kept color (0 disables)",
					},
					"region": regionSchema(),
				},
			},
		},

		// Export
		{
			Name:        "palette_export",
			Description: "Build the downloadable palette document {name, colors, createdAt}. Pass colors directly or a base color and scheme.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": colorListSchema("Colors as #RRGGBB"),
					"base": map[string]interface{}{
						"type":        "string",
						"description": "Base color to generate from when colors is omitted",
					},
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        schemeIDs(),
						"description": "Scheme to generate with when colors is omitted",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Palette name; also determines the file name",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{string(palette.FormatJSON), string(palette.FormatYAML)},
						"description": "Document format (default json)",
						"default":     string(palette.FormatJSON),
					},
					"write": map[string]interface{}{
						"type":        "boolean",
						"description": "Also write the file into the configured export directory",
					},
				},
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Render colors as a PNG strip of square cells, returned as base64 and as a data URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": swatchColorsSchema(),
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge length in pixels (default 64)",
						"default":     64,
						"minimum":     1,
						"maximum":     imaging.MaxSwatchCell,
					},
				},
				"required": []string{"colors"},
			},
		},
	}
}
