package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ErrExportDisabled is returned when a write is requested but no export
// directory is configured.
var ErrExportDisabled = errors.New("export directory not configured")

// defaultExportName names exported palettes given only a color list.
const defaultExportName = "my palette"

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log := s.log.WithField("tool", params.Name)
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		log.WithError(err).Warn("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug("tool succeeded")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls into the palette engine
//  4. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)

	// Palette Generation
	case "palette_schemes":
		return s.handlePaletteSchemes(args)
	case "palette_generate":
		return s.handlePaletteGenerate(args)
	case "palette_presets":
		return s.handlePalettePresets(args)

	// Image Sampling
	case "palette_extract":
		return s.handlePaletteExtract(ctx, args)

	// Export
	case "palette_export":
		return s.handlePaletteExport(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Absent arguments leave v untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// parseColors parses a list of hex strings, reporting the first bad entry.
func parseColors(hexes []string) ([]palette.Color, error) {
	colors := make([]palette.Color, len(hexes))
	for i, h := range hexes {
		c, err := palette.ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// === Color Conversion Handlers ===

type colorConvertArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return palette.ParseColor(a.Hex)
}

// === Palette Generation Handlers ===

func (s *Server) handlePaletteSchemes(args json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"schemes": palette.DescribeSchemes(),
	}, nil
}

type paletteGenerateArgs struct {
	Base   string `json:"base"`
	Scheme string `json:"scheme"`
}

func (s *Server) handlePaletteGenerate(args json.RawMessage) (interface{}, error) {
	var a paletteGenerateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.generate(a.Base, a.Scheme)
}

// generate applies the tool defaults: DefaultBaseColor and Complementary.
func (s *Server) generate(base, scheme string) (*palette.Palette, error) {
	if base == "" {
		base = palette.DefaultBaseColor
	}
	sch := palette.Complementary
	if scheme != "" {
		var err error
		if sch, err = palette.ParseScheme(scheme); err != nil {
			return nil, err
		}
	}
	return s.generator.Generate(base, sch)
}

type palettePresetsArgs struct {
	Name string `json:"name"`
}

func (s *Server) handlePalettePresets(args json.RawMessage) (interface{}, error) {
	var a palettePresetsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Name != "" {
		return palette.LookupPreset(a.Name)
	}
	return map[string]interface{}{
		"presets": palette.Presets(),
	}, nil
}

// === Image Sampling Handlers ===

type paletteExtractArgs struct {
	DataURL       string          `json:"data_url"`
	Path          string          `json:"path"`
	MaxColors     int             `json:"max_colors"`
	MergeDistance *float64        `json:"merge_distance"`
	Region        *imaging.Region `json:"region"`
}

func (s *Server) handlePaletteExtract(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	// Per-call overrides apply to a copy of the configured sampler.
	e := *s.extractor
	if a.MaxColors != 0 {
		e.MaxColors = a.MaxColors
	}
	if a.MergeDistance != nil {
		e.MergeDistance = *a.MergeDistance
	}
	e.Region = a.Region

	switch {
	case a.DataURL != "":
		return e.ExtractDataURL(ctx, a.DataURL)
	case a.Path != "":
		return e.ExtractFile(ctx, s.cache, a.Path)
	default:
		return nil, fmt.Errorf("either data_url or path is required")
	}
}

// === Export Handlers ===

type paletteExportArgs struct {
	Colors []string `json:"colors"`
	Base   string   `json:"base"`
	Scheme string   `json:"scheme"`
	Name   string   `json:"name"`
	Format string   `json:"format"`
	Write  bool     `json:"write"`
}

// PaletteExportResult is the palette_export tool result.
type PaletteExportResult struct {
	FileName string                  `json:"file_name"`
	Format   palette.Format          `json:"format"`
	Document *palette.ExportDocument `json:"document"`
	Content  string                  `json:"content"`
	Path     string                  `json:"path,omitempty"`
}

func (s *Server) handlePaletteExport(args json.RawMessage) (interface{}, error) {
	var a paletteExportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	format, err := palette.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}

	var colors []palette.Color
	name := a.Name
	if len(a.Colors) > 0 {
		if colors, err = parseColors(a.Colors); err != nil {
			return nil, err
		}
		if name == "" {
			name = defaultExportName
		}
	} else {
		p, err := s.generate(a.Base, a.Scheme)
		if err != nil {
			return nil, err
		}
		colors = p.Colors
		if name == "" {
			name = p.Name
		}
	}

	doc := palette.NewExportDocument(name, colors, s.now())
	content, err := doc.Marshal(format)
	if err != nil {
		return nil, err
	}

	result := &PaletteExportResult{
		FileName: palette.ExportFileName(name, format),
		Format:   format,
		Document: doc,
		Content:  string(content),
	}

	if a.Write {
		if s.exportDir == "" {
			return nil, ErrExportDisabled
		}
		path, err := palette.WriteExport(s.exportDir, doc, format)
		if err != nil {
			return nil, err
		}
		s.log.WithFields(logrus.Fields{"path": path, "colors": len(colors)}).Info("palette exported")
		result.Path = path
	}

	return result, nil
}

type paletteSwatchArgs struct {
	Colors   []string `json:"colors"`
	CellSize int      `json:"cell_size"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	colors, err := parseColors(a.Colors)
	if err != nil {
		return nil, err
	}

	cells := make([]color.Color, len(colors))
	for i, c := range colors {
		cells[i] = c
	}
	return imaging.RenderSwatch(cells, a.CellSize)
}
