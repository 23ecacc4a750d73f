package server

import (
	"encoding/json"
	"testing"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

func toolMap() map[string]Tool {
	m := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		m[tool.Name] = tool
	}
	return m
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_convert",
		"palette_schemes",
		"palette_generate",
		"palette_presets",
		"palette_extract",
		"palette_export",
		"palette_swatch",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	m := toolMap()
	for _, name := range expectedTools {
		if _, ok := m[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required parameter must be declared.
			if required, ok := tool.InputSchema["required"].([]string); ok {
				for _, r := range required {
					if _, ok := props[r]; !ok {
						t.Errorf("required parameter %q not in properties", r)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"color_convert", []string{"hex"}},
		{"palette_swatch", []string{"colors"}},
	}

	m := toolMap()
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			got, ok := m[tt.tool].InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(got) != len(tt.required) || got[0] != tt.required[0] {
				t.Errorf("required: got %v, want %v", got, tt.required)
			}
		})
	}

	// Everything else is optional.
	for _, name := range []string{"palette_schemes", "palette_generate", "palette_presets", "palette_extract", "palette_export"} {
		if _, ok := m[name].InputSchema["required"]; ok {
			t.Errorf("%s should not require parameters", name)
		}
	}
}

func TestToolDefinitions_SchemeEnum(t *testing.T) {
	want := []string{"complementary", "analogous", "triadic", "monochromatic", "split-complementary"}

	m := toolMap()
	for _, name := range []string{"palette_generate", "palette_export"} {
		t.Run(name, func(t *testing.T) {
			props := m[name].InputSchema["properties"].(map[string]interface{})
			scheme := props["scheme"].(map[string]interface{})
			enum, ok := scheme["enum"].([]string)
			if !ok {
				t.Fatal("scheme enum should be a string slice")
			}
			if len(enum) != len(want) {
				t.Fatalf("enum: got %v, want %v", enum, want)
			}
			for i := range want {
				if enum[i] != want[i] {
					t.Errorf("enum[%d]: got %s, want %s", i, enum[i], want[i])
				}
			}
		})
	}
}

func TestToolDefinitions_Bounds(t *testing.T) {
	tests := []struct {
		tool, param string
		max         int
	}{
		{"palette_extract", "max_colors", palette.MaxExtractColors},
		{"palette_swatch", "cell_size", imaging.MaxSwatchCell},
	}

	m := toolMap()
	for _, tt := range tests {
		t.Run(tt.tool+"."+tt.param, func(t *testing.T) {
			props := m[tt.tool].InputSchema["properties"].(map[string]interface{})
			param := props[tt.param].(map[string]interface{})
			if param["maximum"] != tt.max {
				t.Errorf("maximum: got %v, want %d", param["maximum"], tt.max)
			}
		})
	}

	props := m["palette_swatch"].InputSchema["properties"].(map[string]interface{})
	colors := props["colors"].(map[string]interface{})
	if colors["maxItems"] != imaging.MaxSwatchColors {
		t.Errorf("colors maxItems: got %v, want %d", colors["maxItems"], imaging.MaxSwatchColors)
	}
}

func TestToolDefinitions_RegionCoordinates(t *testing.T) {
	props := toolMap()["palette_extract"].InputSchema["properties"].(map[string]interface{})
	region, ok := props["region"].(map[string]interface{})
	if !ok {
		t.Fatal("palette_extract should have a region parameter")
	}

	coords := region["properties"].(map[string]interface{})
	for _, c := range []string{"x1", "y1", "x2", "y2"} {
		param, ok := coords[c].(map[string]interface{})
		if !ok {
			t.Errorf("region.%s missing", c)
			continue
		}
		if param["type"] != "integer" {
			t.Errorf("region.%s type: got %v, want integer", c, param["type"])
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"palette_generate": {"base": "#00FF41", "scheme": "complementary"},
		"palette_export":   {"format": "json"},
		"palette_swatch":   {"cell_size": 64},
	}

	m := toolMap()
	for toolName, expectedDefaults := range toolDefaults {
		props, ok := m[toolName].InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expected := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}
			if actual := param["default"]; actual != expected {
				t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actual, expected)
			}
		}
	}
}

func TestToolDefinitions_JSON(t *testing.T) {
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, tool := range decoded {
		if _, ok := tool["inputSchema"]; !ok {
			t.Errorf("%v: missing inputSchema key", tool["name"])
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
