package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Format selects the encoding of an export document.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// createdAtLayout is ISO-8601 in UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

// ExportColor is one color in an export document, rendered as strings.
type ExportColor struct {
	Hex string `json:"hex" yaml:"hex"`
	RGB string `json:"rgb" yaml:"rgb"`
	HSL string `json:"hsl" yaml:"hsl"`
}

// ExportDocument is the downloadable form of a palette.
type ExportDocument struct {
	Name      string        `json:"name" yaml:"name"`
	Colors    []ExportColor `json:"colors" yaml:"colors"`
	CreatedAt string        `json:"createdAt" yaml:"createdAt"`
}

// NewExportDocument builds the export document for colors, stamped with now.
func NewExportDocument(name string, colors []Color, now time.Time) *ExportDocument {
	doc := &ExportDocument{
		Name:      name,
		Colors:    make([]ExportColor, len(colors)),
		CreatedAt: now.UTC().Format(createdAtLayout),
	}
	for i, c := range colors {
		doc.Colors[i] = ExportColor{Hex: c.Hex(), RGB: c.CSSRGB(), HSL: c.CSSHSL()}
	}
	return doc
}

// Marshal encodes the document. JSON uses two-space indentation.
func (d *ExportDocument) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Encode writes the encoded document to w.
func (d *ExportDocument) Encode(w io.Writer, f Format) error {
	data, err := d.Marshal(f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// ExportFileName derives the download file name for a palette name:
// lower-cased, each whitespace run replaced by '_', with a
// "_palette.<ext>" suffix.
//
//	ExportFileName("Ocean Blues", FormatJSON) == "ocean_blues_palette.json"
func ExportFileName(name string, f Format) string {
	base := whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
	// Path separators would escape the export directory.
	base = strings.NewReplacer("/", "_", "\\", "_").Replace(base)
	return base + "_palette." + string(f)
}

// WriteExport writes the document into dir and returns the file path.
// The directory is created if needed; an existing file is overwritten.
func WriteExport(dir string, d *ExportDocument, f Format) (string, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf, f); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(d.Name, f))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
