package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrInvalidDataURL is returned (wrapped) for malformed image data URLs.
var ErrInvalidDataURL = errors.New("invalid image data URL")

// DecodeDataURL decodes an image from a "data:image/<type>;base64,<payload>" URL,
// as produced by a browser FileReader.
//
// Returns the decoded image and its declared MIME type. The MIME type must
// start with "image/" and the payload must be base64; otherwise the error
// wraps ErrInvalidDataURL. Undecodable image bytes wrap ErrDecode.
func DecodeDataURL(dataURL string) (image.Image, string, error) {
	mime, payload, err := parseDataURL(dataURL)
	if err != nil {
		return nil, "", err
	}

	img, err := DecodeBytes(payload)
	if err != nil {
		return nil, mime, err
	}
	return img, mime, nil
}

func parseDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURL), "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURL)
	}

	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURL)
	}

	params := strings.Split(meta, ";")
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, fmt.Errorf("%w: media type %q is not an image", ErrInvalidDataURL, mime)
	}
	if !strings.EqualFold(strings.TrimSpace(params[len(params)-1]), "base64") {
		return "", nil, fmt.Errorf("%w: payload is not base64 encoded", ErrInvalidDataURL)
	}

	encoded = strings.Join(strings.Fields(encoded), "")
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		payload, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
		}
	}
	return mime, payload, nil
}

const pngDataURLPrefix = "data:image/png;base64,"

// EncodePNGDataURL encodes img as a "data:image/png;base64,..." URL.
func EncodePNGDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
