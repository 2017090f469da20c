package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Default viewport used when rendering a buffer for display.
const (
	DefaultViewportWidth  = 750
	DefaultViewportHeight = 600
)

// RenderResult contains a display-ready rendition of a buffer encoded as
// base64 PNG.
type RenderResult struct {
	// Width of the rendered image in pixels.
	Width int `json:"width"`

	// Height of the rendered image in pixels.
	Height int `json:"height"`

	// SourceWidth and SourceHeight are the dimensions of the buffer before it
	// was fitted to the viewport.
	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	// ImageBase64 is the rendition encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Fit returns a three-channel copy of img that fits inside maxWidth×maxHeight,
// preserving aspect ratio. Images already within the bounds are not
// upscaled. Non-positive bounds fall back to the default viewport.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		maxWidth, maxHeight = DefaultViewportWidth, DefaultViewportHeight
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), ToColor(img), resize.Lanczos3)
}

// Render fits img to the viewport and encodes it as base64 PNG.
//
// The input buffer is left untouched; the rendition is purely cosmetic.
func Render(img image.Image, maxWidth, maxHeight int) (*RenderResult, error) {
	fitted := Fit(img, maxWidth, maxHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return nil, errors.Wrap(err, "failed to encode rendered image")
	}

	src := img.Bounds()
	return &RenderResult{
		Width:        fitted.Bounds().Dx(),
		Height:       fitted.Bounds().Dy(),
		SourceWidth:  src.Dx(),
		SourceHeight: src.Dy(),
		ImageBase64:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:     "image/png",
	}, nil
}
