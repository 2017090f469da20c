package imaging

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// SupportedExtensions lists the file extensions accepted by Decode, matching
// the open-dialog filter of the editor.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// Supported reports whether path has one of SupportedExtensions
// (case-insensitive).
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decode reads the image at path and returns it as a three-channel buffer.
//
// Greyscale and paletted files are expanded to three channels and any alpha
// channel is dropped, so every freshly loaded buffer has the same shape
// regardless of the file's colour model. EXIF orientation is not applied.
//
// # Errors
//
//   - the extension is not one of SupportedExtensions
//   - the file does not exist or cannot be read
//   - the content is not a decodable JPEG, PNG or BMP image
func Decode(path string) (*image.NRGBA, error) {
	if !Supported(path) {
		return nil, errors.Errorf("unsupported image format %q", filepath.Ext(path))
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}
	return ToColor(img), nil
}

// Encode writes img to path, choosing the codec from the extension.
// JPEG output uses quality 95.
func Encode(path string, img image.Image) error {
	if !Supported(path) {
		return errors.Errorf("unsupported image format %q", filepath.Ext(path))
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return errors.Wrap(err, "failed to encode image")
	}
	return nil
}

// BufferInfo describes a pixel buffer.
type BufferInfo struct {
	// Width is the buffer width in pixels.
	Width int `json:"width"`

	// Height is the buffer height in pixels.
	Height int `json:"height"`

	// Channels is 1 for intensity buffers, 3 for colour buffers.
	Channels int `json:"channels"`
}

// Describe returns the dimensions and channel count of img.
func Describe(img image.Image) BufferInfo {
	b := img.Bounds()
	return BufferInfo{Width: b.Dx(), Height: b.Dy(), Channels: Channels(img)}
}

// FileSize returns the size of the file at path in bytes, or 0 if it cannot be
// stat'd.
func FileSize(path string) int64 {
	st, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return st.Size()
}
