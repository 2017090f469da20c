// Package imaging provides the pixel-buffer primitives used by the editor.
//
// A pixel buffer is an image.Image normalised to one of two concrete types:
//   - *image.Gray for single-channel (intensity) buffers
//   - *image.NRGBA with every alpha sample at 255 for three-channel (colour) buffers
//
// Every function in this package returns a freshly allocated buffer and never
// writes to its input, so callers may keep references to earlier buffers (for
// backups or history) without copying them.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Operations
//
// The raster operations are thin wrappers over third-party libraries:
//   - Decode/Encode: github.com/disintegration/imaging (JPEG, PNG, BMP)
//   - Grayscale, Scale: github.com/disintegration/imaging
//   - Brightness, Contrast, Blur: github.com/anthonynsimon/bild
//   - Fit (viewport thumbnail): github.com/nfnt/resize
//   - SampleColor HSL/hex: github.com/lucasb-eyer/go-colorful
//
// Canny edge detection is implemented locally in edge.go.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on different or
// shared buffers, since no input buffer is ever modified.
package imaging
