package editor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createGradientImage creates a colour image whose samples vary with position,
// with a bright square in the middle so edge detection finds something.
func createGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{uint8(x * 2), uint8(y * 2), uint8((x + y) % 256), 255}
			if x >= width/4 && x < width*3/4 && y >= height/4 && y < height*3/4 {
				c = color.NRGBA{250, 240, 230, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeImage encodes img as PNG in a temp dir and returns its path.
func writeImage(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// loadState loads a width×height gradient image into a fresh store.
func loadState(t *testing.T, width, height int) (*Store, *EditState) {
	t.Helper()
	store := NewStore(0)
	st, err := store.Load(writeImage(t, createGradientImage(width, height)))
	require.NoError(t, err)
	return store, st
}
