package imaging

import (
	"image"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled pixel in several representations.
//
// For intensity buffers R, G and B are equal and Gray holds the raw sample.
type ColorResult struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Hex  string   `json:"hex"` // "#RRGGBB"
	RGB  RGBColor `json:"rgb"`
	HSL  HSLColor `json:"hsl"`
	Gray *uint8   `json:"gray,omitempty"`
}

// SampleColor returns the colour of img at (x, y), relative to the top-left
// corner of the buffer.
//
// # Errors
//
// Returns an error if the coordinates fall outside the buffer.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return nil, errors.Errorf("coordinates (%d,%d) outside %dx%d buffer", x, y, b.Dx(), b.Dy())
	}

	px := img.At(b.Min.X+x, b.Min.Y+y)
	c, _ := colorful.MakeColor(px)
	r, g, bl := c.RGB255()
	h, s, l := c.Hsl()

	res := &ColorResult{
		X:   x,
		Y:   y,
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: bl},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
	if gray, ok := img.(*image.Gray); ok {
		v := gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y
		res.Gray = &v
	}
	return res, nil
}
