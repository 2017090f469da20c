package imaging

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channels reports the number of samples per pixel: 1 for intensity buffers,
// 3 for everything else.
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	return 3
}

// ToColor returns a three-channel copy of img. Alpha is discarded: every
// pixel of the result is fully opaque.
func ToColor(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// ToGray returns a single-channel copy of img. Colour input is converted
// with ITU-R BT.601 luma weights (0.299 R + 0.587 G + 0.114 B).
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return cloneGray(g)
	}
	return redChannel(imaging.Grayscale(img))
}

// redChannel packs the R samples of a grey NRGBA image into an *image.Gray.
func redChannel(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+b.Dx()*4]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x := range out {
			out[x] = row[x*4]
		}
	}
	return dst
}

func cloneGray(g *image.Gray) *image.Gray {
	b := g.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:], g.Pix[off:off+b.Dx()])
	}
	return dst
}

// Equal reports whether a and b have the same dimensions, the same channel
// count and identical samples.
func Equal(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Bounds().Size() != b.Bounds().Size() || Channels(a) != Channels(b) {
		return false
	}
	if Channels(a) == 1 {
		return bytes.Equal(ToGray(a).Pix, ToGray(b).Pix)
	}
	return bytes.Equal(ToColor(a).Pix, ToColor(b).Pix)
}

// Fill returns a w×h three-channel buffer of a single colour.
func Fill(w, h int, c color.Color) *image.NRGBA {
	return ToColor(imaging.New(w, h, c))
}
