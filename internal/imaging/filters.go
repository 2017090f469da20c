package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Grayscale converts img to a single-channel intensity buffer.
func Grayscale(img image.Image) *image.Gray {
	return ToGray(img)
}

// Brightness offsets every colour sample of img by delta, saturating at 0 and
// 255. A delta of 0 returns an unchanged copy.
func Brightness(img image.Image, delta int) image.Image {
	return mapSamples(img, func(v uint8) uint8 {
		return saturate(float64(v) + float64(delta))
	})
}

// Contrast scales every colour sample of img by level/50, rounding to the
// nearest integer and saturating at 0 and 255. Level 50 is the identity and
// level 0 produces black.
func Contrast(img image.Image, level int) image.Image {
	alpha := float64(level) / 50
	return mapSamples(img, func(v uint8) uint8 {
		return saturate(float64(v) * alpha)
	})
}

// Blur applies a Gaussian blur whose kernel is 2*radius+1 pixels wide.
// A radius of 0 or less returns an unchanged copy.
func Blur(img image.Image, radius int) image.Image {
	if radius <= 0 {
		return clone(img)
	}
	out := blur.Gaussian(img, float64(radius))
	return sameShape(img, out)
}

// Upper bounds on proportional resizing. MaxScaledPixels keeps a scaled
// buffer within a few hundred megabytes regardless of the source size.
const (
	MaxScalePercent = 1000
	MaxScaledPixels = 1 << 26
)

// MaxPercent returns the largest scale percent, at most MaxScalePercent, at
// which a w×h buffer stays within MaxScaledPixels. It is never below 1.
func MaxPercent(w, h int) int {
	if w < 1 || h < 1 {
		return MaxScalePercent
	}
	p := int(100 * math.Sqrt(float64(MaxScaledPixels)/(float64(w)*float64(h))))
	if p > MaxScalePercent {
		p = MaxScalePercent
	}
	for p > 1 && scaledPixels(w, h, p) > MaxScaledPixels {
		p--
	}
	if p < 1 {
		p = 1
	}
	return p
}

func scaledPixels(w, h, percent int) int64 {
	return int64(w) * int64(percent) / 100 * (int64(h) * int64(percent) / 100)
}

// ScaledSize returns the dimensions of a w×h buffer scaled by percent,
// truncating toward zero and never going below 1×1. Percent is clamped to
// 1..MaxPercent(w, h).
func ScaledSize(w, h, percent int) (int, int) {
	if percent < 1 {
		percent = 1
	}
	if mp := MaxPercent(w, h); percent > mp {
		percent = mp
	}
	nw := int(int64(w) * int64(percent) / 100)
	nh := int(int64(h) * int64(percent) / 100)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// Scale resizes img proportionally by percent using area averaging, keeping
// its channel count. Percent 100 returns img itself.
func Scale(img image.Image, percent int) image.Image {
	b := img.Bounds()
	w, h := ScaledSize(b.Dx(), b.Dy(), percent)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return sameShape(img, imaging.Resize(img, w, h, imaging.Box))
}

// mapSamples applies fn to the R, G and B samples of every pixel. Intensity
// buffers stay single-channel.
func mapSamples(img image.Image, fn func(uint8) uint8) image.Image {
	out := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: fn(c.R), G: fn(c.G), B: fn(c.B), A: c.A}
	})
	return sameShape(img, out)
}

// sameShape converts out back to the channel layout of src.
func sameShape(src, out image.Image) image.Image {
	if Channels(src) == 1 {
		return ToGray(out)
	}
	return ToColor(out)
}

func clone(img image.Image) image.Image {
	if Channels(img) == 1 {
		return ToGray(img)
	}
	return ToColor(img)
}

func saturate(v float64) uint8 {
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
