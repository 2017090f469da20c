package imaging

import (
	"image"
	"math"
)

// Default hysteresis thresholds used by the editor's edge-detection toggle,
// on a 0-255 gradient scale.
const (
	DefaultEdgeLow  = 100
	DefaultEdgeHigh = 200
)

// Canny runs Canny edge detection on img and returns a binary intensity
// buffer: 255 where an edge was found, 0 elsewhere.
//
// Colour input is first converted with Grayscale. Thresholds are on the
// 0-255 scale of the L1 gradient magnitude |Gx| + |Gy|.
//
// # Algorithm
//
//  1. Gradient computation with 3x3 Sobel operators
//  2. Non-maximum suppression along the quantised gradient direction, thinning
//     edges to one pixel
//  3. Hysteresis: pixels at or above thresholdHigh seed edges, which are then
//     grown through 8-connected neighbours at or above thresholdLow
//
// Border pixels are never marked as edges. Thresholds are swapped if given
// in the wrong order.
func Canny(img image.Image, thresholdLow, thresholdHigh int) *image.Gray {
	if thresholdLow > thresholdHigh {
		thresholdLow, thresholdHigh = thresholdHigh, thresholdLow
	}

	gray := ToGray(img)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}

	at := func(x, y int) float64 {
		return float64(gray.Pix[clamp(y, 0, h-1)*gray.Stride+clamp(x, 0, w-1)])
	}

	magnitude := make([]float64, w*h)
	direction := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) -
				2*at(x-1, y) + 2*at(x+1, y) -
				at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			magnitude[y*w+x] = math.Abs(gx) + math.Abs(gy)
			direction[y*w+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression
	suppressed := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			mag := magnitude[i]
			if mag == 0 {
				continue
			}
			dx, dy := gradientStep(direction[i])
			n1 := magnitude[(y-dy)*w+(x-dx)]
			n2 := magnitude[(y+dy)*w+(x+dx)]
			if mag >= n1 && mag > n2 {
				suppressed[i] = mag
			}
		}
	}

	// Hysteresis
	low, high := float64(thresholdLow), float64(thresholdHigh)
	stack := make([]int, 0, 64)
	for i, v := range suppressed {
		if v >= high && out.Pix[i/w*out.Stride+i%w] == 0 {
			out.Pix[i/w*out.Stride+i%w] = 255
			stack = append(stack, i)
		}
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jx, jy := j%w, j/w
			for ny := jy - 1; ny <= jy+1; ny++ {
				for nx := jx - 1; nx <= jx+1; nx++ {
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					k := ny*w + nx
					if suppressed[k] >= low && out.Pix[ny*out.Stride+nx] == 0 {
						out.Pix[ny*out.Stride+nx] = 255
						stack = append(stack, k)
					}
				}
			}
		}
	}
	return out
}

// gradientStep quantises a gradient angle to one of four neighbour offsets.
func gradientStep(angle float64) (int, int) {
	a := angle
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return 1, 0
	case a < 3*math.Pi/8:
		return 1, 1
	case a < 5*math.Pi/8:
		return 0, 1
	default:
		return -1, 1
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
