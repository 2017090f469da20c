package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name  string
		in    color.NRGBA
		delta int
		want  color.NRGBA
	}{
		{"zero", color.NRGBA{10, 100, 200, 255}, 0, color.NRGBA{10, 100, 200, 255}},
		{"positive", color.NRGBA{10, 100, 200, 255}, 50, color.NRGBA{60, 150, 250, 255}},
		{"clamped high", color.NRGBA{10, 100, 230, 255}, 50, color.NRGBA{60, 150, 255, 255}},
		{"clamped low", color.NRGBA{10, 100, 200, 255}, -50, color.NRGBA{0, 50, 150, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Fill(4, 4, tt.in)
			out := Brightness(src, tt.delta)
			require.IsType(t, &image.NRGBA{}, out)
			assert.Equal(t, tt.want, out.(*image.NRGBA).NRGBAAt(2, 2))
			assert.Equal(t, tt.in, src.NRGBAAt(2, 2), "input must not be modified")
		})
	}
}

func TestBrightness_KeepsGray(t *testing.T) {
	src := ToGray(Fill(3, 3, color.NRGBA{100, 100, 100, 255}))
	out := Brightness(src, 20)
	require.IsType(t, &image.Gray{}, out)
	assert.Equal(t, uint8(120), out.(*image.Gray).GrayAt(1, 1).Y)
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  color.NRGBA
	}{
		{"identity", 50, color.NRGBA{40, 100, 200, 255}},
		{"zero", 0, color.NRGBA{0, 0, 0, 255}},
		{"double", 100, color.NRGBA{80, 200, 255, 255}},
		{"one and a half", 75, color.NRGBA{60, 150, 255, 255}},
		{"half", 25, color.NRGBA{20, 50, 100, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Contrast(Fill(4, 4, color.NRGBA{40, 100, 200, 255}), tt.level)
			assert.Equal(t, tt.want, out.(*image.NRGBA).NRGBAAt(1, 1))
		})
	}
}

func TestContrast_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		name  string
		level int
		in    color.NRGBA
		want  color.NRGBA
	}{
		{"quarter", 25, color.NRGBA{1, 3, 5, 255}, color.NRGBA{0, 2, 2, 255}},
		{"three quarters", 75, color.NRGBA{1, 3, 7, 255}, color.NRGBA{2, 4, 10, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Contrast(Fill(2, 2, tt.in), tt.level)
			assert.Equal(t, tt.want, out.(*image.NRGBA).NRGBAAt(0, 0))
		})
	}
}

func TestBlur_ZeroRadiusCopies(t *testing.T) {
	src := createPatternImage(20, 20)
	for _, r := range []int{0, -3} {
		out := Blur(src, r)
		assert.True(t, Equal(src, out))
		assert.NotSame(t, src, out)
	}
}

func TestBlur_SmoothsBoundary(t *testing.T) {
	src := createSquareImage(40, 40)
	out := Blur(src, 3)

	require.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, 3, Channels(out))

	// A pixel just outside the square picks up some of its brightness.
	edge := out.(*image.NRGBA).NRGBAAt(9, 20)
	assert.Greater(t, edge.R, uint8(0))
	assert.Less(t, edge.R, uint8(255))

	// Uniform regions far from the square stay black.
	assert.Equal(t, uint8(0), out.(*image.NRGBA).NRGBAAt(0, 0).R)
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, pct    int
		wantW, wantH int
	}{
		{"identity", 100, 80, 100, 100, 80},
		{"half", 100, 80, 50, 50, 40},
		{"truncates", 99, 99, 50, 49, 49},
		{"double", 10, 20, 200, 20, 40},
		{"floor one pixel", 100, 10, 1, 1, 1},
		{"zero percent", 100, 100, 0, 1, 1},
		{"negative percent", 100, 100, -20, 1, 1},
		{"capped at max percent", 100, 80, 2000000000, 1000, 800},
		{"max int percent", 100, 80, math.MaxInt, 1000, 800},
		{"capped by pixel budget", 10000, 10000, 1000, 8100, 8100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.w, tt.h, tt.pct)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestMaxPercent(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{"small buffer", 100, 80, MaxScalePercent},
		{"empty buffer", 0, 0, MaxScalePercent},
		{"large buffer", 10000, 10000, 81},
		{"never below one", 1000000, 1000000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxPercent(tt.w, tt.h)
			assert.Equal(t, tt.want, got)
			w, h := ScaledSize(tt.w, tt.h, got)
			if tt.want > 1 {
				assert.LessOrEqual(t, int64(w)*int64(h), int64(MaxScaledPixels))
			}
		})
	}
}

func TestScale(t *testing.T) {
	src := createPatternImage(100, 60)

	assert.Same(t, src, Scale(src, 100).(*image.NRGBA))

	out := Scale(src, 60)
	assert.Equal(t, image.Rect(0, 0, 60, 36), out.Bounds())
	assert.Equal(t, 3, Channels(out))

	gray := Scale(ToGray(src), 10)
	assert.Equal(t, image.Rect(0, 0, 10, 6), gray.Bounds())
	assert.Equal(t, 1, Channels(gray))
}

func TestGrayscale(t *testing.T) {
	out := Grayscale(createPatternImage(10, 10))
	assert.Equal(t, 1, Channels(out))
	assert.Equal(t, uint8(76), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), out.GrayAt(9, 9).Y)
}
