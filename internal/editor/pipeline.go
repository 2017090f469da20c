package editor

import (
	"image"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Composition decides what an absolute adjustment does to active toggles.
type Composition int

const (
	// ResetToggles recomputes from the original and leaves toggle flags set
	// with their effect discarded.
	ResetToggles Composition = iota
	// ReapplyToggles recomputes from the original and then re-applies every
	// active toggle in the order it was switched on.
	ReapplyToggles
)

func (c Composition) String() string {
	if c == ReapplyToggles {
		return "reapply"
	}
	return "reset"
}

// ParseComposition parses "reset" or "reapply" (case-insensitive). An empty
// string yields ResetToggles.
func ParseComposition(s string) (Composition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return ResetToggles, nil
	case "reapply":
		return ReapplyToggles, nil
	}
	return ResetToggles, errors.Errorf("unknown composition %q (want reset or reapply)", s)
}

// Pipeline applies edit operations to an EditState.
//
// Every operation is a no-op returning false when no image is loaded.
// Otherwise it captures a snapshot for undo, mutates the state and returns
// true.
type Pipeline struct {
	composition Composition
	edgeLow     int
	edgeHigh    int
}

// NewPipeline creates a pipeline with the given composition rule and the
// default edge-detection thresholds.
func NewPipeline(c Composition) *Pipeline {
	return &Pipeline{
		composition: c,
		edgeLow:     imaging.DefaultEdgeLow,
		edgeHigh:    imaging.DefaultEdgeHigh,
	}
}

// Composition returns the pipeline's composition rule.
func (p *Pipeline) Composition() Composition { return p.composition }

// ToggleGrayscale switches the grayscale effect. Switching it on converts the
// working buffer to intensity; switching it off restores the buffer it
// replaced.
func (p *Pipeline) ToggleGrayscale(st *EditState) bool {
	return p.Toggle(st, Grayscale)
}

// ToggleEdgeDetection switches the edge-detection effect. Switching it on
// replaces the working buffer with its binary edge map; switching it off
// restores the buffer it replaced.
func (p *Pipeline) ToggleEdgeDetection(st *EditState) bool {
	return p.Toggle(st, EdgeDetection)
}

// Toggle switches t on or off.
func (p *Pipeline) Toggle(st *EditState, t Toggle) bool {
	if !st.Loaded() || t < 0 || t >= numToggles {
		return false
	}
	st.CaptureSnapshot()

	if d := st.toggles[t]; d != nil {
		st.working = d.restore
		st.toggles[t] = nil
		return true
	}

	st.seq++
	st.toggles[t] = &derivation{restore: st.working, seq: st.seq}
	st.working = p.apply(t, st.working)
	return true
}

// AdjustBrightness sets the working buffer to the original with delta added
// to every sample, saturating at the sample range.
func (p *Pipeline) AdjustBrightness(st *EditState, delta int) bool {
	return p.absolute(st, func(img image.Image) image.Image {
		return imaging.Brightness(img, delta)
	})
}

// AdjustContrast sets the working buffer to the original with every sample
// scaled by level/50; 50 leaves the image unchanged.
func (p *Pipeline) AdjustContrast(st *EditState, level int) bool {
	return p.absolute(st, func(img image.Image) image.Image {
		return imaging.Contrast(img, level)
	})
}

// Blur sets the working buffer to the original smoothed with a Gaussian
// kernel 2*radius+1 wide. A radius of 0 or less restores the original.
func (p *Pipeline) Blur(st *EditState, radius int) bool {
	if radius < 0 {
		radius = 0
	}
	return p.absolute(st, func(img image.Image) image.Image {
		return imaging.Blur(img, radius)
	})
}

// Resize sets the display scale to percent, clamped to 1 and to
// imaging.MaxPercent for the working buffer's size.
func (p *Pipeline) Resize(st *EditState, percent int) bool {
	if !st.Loaded() {
		return false
	}
	b := st.working.Bounds()
	if mp := imaging.MaxPercent(b.Dx(), b.Dy()); percent > mp {
		percent = mp
	}
	if percent < 1 {
		percent = 1
	}
	st.CaptureSnapshot()
	st.scalePercent = percent
	return true
}

// ResizeBy changes the display scale by delta percentage points, within the
// same bounds as Resize.
func (p *Pipeline) ResizeBy(st *EditState, delta int) bool {
	if !st.Loaded() {
		return false
	}
	switch {
	case delta > imaging.MaxScalePercent:
		delta = imaging.MaxScalePercent
	case delta < -imaging.MaxScalePercent:
		delta = -imaging.MaxScalePercent
	}
	return p.Resize(st, st.scalePercent+delta)
}

func (p *Pipeline) absolute(st *EditState, fn func(image.Image) image.Image) bool {
	if !st.Loaded() {
		return false
	}
	st.CaptureSnapshot()
	st.working = fn(st.original)
	if p.composition == ReapplyToggles {
		p.reapply(st)
	}
	return true
}

// reapply runs every active toggle again on top of the working buffer,
// refreshing what each one restores to.
func (p *Pipeline) reapply(st *EditState) {
	for _, t := range st.activeInOrder() {
		seq := st.toggles[t].seq
		st.toggles[t] = &derivation{restore: st.working, seq: seq}
		st.working = p.apply(t, st.working)
	}
}

func (p *Pipeline) apply(t Toggle, img image.Image) image.Image {
	switch t {
	case Grayscale:
		return imaging.Grayscale(img)
	case EdgeDetection:
		return imaging.Canny(img, p.edgeLow, p.edgeHigh)
	}
	return img
}
