package editor

import (
	"image"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Toggle identifies a reversible visual effect.
type Toggle int

const (
	// Grayscale converts the working buffer to single-channel intensity.
	Grayscale Toggle = iota
	// EdgeDetection replaces the working buffer with a binary Canny edge map.
	EdgeDetection

	numToggles
)

// Toggles lists every Toggle in declaration order.
var Toggles = []Toggle{Grayscale, EdgeDetection}

func (t Toggle) String() string {
	switch t {
	case Grayscale:
		return "grayscale"
	case EdgeDetection:
		return "edge_detection"
	}
	return "unknown"
}

// derivation is present for a toggle that is on. restore is the buffer the
// toggle replaced; seq orders toggles by when they were switched on.
type derivation struct {
	restore image.Image
	seq     int
}

// frame is the undoable part of an EditState.
type frame struct {
	working image.Image
	toggles [numToggles]*derivation
}

// EditState is the state of one open image. The zero value and a nil
// *EditState both mean "no image loaded"; every accessor is safe on them.
type EditState struct {
	path     string
	original image.Image
	frame
	history      History
	scalePercent int
	seq          int
}

func newEditState(path string, original image.Image, historyLimit int) *EditState {
	return &EditState{
		path:         path,
		original:     original,
		frame:        frame{working: imaging.ToColor(original)},
		history:      newHistory(historyLimit),
		scalePercent: 100,
	}
}

// Loaded reports whether an image is loaded.
func (s *EditState) Loaded() bool {
	return s != nil && s.original != nil
}

// Path returns the file the image was loaded from.
func (s *EditState) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Original returns the buffer as loaded. It must not be modified.
func (s *EditState) Original() image.Image {
	if s == nil {
		return nil
	}
	return s.original
}

// Working returns the edited, unscaled buffer. It must not be modified.
func (s *EditState) Working() image.Image {
	if s == nil {
		return nil
	}
	return s.working
}

// Active reports whether toggle t is on.
func (s *EditState) Active(t Toggle) bool {
	if s == nil || t < 0 || t >= numToggles {
		return false
	}
	return s.toggles[t] != nil
}

// ScalePercent returns the display scale, 100 meaning actual size.
func (s *EditState) ScalePercent() int {
	if s == nil {
		return 100
	}
	return s.scalePercent
}

// Display returns the working buffer resized by the display scale, or nil if
// no image is loaded.
func (s *EditState) Display() image.Image {
	if !s.Loaded() {
		return nil
	}
	return imaging.Scale(s.working, s.scalePercent)
}

// History returns the undo/redo history.
func (s *EditState) History() *History {
	if s == nil {
		return &History{}
	}
	return &s.history
}

// CaptureSnapshot records the current working buffer and toggle state on the
// undo stack and clears the redo stack.
func (s *EditState) CaptureSnapshot() {
	if !s.Loaded() {
		return
	}
	s.history.capture(s.frame)
}

// Undo restores the most recent snapshot, moving the current state onto the
// redo stack. It reports false, changing nothing, if there is nothing to undo.
func (s *EditState) Undo() bool {
	if !s.Loaded() {
		return false
	}
	f, ok := s.history.back(s.frame)
	s.frame = f
	return ok
}

// Redo re-applies the most recently undone snapshot. It reports false,
// changing nothing, if there is nothing to redo.
func (s *EditState) Redo() bool {
	if !s.Loaded() {
		return false
	}
	f, ok := s.history.forward(s.frame)
	s.frame = f
	return ok
}

// activeInOrder returns the toggles that are on, oldest first.
func (s *EditState) activeInOrder() []Toggle {
	var out []Toggle
	for _, t := range Toggles {
		if s.toggles[t] == nil {
			continue
		}
		i := len(out)
		for i > 0 && s.toggles[out[i-1]].seq > s.toggles[t].seq {
			i--
		}
		out = append(out, 0)
		copy(out[i+1:], out[i:])
		out[i] = t
	}
	return out
}
