// Package editor holds the edit state of an open image and the operations
// that transform it.
//
// An EditState owns three kinds of data:
//   - the original buffer, fixed at load time
//   - the working buffer together with the on/off state of each toggle
//     (grayscale, edge detection); a toggle that is on remembers the buffer
//     it replaced, so switching it off restores that buffer exactly
//   - the display scale and the undo/redo history
//
// Store loads and saves images and owns the current EditState. Pipeline
// applies edits to an EditState passed to it explicitly; it keeps no state of
// its own beyond configuration.
//
// # Composition
//
// Toggles transform whatever buffer is currently working. Absolute
// adjustments (brightness, contrast, blur) always start again from the
// original, so applying the same value twice gives the same result. What
// happens to active toggles on an absolute adjustment is set by Composition:
// with ResetToggles their flags stay set but their effect is discarded until
// they are switched off and on again; with ReapplyToggles they are
// re-applied, in the order they were switched on, on top of the adjusted
// buffer.
//
// Resize only changes the display scale. The working buffer, which is what
// Save writes, keeps its full resolution.
//
// # History
//
// Every mutating operation first pushes the current working buffer and toggle
// state onto the undo stack and clears the redo stack. Undo and Redo move
// whole snapshots between the two stacks; nothing is recomputed. Buffers are
// never mutated after creation, so snapshots share them instead of copying.
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use. Callers
// drive them from a single goroutine.
package editor
