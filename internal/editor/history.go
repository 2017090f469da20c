package editor

// History is a pair of undo/redo stacks of snapshots.
//
// A positive limit bounds the undo stack; capturing beyond it drops the
// oldest snapshot.
type History struct {
	undo  []frame
	redo  []frame
	limit int
}

func newHistory(limit int) History {
	if limit < 0 {
		limit = 0
	}
	return History{limit: limit}
}

// capture pushes f onto the undo stack and discards any redo path.
func (h *History) capture(f frame) {
	h.undo = append(h.undo, f)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = append(h.undo[:0:0], h.undo[len(h.undo)-h.limit:]...)
	}
	h.redo = nil
}

// back pops the undo stack, pushing cur onto the redo stack.
func (h *History) back(cur frame) (frame, bool) {
	if len(h.undo) == 0 {
		return cur, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cur)
	return prev, true
}

// forward pops the redo stack, pushing cur onto the undo stack.
func (h *History) forward(cur frame) (frame, bool) {
	if len(h.redo) == 0 {
		return cur, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cur)
	return next, true
}

// UndoDepth returns the number of snapshots available to Undo.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of snapshots available to Redo.
func (h *History) RedoDepth() int { return len(h.redo) }
