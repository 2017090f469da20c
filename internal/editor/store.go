package editor

import (
	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Store owns the EditState of the open image.
type Store struct {
	state        *EditState
	historyLimit int
}

// NewStore creates an empty store. historyLimit bounds the undo stack of every
// state it loads; 0 means unbounded.
func NewStore(historyLimit int) *Store {
	return &Store{historyLimit: historyLimit}
}

// State returns the current state, or nil before the first successful Load.
func (s *Store) State() *EditState {
	return s.state
}

// Load decodes the image at path and replaces the current state with a fresh
// one: toggles off, history empty, scale 100%.
//
// On failure it returns a *DecodeError and the current state is kept.
func (s *Store) Load(path string) (*EditState, error) {
	img, err := imaging.Decode(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	s.state = newEditState(path, img, s.historyLimit)
	return s.state, nil
}

// Save writes the working buffer, at full resolution, over the file it was
// loaded from.
//
// It returns ErrNoImage if nothing is loaded and *EncodeError if the file
// cannot be written.
func (s *Store) Save() error {
	if !s.state.Loaded() {
		return ErrNoImage
	}
	if err := imaging.Encode(s.state.path, s.state.working); err != nil {
		return &EncodeError{Path: s.state.path, Err: err}
	}
	return nil
}
