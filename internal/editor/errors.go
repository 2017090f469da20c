package editor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoImage is returned by operations that need a loaded image when none is.
var ErrNoImage = errors.New("no image loaded")

// DecodeError reports that a file could not be opened as an image. The
// previously loaded state, if any, is unchanged.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that the working buffer could not be written. The edit
// state is unchanged.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot save %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
