package editor

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

func TestStore_Load(t *testing.T) {
	src := createGradientImage(30, 20)
	path := writeImage(t, src)

	store := NewStore(0)
	assert.Nil(t, store.State())

	st, err := store.Load(path)
	require.NoError(t, err)
	assert.Same(t, st, store.State())

	assert.True(t, st.Loaded())
	assert.Equal(t, path, st.Path())
	assert.True(t, imaging.Equal(src, st.Original()))
	assert.True(t, imaging.Equal(st.Original(), st.Working()))
	assert.NotSame(t, st.Original(), st.Working(), "working must be a copy")
	assert.Equal(t, 100, st.ScalePercent())
	assert.False(t, st.Active(Grayscale))
	assert.False(t, st.Active(EdgeDetection))
	assert.Equal(t, 0, st.History().UndoDepth())
	assert.Equal(t, 0, st.History().RedoDepth())
}

func TestStore_LoadResetsState(t *testing.T) {
	store, st := loadState(t, 20, 20)
	p := NewPipeline(ResetToggles)
	p.ToggleGrayscale(st)
	p.ResizeBy(st, -30)
	p.AdjustBrightness(st, 10)
	p.ToggleEdgeDetection(st)

	fresh, err := store.Load(st.Path())
	require.NoError(t, err)

	assert.NotSame(t, st, fresh)
	assert.False(t, fresh.Active(Grayscale))
	assert.False(t, fresh.Active(EdgeDetection))
	assert.Equal(t, 100, fresh.ScalePercent())
	assert.Equal(t, 0, fresh.History().UndoDepth())
	assert.Equal(t, 3, imaging.Channels(fresh.Working()))
}

func TestStore_LoadFailureKeepsState(t *testing.T) {
	store, st := loadState(t, 10, 10)
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a png"), 0o644))

	for _, path := range []string{filepath.Join(dir, "missing.png"), garbage, filepath.Join(dir, "x.gif")} {
		_, err := store.Load(path)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %T", err)
		assert.Equal(t, path, decodeErr.Path)
		assert.Same(t, st, store.State())
	}
}

func TestStore_SaveWritesUnscaledWorkingBuffer(t *testing.T) {
	store, st := loadState(t, 40, 30)
	p := NewPipeline(ResetToggles)
	p.ToggleGrayscale(st)
	p.Resize(st, 50)

	require.NoError(t, store.Save())

	saved, err := imaging.Decode(st.Path())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 30), saved.Bounds().Size())
	assert.True(t, imaging.Equal(st.Working(), imaging.ToGray(saved)))
}

func TestStore_SaveWithoutImage(t *testing.T) {
	err := NewStore(0).Save()
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestStore_SaveFailure(t *testing.T) {
	store, st := loadState(t, 10, 10)
	require.NoError(t, os.RemoveAll(filepath.Dir(st.Path())))

	err := store.Save()
	var encodeErr *EncodeError
	require.True(t, errors.As(err, &encodeErr), "want *EncodeError, got %v", err)
	assert.Equal(t, st.Path(), encodeErr.Path)
	assert.True(t, st.Loaded())
}

func TestEditState_NilIsUnloaded(t *testing.T) {
	var st *EditState
	assert.False(t, st.Loaded())
	assert.Nil(t, st.Working())
	assert.Nil(t, st.Original())
	assert.Nil(t, st.Display())
	assert.Equal(t, "", st.Path())
	assert.Equal(t, 100, st.ScalePercent())
	assert.False(t, st.Active(Grayscale))
	assert.False(t, st.Undo())
	assert.False(t, st.Redo())
	st.CaptureSnapshot()
	assert.Equal(t, 0, st.History().UndoDepth())
}

func TestToggle_String(t *testing.T) {
	assert.Equal(t, "grayscale", Grayscale.String())
	assert.Equal(t, "edge_detection", EdgeDetection.String())
	assert.Equal(t, "unknown", Toggle(7).String())
}
