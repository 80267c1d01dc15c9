package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheler/klang-sub000/internal/engine"
)

type fixedFrames struct {
	frame []float64
}

func (f *fixedFrames) Frame() []float64 { return f.frame }

func TestWriteWAV_ProducesRIFFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	eng := engine.New()
	src := &fixedFrames{frame: []float64{0, 0.5, -0.5, 1}}

	err := WriteWAV(context.Background(), path, eng, src, 8, 2)

	require.NoError(t, err)
	assert.Equal(t, uint64(2), eng.Ticks())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 44, "need a RIFF header plus samples")
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestWriteWAV_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteWAV(ctx, filepath.Join(t.TempDir(), "out.wav"), engine.New(), &fixedFrames{frame: []float64{0}}, 8, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "render stopped after 0 of 5 ticks")
}

func TestWriteWAV_UncreatablePath(t *testing.T) {
	err := WriteWAV(context.Background(), filepath.Join(t.TempDir(), "missing", "out.wav"), engine.New(), &fixedFrames{}, 8, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
