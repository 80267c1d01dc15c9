// Package render writes a rack's sink output to an audio file, one tick
// at a time.
package render

import (
	"context"
	"fmt"
	"os"

	"github.com/oov/audio/wave"

	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/engine"
)

// FrameSource yields the most recently computed sink buffer. The output
// bus block satisfies it.
type FrameSource interface {
	Frame() []float64
}

// WriteWAV drives the engine for the given number of ticks and streams
// every captured frame to path as 32-bit float mono WAV.
func WriteWAV(ctx context.Context, path string, eng *engine.Engine, src FrameSource, sampleRate float64, ticks int) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Render starting.", "path", path, "ticks", ticks, "sample_rate", sampleRate)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	const channels = 1
	const bitsPerSample = 32
	w, err := wave.NewWriter(f, &wave.WaveFormatExtensible{Format: wave.WaveFormatEx{
		FormatTag:      wave.WAVE_FORMAT_IEEE_FLOAT,
		Channels:       channels,
		SamplesPerSec:  uint32(sampleRate),
		BitsPerSample:  bitsPerSample,
		AvgBytesPerSec: uint32(sampleRate * channels * bitsPerSample / 8),
		BlockAlign:     uint16(channels * bitsPerSample / 8),
	}})
	if err != nil {
		return fmt.Errorf("failed to open WAV stream: %w", err)
	}
	defer w.Close()

	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render stopped after %d of %d ticks: %w", i, ticks, err)
		}
		eng.Tick()
		for _, s := range src.Frame() {
			n, err := w.WriteFloat64Interleaved([][]float64{{s}})
			if err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
			if n != 1 {
				return fmt.Errorf("short write at tick %d", i)
			}
		}
	}

	logger.Debug("Render complete.", "path", path, "ticks", ticks)
	return nil
}
