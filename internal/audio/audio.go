// Package audio plays a rack's sink output through the default output
// device using blocking writes, one tick per hardware buffer.
package audio

import (
	"context"
	"fmt"
	"math"

	pa "github.com/gordonklaus/portaudio"

	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/engine"
)

// FrameSource yields the most recently computed sink buffer. The output
// bus block satisfies it.
type FrameSource interface {
	Frame() []float64
}

// Play streams the sink to the default output device. With ticks > 0 it
// stops after that many buffers; otherwise it runs until ctx is cancelled.
func Play(ctx context.Context, eng *engine.Engine, src FrameSource, sampleRate float64, bufferSize, ticks int) error {
	logger := ctxlog.FromContext(ctx)

	if err := pa.Initialize(); err != nil {
		return fmt.Errorf("unable to set up portaudio: %w", err)
	}
	defer func() {
		if err := pa.Terminate(); err != nil {
			logger.Warn("Portaudio termination failed.", "error", err)
		}
	}()

	out := make([]float32, bufferSize)
	stream, err := pa.OpenDefaultStream(0, 1, sampleRate, bufferSize, &out)
	if err != nil {
		return fmt.Errorf("unable to open output stream: %w", err)
	}
	defer stream.Close()

	logger.Debug("Playback starting.", "sample_rate", sampleRate, "buffer", bufferSize, "ticks", ticks)
	if err := stream.Start(); err != nil {
		return fmt.Errorf("unable to start output stream: %w", err)
	}
	defer stream.Stop()

	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			logger.Debug("Playback cancelled.", "ticks_played", i)
			return nil
		}
		eng.Tick()

		frame := src.Frame()
		for n := range out {
			out[n] = float32(clip(frameAt(frame, n)))
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	logger.Debug("Playback finished.", "ticks", ticks)
	return nil
}

// frameAt reads the n-th sample with the same broadcast rule ports use:
// scalars repeat and short frames pad with silence.
func frameAt(frame []float64, n int) float64 {
	switch {
	case len(frame) == 1:
		return frame[0]
	case n < len(frame):
		return frame[n]
	default:
		return 0
	}
}

// clip keeps samples inside [-1, 1] so a hot patch cannot hand the device
// values that wrap around.
func clip(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}
