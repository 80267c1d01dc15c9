package spectrum

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// spectrumArgs are the patch arguments for the spectrum block. Size is the
// analysis window in samples and must be a power of two.
type spectrumArgs struct {
	Size int `klang:"size"`
}

// spectrum accumulates its input into a Hann-windowed frame and transforms
// it whenever the frame fills. Each analysis emits the bin magnitudes as a
// message and latches the loudest bin's frequency on the dominant output.
type spectrum struct {
	in       *block.Port
	dominant *block.Port
	spec     *block.Port

	fft        fft.FFT
	window     []float64
	buf        []complex128
	i          int
	sampleRate float64
	bufferSize int
}

func (s *spectrum) Update() {
	for n := 0; n < s.bufferSize; n++ {
		s.buf[s.i] = complex(s.in.At(n)*s.window[s.i], 0)
		s.i++
		if s.i == len(s.buf) {
			s.i = 0
			s.analyze()
		}
	}
}

func (s *spectrum) analyze() {
	s.buf = s.fft.Transform(s.buf)

	mags := make([]float64, len(s.buf)/2)
	peak := 1
	for k := range mags {
		mags[k] = cmplx.Abs(s.buf[k])
		// The DC bin carries no pitch, so it never wins.
		if k > 1 && mags[k] > mags[peak] {
			peak = k
		}
	}

	s.dominant.SetValue(float64(peak) * s.sampleRate / float64(len(s.buf)))
	s.spec.Send(mags)
}

func newSpectrum(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := spectrumArgs{Size: 512}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Size < 4 || params.Size&(params.Size-1) != 0 {
		return nil, fmt.Errorf("spectrum size must be a power of two and at least 4, got %d", params.Size)
	}

	transform, err := fft.New(params.Size)
	if err != nil {
		return nil, fmt.Errorf("spectrum size %d: %w", params.Size, err)
	}

	window := make([]float64, params.Size)
	for i := range window {
		window[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(params.Size))) / 2
	}

	s := &spectrum{
		fft:        transform,
		window:     window,
		buf:        make([]complex128, params.Size),
		sampleRate: rack.SampleRate(),
		bufferSize: rack.BufferSize(),
	}
	b := rack.AddBlock(name, "spectrum", s)
	s.in = b.AddValueIn("in", 0)
	s.dominant = b.AddValueOut("dominant")
	s.dominant.SetValue(0)
	s.spec = b.AddMessageOut("spectrum")
	return b, nil
}
