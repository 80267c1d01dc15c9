package gen

import (
	"context"
	"fmt"
	"math"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// oscArgs are the patch arguments for the osc block.
type oscArgs struct {
	Frequency float64 `klang:"frequency"`
	Shape     string  `klang:"shape"`
}

// shapes maps a shape name to its waveform over one phase cycle in [0, 1).
var shapes = map[string]func(phase float64) float64{
	"sine": func(phase float64) float64 {
		return math.Sin(2 * math.Pi * phase)
	},
	"square": func(phase float64) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	},
	"saw": func(phase float64) float64 {
		return 2*phase - 1
	},
	"triangle": func(phase float64) float64 {
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	},
}

// osc is a phase-accumulator oscillator. The frequency input is read per
// sample, so audio-rate modulation works.
type osc struct {
	freq       *block.Port
	out        *block.Port
	shape      func(float64) float64
	sampleRate float64
	phase      float64
}

func (o *osc) Update() {
	buf := o.out.Signal()
	for i := range buf {
		_, o.phase = math.Modf(o.phase + o.freq.At(i)/o.sampleRate)
		buf[i] = o.shape(o.phase)
	}
}

func newOsc(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := oscArgs{Frequency: 440, Shape: "sine"}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	shape, ok := shapes[params.Shape]
	if !ok {
		return nil, fmt.Errorf("unknown oscillator shape %q", params.Shape)
	}

	o := &osc{shape: shape, sampleRate: rack.SampleRate()}
	b := rack.AddBlock(name, "osc", o)
	o.freq = b.AddValueIn("frequency", params.Frequency)
	o.out = b.AddValueOut("out")
	return b, nil
}
