package seq

import (
	"context"
	"fmt"
	"math"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// envelopeArgs are the patch arguments for the envelope block, both in
// seconds. Zero means instantaneous.
type envelopeArgs struct {
	Attack  float64 `klang:"attack"`
	Release float64 `klang:"release"`
}

// envelope renders an attack/release curve. Any message on the trigger
// input restarts the attack; once the level is within a hair of 1 the
// release takes over. The curve approaches its target exponentially, with
// the rate chosen so the remaining distance shrinks to 1% over the
// configured time.
type envelope struct {
	gate *block.Port
	out  *block.Port

	up, down float64
	rising   bool
	x        float64
}

func (e *envelope) Update() {
	for range e.gate.Receive() {
		e.rising = true
	}

	buf := e.out.Signal()
	for i := range buf {
		if e.rising {
			e.x = 1 - (1-e.x)*e.up
			if e.x > 0.999 {
				e.rising = false
			}
		} else {
			e.x *= e.down
		}
		buf[i] = e.x
	}
}

func newEnvelope(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := envelopeArgs{Attack: 0.01, Release: 0.2}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Attack < 0 || params.Release < 0 {
		return nil, fmt.Errorf("envelope times must not be negative, got attack %v release %v", params.Attack, params.Release)
	}

	e := &envelope{
		up:   math.Pow(.01, 1/(rack.SampleRate()*params.Attack)),
		down: math.Pow(.01, 1/(rack.SampleRate()*params.Release)),
	}
	b := rack.AddBlock(name, "envelope", e)
	e.gate = b.AddMessageIn("trigger")
	e.out = b.AddValueOut("out")
	return b, nil
}
