package fx

import (
	"context"
	"fmt"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// delayArgs are the patch arguments for the delay block. Time is in
// seconds and fixes the ring length at build time; feedback is a live
// input and may exceed 1, at the cost of a runaway loop.
type delayArgs struct {
	Time     float64 `klang:"time"`
	Feedback float64 `klang:"feedback"`
}

// delay reads the sample written one ring length ago and writes the
// current input plus the scaled read-back in its place.
type delay struct {
	in   *block.Port
	fb   *block.Port
	out  *block.Port
	ring []float64
	i    int
}

func (d *delay) Update() {
	buf := d.out.Signal()
	for n := range buf {
		y := d.ring[d.i]
		d.ring[d.i] = d.in.At(n) + y*d.fb.At(n)
		d.i = (d.i + 1) % len(d.ring)
		buf[n] = y
	}
}

func newDelay(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := delayArgs{Time: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Time <= 0 {
		return nil, fmt.Errorf("delay time must be positive, got %v", params.Time)
	}

	length := int(params.Time * rack.SampleRate())
	if length < 1 {
		length = 1
	}

	d := &delay{ring: make([]float64, length)}
	b := rack.AddBlock(name, "delay", d)
	d.in = b.AddValueIn("in", 0)
	d.fb = b.AddValueIn("feedback", params.Feedback)
	d.out = b.AddValueOut("out")
	return b, nil
}
