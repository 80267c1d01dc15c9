package bus

import (
	"context"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// Input is a source block fed from outside the rack, the patch-facing end
// of a capture device or a test stimulus. It does no per-tick work; the
// driving loop pushes samples in between ticks.
type Input struct {
	out *block.Port
}

func (i *Input) Update() {}

// Set injects a full buffer. The port keeps the slice, so the caller may
// refill it before each tick.
func (i *Input) Set(buf []float64) { i.out.SetSignal(buf) }

// SetValue injects a scalar that broadcasts across the whole tick.
func (i *Input) SetValue(v float64) { i.out.SetValue(v) }

func newInput(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	if err := args.Decode(ctx, &struct{}{}); err != nil {
		return nil, err
	}

	in := &Input{}
	b := rack.AddBlock(name, "input", in)
	in.out = b.AddValueOut("out")
	in.out.SetValue(0)
	return b, nil
}
