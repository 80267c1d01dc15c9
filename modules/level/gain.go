package level

import (
	"context"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// gainArgs are the patch arguments for the gain block.
type gainArgs struct {
	Gain float64 `klang:"gain"`
}

// gain multiplies its signal input by its gain input sample-wise. Feeding
// the gain input from another block turns this into a VCA.
type gain struct {
	in     *block.Port
	amount *block.Port
	out    *block.Port
}

func (g *gain) Update() {
	buf := g.out.Signal()
	for i := range buf {
		buf[i] = g.in.At(i) * g.amount.At(i)
	}
}

func newGain(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := gainArgs{Gain: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}

	g := &gain{}
	b := rack.AddBlock(name, "gain", g)
	g.in = b.AddValueIn("in", 0)
	g.amount = b.AddValueIn("gain", params.Gain)
	g.out = b.AddValueOut("out")
	return b, nil
}
