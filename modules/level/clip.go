package level

import (
	"context"
	"fmt"
	"math"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// clipArgs are the patch arguments for the clip block.
type clipArgs struct {
	Low  float64 `klang:"low"`
	High float64 `klang:"high"`
}

// clip hard-limits every sample to [low, high].
type clip struct {
	in        *block.Port
	out       *block.Port
	low, high float64
}

func (c *clip) Update() {
	buf := c.out.Signal()
	for i := range buf {
		buf[i] = math.Min(c.high, math.Max(c.low, c.in.At(i)))
	}
}

func newClip(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := clipArgs{Low: -1, High: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Low >= params.High {
		return nil, fmt.Errorf("clip range is empty: low %v >= high %v", params.Low, params.High)
	}

	c := &clip{low: params.Low, high: params.High}
	b := rack.AddBlock(name, "clip", c)
	c.in = b.AddValueIn("in", 0)
	c.out = b.AddValueOut("out")
	return b, nil
}
