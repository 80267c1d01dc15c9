package bus

import (
	"context"
	"sort"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// Output is the rack's sink block. Each tick it copies whatever its input
// sees into a private frame, so the driving loop reads a stable buffer
// even while the next tick is being computed.
type Output struct {
	in    *block.Port
	frame []float64
}

func (o *Output) Update() {
	for i := range o.frame {
		o.frame[i] = o.in.At(i)
	}
}

// Frame returns the frame captured by the last tick. The slice is reused
// across ticks; callers that keep samples must copy them out.
func (o *Output) Frame() []float64 { return o.frame }

func newOutput(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	if err := args.Decode(ctx, &struct{}{}); err != nil {
		return nil, err
	}

	out := &Output{frame: make([]float64, rack.BufferSize())}
	b := rack.AddBlock(name, "output", out)
	out.in = b.AddValueIn("in", 0)
	return b, nil
}

// FindOutput returns the first output block among blocks, by patch name
// order. It is how the render and playback loops locate their sink.
func FindOutput(blocks map[string]*block.Block) (*Output, bool) {
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if o, ok := blocks[name].Updater().(*Output); ok {
			return o, true
		}
	}
	return nil, false
}

// FindInput returns the named block's Input when it is one.
func FindInput(blocks map[string]*block.Block, name string) (*Input, bool) {
	blk, ok := blocks[name]
	if !ok {
		return nil, false
	}
	in, ok := blk.Updater().(*Input)
	return in, ok
}
