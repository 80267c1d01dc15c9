package print

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/registry"
)

// printArgs are the patch arguments for the print block. Interval is the
// time between reports in seconds.
type printArgs struct {
	Interval float64 `klang:"interval"`
}

// printer is a sink that logs a per-frame summary of its input. The logger
// is captured at build time, so reports land wherever the app logs.
type printer struct {
	in     *block.Port
	logger *slog.Logger
	name   string

	bufferSize int
	period     int
	countdown  int
}

func (p *printer) Update() {
	p.countdown--
	if p.countdown > 0 {
		return
	}
	p.countdown = p.period

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < p.bufferSize; i++ {
		s := p.in.At(i)
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	p.logger.Info("Signal tap.",
		"block", p.name,
		"min", lo,
		"max", hi,
		"last", p.in.At(p.bufferSize-1),
	)
}

func newPrint(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := printArgs{Interval: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Interval <= 0 {
		return nil, fmt.Errorf("print interval must be positive, got %v", params.Interval)
	}

	// Reports are aligned to tick boundaries.
	period := int(params.Interval * rack.SampleRate() / float64(rack.BufferSize()))
	if period < 1 {
		period = 1
	}

	p := &printer{
		logger:     ctxlog.FromContext(ctx),
		name:       name,
		bufferSize: rack.BufferSize(),
		period:     period,
		countdown:  1,
	}
	b := rack.AddBlock(name, "print", p)
	p.in = b.AddValueIn("in", 0)
	return b, nil
}
