package seq

import (
	"context"
	"fmt"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// triggerArgs are the patch arguments for the trigger block. Interval is
// in seconds; steps are optional payload values the trigger cycles through,
// one per emission.
type triggerArgs struct {
	Interval float64   `klang:"interval"`
	Steps    []float64 `klang:"steps"`
}

// trigger counts samples and emits a float64 message each time the
// interval elapses. With no steps configured the payload is 0.
type trigger struct {
	out        *block.Port
	bufferSize int
	period     int
	countdown  int
	steps      []float64
	step       int
}

func (t *trigger) Update() {
	for n := 0; n < t.bufferSize; n++ {
		t.countdown--
		if t.countdown > 0 {
			continue
		}
		t.countdown = t.period

		var payload float64
		if len(t.steps) > 0 {
			payload = t.steps[t.step]
			t.step = (t.step + 1) % len(t.steps)
		}
		t.out.Send(payload)
	}
}

func newTrigger(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := triggerArgs{Interval: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Interval <= 0 {
		return nil, fmt.Errorf("trigger interval must be positive, got %v", params.Interval)
	}

	period := int(params.Interval * rack.SampleRate())
	if period < 1 {
		period = 1
	}

	// countdown 1 fires on the very first sample.
	tr := &trigger{
		bufferSize: rack.BufferSize(),
		period:     period,
		countdown:  1,
		steps:      params.Steps,
	}
	b := rack.AddBlock(name, "trigger", tr)
	tr.out = b.AddMessageOut("out")
	return b, nil
}
