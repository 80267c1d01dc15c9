package gen

import (
	"context"
	"math/rand"
	"time"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// noiseArgs are the patch arguments for the noise block. A zero seed picks
// a time-based one, so every run sounds different unless pinned.
type noiseArgs struct {
	Seed      int64   `klang:"seed"`
	Amplitude float64 `klang:"amplitude"`
}

// noise emits uniform white noise in [-amplitude, amplitude].
type noise struct {
	amp  *block.Port
	out  *block.Port
	rand *rand.Rand
}

func (n *noise) Update() {
	buf := n.out.Signal()
	for i := range buf {
		buf[i] = n.amp.At(i) * (2*n.rand.Float64() - 1)
	}
}

func newNoise(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := noiseArgs{Amplitude: 1}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	n := &noise{rand: rand.New(rand.NewSource(seed))}
	b := rack.AddBlock(name, "noise", n)
	n.amp = b.AddValueIn("amplitude", params.Amplitude)
	n.out = b.AddValueOut("out")
	return b, nil
}
