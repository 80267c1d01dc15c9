package level

import (
	"context"
	"fmt"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// mixArgs are the patch arguments for the mix block.
type mixArgs struct {
	Inputs int `klang:"inputs"`
}

// newMix builds a summing block with the requested number of inputs,
// named in1 through inN.
func newMix(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := mixArgs{Inputs: 2}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Inputs < 1 {
		return nil, fmt.Errorf("mix needs at least one input, got %d", params.Inputs)
	}

	return block.NewSum(rack, name, params.Inputs), nil
}
