package gen

import (
	"context"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/registry"
)

// constantArgs are the patch arguments for the constant block.
type constantArgs struct {
	Value float64 `klang:"value"`
}

// newConstant builds a block whose output holds a fixed scalar. Scalars
// broadcast across a whole buffer, so no per-tick work is needed.
func newConstant(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := constantArgs{}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}

	b := rack.AddBlock(name, "constant", nil)
	b.AddValueOut("out").SetValue(params.Value)
	return b, nil
}
