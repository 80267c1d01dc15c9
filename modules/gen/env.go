package gen

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/registry"
)

// envArgs are the patch arguments for the env block. Name is the
// environment variable to read; default is used when it is unset.
type envArgs struct {
	Name    string  `klang:"name"`
	Default float64 `klang:"default"`
}

// newEnv builds a constant source whose value comes from an environment
// variable, so a patch can be tuned per run without editing the file. A set
// but unparseable variable is an error rather than a silent fallback.
func newEnv(ctx context.Context, rack *block.Rack, name string, args registry.Args) (*block.Block, error) {
	params := envArgs{}
	if err := args.Decode(ctx, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, fmt.Errorf("env block requires a name argument")
	}

	value := params.Default
	if raw, ok := os.LookupEnv(params.Name); ok {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("environment variable %s=%q is not a number", params.Name, raw)
		}
		value = parsed
	}
	ctxlog.FromContext(ctx).Debug("Environment value resolved.", "variable", params.Name, "value", value)

	b := rack.AddBlock(name, "env", nil)
	b.AddValueOut("out").SetValue(value)
	return b, nil
}
