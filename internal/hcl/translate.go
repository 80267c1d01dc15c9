// This file contains the logic for translating HCL schema structs into the
// format-agnostic patch model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/atheler/klang-sub000/internal/config"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/portaddr"
	"github.com/atheler/klang-sub000/internal/schema"
)

// translateBlock converts the HCL-specific block schema into the agnostic
// model, evaluating every argument expression down to a constant value.
func (l *Loader) translateBlock(ctx context.Context, s *schema.Block) (*config.BlockDef, error) {
	logger := ctxlog.FromContext(ctx).With("block_type", s.Type, "block_name", s.Name)
	logger.Debug("Translating HCL block to internal config model.")

	args, err := l.evaluateArguments(s.Arguments)
	if err != nil {
		return nil, fmt.Errorf("in block '%s' '%s': %w", s.Type, s.Name, err)
	}

	return &config.BlockDef{
		Type:      s.Type,
		Name:      s.Name,
		Arguments: args,
	}, nil
}

// translateWire converts the HCL-specific wire schema into the agnostic
// model, parsing both endpoint addresses.
func (l *Loader) translateWire(ctx context.Context, s *schema.Wire) (*config.WireDef, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating HCL wire to internal config model.", "from", s.From, "to", s.To)

	from, err := portaddr.Parse(s.From)
	if err != nil {
		return nil, fmt.Errorf("invalid wire source %q: %w", s.From, err)
	}
	to, err := portaddr.Parse(s.To)
	if err != nil {
		return nil, fmt.Errorf("invalid wire destination %q: %w", s.To, err)
	}

	return &config.WireDef{From: from, To: to}, nil
}

// evaluateArguments extracts the attributes of an arguments block and
// evaluates each one with a nil evaluation context. Patch arguments are
// constants; anything that needs runtime data arrives over a wire instead,
// so references and function calls are rejected here.
func (l *Loader) evaluateArguments(block *schema.BlockArgs) (map[string]cty.Value, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid arguments block: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	args := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("argument '%s' is not a constant value: %w", name, diags)
		}
		args[name] = val
	}
	return args, nil
}
