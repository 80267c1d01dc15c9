package patch

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/config"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/registry"
)

// Options carries the rack parameters for a build. Non-positive values fall
// back to the rack defaults.
type Options struct {
	SampleRate float64
	BufferSize int
}

// Built is the result of a successful build: the rack and every block
// instance, keyed by its patch name.
type Built struct {
	Rack   *block.Rack
	Blocks map[string]*block.Block
}

// Block returns the named block instance.
func (b *Built) Block(name string) (*block.Block, bool) {
	blk, ok := b.Blocks[name]
	return blk, ok
}

// Build constructs a complete, wired rack from a patch model. All
// instantiation and wiring errors are aggregated into a single error.
func Build(ctx context.Context, model *config.Model, reg *registry.Registry, opts Options) (*Built, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting patch construction.")

	built := &Built{
		Rack:   block.New(opts.SampleRate, opts.BufferSize),
		Blocks: make(map[string]*block.Block),
	}
	if model == nil || model.Patch == nil {
		logger.Debug("Build: empty model, returning bare rack.")
		return built, nil
	}

	var errs *multierror.Error

	// First pass: instantiate all declared blocks.
	for _, def := range model.Patch.Blocks {
		if _, exists := built.Blocks[def.Name]; exists {
			errs = multierror.Append(errs, fmt.Errorf("duplicate block name %q", def.Name))
			continue
		}

		registered, err := reg.Lookup(def.Type)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("block %q: %w", def.Name, err))
			continue
		}

		blk, err := registered.New(ctx, built.Rack, def.Name, registry.Args(def.Arguments))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to build block %q (%s): %w", def.Name, def.Type, err))
			continue
		}
		built.Blocks[def.Name] = blk
	}
	logger.Debug("Build: block instantiation complete.", "count", len(built.Blocks))

	// Second pass: connect wires.
	for _, wire := range model.Patch.Wires {
		if err := connect(built, wire); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	logger.Debug("Build: wiring complete.", "count", len(model.Patch.Wires))

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	logger.Debug("Build: patch construction successful.",
		"blocks", len(built.Blocks),
		"wires", len(model.Patch.Wires),
	)
	return built, nil
}

// connect resolves both endpoints of a wire and connects them.
func connect(built *Built, w *config.WireDef) error {
	src, ok := built.Blocks[w.From.Block]
	if !ok {
		return fmt.Errorf("wire source %q: unknown block", w.From.String())
	}
	dst, ok := built.Blocks[w.To.Block]
	if !ok {
		return fmt.Errorf("wire destination %q: unknown block", w.To.String())
	}

	var from *block.Port
	var err error
	if w.From.HasPort() {
		from, err = src.Output(w.From.Port)
	} else {
		from, err = src.Out()
	}
	if err != nil {
		return fmt.Errorf("wire source %q: %w", w.From.String(), err)
	}

	var to *block.Port
	if w.To.HasPort() {
		to, err = dst.Input(w.To.Port)
	} else {
		to, err = dst.In()
	}
	if err != nil {
		return fmt.Errorf("wire destination %q: %w", w.To.String(), err)
	}

	if err := from.Connect(to); err != nil {
		return fmt.Errorf("cannot wire %q to %q: %w", w.From.String(), w.To.String(), err)
	}
	return nil
}
