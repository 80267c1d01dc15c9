// Package engine drives a rack: it resolves the execution order for the
// top-level graph and replays it tick by tick. Execution is strictly
// sequential; one tick finishes before the next begins, and ports written
// by a later block are only seen by earlier blocks on the following tick.
package engine

import (
	"context"
	"fmt"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/graph"
)

// Engine owns the top-level execution order for the graph reachable from
// its root blocks. Composites embedded in that graph carry their own
// cached interior orders and run them when their turn comes.
type Engine struct {
	roots []*block.Block
	order []*block.Block
	ticks uint64
}

// New creates an engine seeded with the given roots. Call Refresh before
// the first tick and after any topology change.
func New(roots ...*block.Block) *Engine {
	return &Engine{roots: roots}
}

// Refresh rediscovers the graph from the engine's roots and recomputes
// the execution order. It must not be called while a tick is running.
func (e *Engine) Refresh(ctx context.Context) {
	g := graph.Discover(ctx, e.roots)
	e.order = g.ExecutionOrder(ctx)
}

// Order returns the current execution order.
func (e *Engine) Order() []*block.Block { return e.order }

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Tick updates every block once, in order.
func (e *Engine) Tick() {
	for _, b := range e.order {
		b.Update()
	}
	e.ticks++
}

// Run executes n ticks, checking for cancellation between ticks. A tick
// in flight always completes.
func (e *Engine) Run(ctx context.Context, n int) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine run starting.", "ticks", n, "blocks", len(e.order))

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run stopped after %d of %d ticks: %w", i, n, err)
		}
		e.Tick()
	}

	logger.Debug("Engine run finished.", "ticks", n)
	return nil
}
