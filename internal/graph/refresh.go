package graph

import (
	"context"

	"github.com/atheler/klang-sub000/internal/block"
)

// RefreshComposite recomputes and installs a composite's interior
// execution order. The interior is discovered from the blocks one hop
// inward through the boundary relays, with the composite itself excluded
// so the walk cannot escape back into the enclosing graph. Call it after
// any change to the interior wiring; nested composites only need their
// own refresh.
func RefreshComposite(ctx context.Context, c *block.Composite) []*block.Block {
	self := c.Block()

	var roots []*block.Block
	for _, p := range self.Inputs() {
		for _, sink := range p.Sinks() {
			roots = append(roots, sink.Owner())
		}
	}
	for _, p := range self.Outputs() {
		if src := p.Source(); src != nil {
			roots = append(roots, src.Owner())
		}
	}

	g := Discover(ctx, roots, self)
	order := g.ExecutionOrder(ctx)
	c.SetOrder(order)
	return order
}
