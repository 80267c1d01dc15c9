package graph

import (
	"context"
	"sort"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
)

// Graph is a frozen snapshot of the blocks reachable from a set of seeds.
// Blocks are addressed by dense indices assigned in discovery order, with
// adjacency lists kept sorted ascending so that every later pass over the
// graph is deterministic.
type Graph struct {
	blocks []*block.Block
	index  map[block.ID]int
	succ   [][]int
	pred   [][]int
}

// Discover collects every block connected to the roots, walking both
// directions breadth-first. Blocks in the exclude list are treated as
// absent: they are never visited and contribute no edges, which is how a
// composite keeps its interior search from escaping through its own
// boundary. Self-connections never become edges.
func Discover(ctx context.Context, roots []*block.Block, exclude ...*block.Block) *Graph {
	logger := ctxlog.FromContext(ctx)

	excluded := make(map[block.ID]bool, len(exclude))
	for _, b := range exclude {
		excluded[b.ID()] = true
	}

	seen := make(map[block.ID]bool)
	var queue, found []*block.Block
	for _, root := range roots {
		if root == nil || seen[root.ID()] || excluded[root.ID()] {
			continue
		}
		seen[root.ID()] = true
		queue = append(queue, root)
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		found = append(found, b)

		for _, n := range append(b.Successors(), b.Predecessors()...) {
			if seen[n.ID()] || excluded[n.ID()] {
				continue
			}
			seen[n.ID()] = true
			queue = append(queue, n)
		}
	}

	g := &Graph{
		blocks: found,
		index:  make(map[block.ID]int, len(found)),
		succ:   make([][]int, len(found)),
		pred:   make([][]int, len(found)),
	}
	for i, b := range found {
		g.index[b.ID()] = i
	}
	for i, b := range found {
		for _, s := range b.Successors() {
			j, ok := g.index[s.ID()]
			if !ok {
				continue
			}
			g.succ[i] = append(g.succ[i], j)
			g.pred[j] = append(g.pred[j], i)
		}
	}
	for i := range g.succ {
		sort.Ints(g.succ[i])
		sort.Ints(g.pred[i])
	}

	logger.Debug("Signal graph discovered.", "blocks", len(g.blocks), "edges", g.edgeCount())
	return g
}

// Len returns the number of blocks in the graph.
func (g *Graph) Len() int { return len(g.blocks) }

// Blocks returns the discovered blocks in index order.
func (g *Graph) Blocks() []*block.Block { return g.blocks }

// Index returns the dense index assigned to b during discovery.
func (g *Graph) Index(b *block.Block) (int, bool) {
	i, ok := g.index[b.ID()]
	return i, ok
}

func (g *Graph) edgeCount() int {
	n := 0
	for _, s := range g.succ {
		n += len(s)
	}
	return n
}
