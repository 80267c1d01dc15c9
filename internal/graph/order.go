package graph

import (
	"context"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
)

// ExecutionOrder linearizes the graph into the order blocks must update
// within one tick. Acyclic regions come out in topological order; feedback
// cycles are broken by severing one back edge per cycle, chosen
// deterministically, so the result always contains every block exactly
// once. The severing happens on a scratch copy of the adjacency and never
// touches the underlying connections.
func (g *Graph) ExecutionOrder(ctx context.Context) []*block.Block {
	order := executionOrder(g.succ, g.pred)

	blocks := make([]*block.Block, len(order))
	for i, idx := range order {
		blocks[i] = g.blocks[idx]
	}

	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.Name()
	}
	ctxlog.FromContext(ctx).Debug("Execution order resolved.", "order", names)
	return blocks
}

// executionOrder runs the two-queue scheduling pass over index adjacency.
//
// The ready queue starts with the pure sources (no predecessors) ascending;
// the waiting pool starts with every node ascending, guaranteeing each node
// is eventually considered even inside a cycle with no entry point. Nodes
// are popped ready-first. A popped node whose live predecessors are all
// ordered is appended to the order and its successors are pushed ready;
// otherwise it severs its first edge into an already-visited successor and
// pushes that successor ready, or, lacking one, defers by pushing all its
// successors back onto the waiting pool. Severed edges stay severed for
// the rest of the pass, which is what lets a cycle drain: eventually some
// member has only severed or ordered edges behind it.
func executionOrder(succ, pred [][]int) []int {
	n := len(succ)
	succ = cloneAdjacency(succ)
	pred = cloneAdjacency(pred)

	ordered := make([]bool, n)
	visited := make([]bool, n)

	var ready, waiting []int
	for i := 0; i < n; i++ {
		if len(pred[i]) == 0 {
			ready = append(ready, i)
		}
	}
	for i := 0; i < n; i++ {
		waiting = append(waiting, i)
	}

	order := make([]int, 0, n)
	for len(ready) > 0 || len(waiting) > 0 {
		var u int
		if len(ready) > 0 {
			u, ready = ready[0], ready[1:]
		} else {
			u, waiting = waiting[0], waiting[1:]
		}
		if ordered[u] {
			continue
		}
		visited[u] = true

		if allOrdered(pred[u], ordered) {
			ordered[u] = true
			order = append(order, u)
			ready = append(ready, succ[u]...)
			continue
		}

		severed := false
		for _, v := range succ[u] {
			if visited[v] {
				removeEdge(succ, u, v)
				removeEdge(pred, v, u)
				ready = append(ready, v)
				severed = true
				break
			}
		}
		if !severed {
			waiting = append(waiting, succ[u]...)
		}
	}
	return order
}

func allOrdered(nodes []int, ordered []bool) bool {
	for _, p := range nodes {
		if !ordered[p] {
			return false
		}
	}
	return true
}

func cloneAdjacency(adj [][]int) [][]int {
	out := make([][]int, len(adj))
	for i, edges := range adj {
		out[i] = append([]int(nil), edges...)
	}
	return out
}

func removeEdge(adj [][]int, from, to int) {
	edges := adj[from]
	for i, v := range edges {
		if v == to {
			adj[from] = append(edges[:i], edges[i+1:]...)
			return
		}
	}
}
