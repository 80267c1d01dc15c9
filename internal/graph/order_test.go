package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency builds sorted succ/pred lists from an edge list over n nodes.
func adjacency(n int, edges [][2]int) (succ, pred [][]int) {
	succ = make([][]int, n)
	pred = make([][]int, n)
	for _, e := range edges {
		succ[e[0]] = append(succ[e[0]], e[1])
		pred[e[1]] = append(pred[e[1]], e[0])
	}
	for i := 0; i < n; i++ {
		sort.Ints(succ[i])
		sort.Ints(pred[i])
	}
	return succ, pred
}

func TestExecutionOrderScenarios(t *testing.T) {
	testCases := []struct {
		name  string
		n     int
		edges [][2]int
		want  []int
	}{
		{
			name: "empty graph",
			n:    0,
			want: []int{},
		},
		{
			name: "single node",
			n:    1,
			want: []int{0},
		},
		{
			name:  "chain",
			n:     3,
			edges: [][2]int{{0, 1}, {1, 2}},
			want:  []int{0, 1, 2},
		},
		{
			name:  "two node cycle",
			n:     2,
			edges: [][2]int{{0, 1}, {1, 0}},
			want:  []int{0, 1},
		},
		{
			name:  "three node cycle",
			n:     3,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 0}},
			want:  []int{0, 1, 2},
		},
		{
			name:  "diamond",
			n:     5,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 3}},
			want:  []int{0, 1, 4, 2, 3},
		},
		{
			name:  "self loop",
			n:     1,
			edges: [][2]int{{0, 0}},
			want:  []int{0},
		},
		{
			name:  "disconnected components",
			n:     4,
			edges: [][2]int{{0, 1}, {2, 3}},
			want:  []int{0, 2, 1, 3},
		},
		{
			// Source 2 feeds the 0<->1 loop through node 1, so node 1 is
			// inspected first, edge 0->1 is severed, and 1->0 stays live.
			name:  "cycle with entry",
			n:     3,
			edges: [][2]int{{2, 1}, {0, 1}, {1, 0}},
			want:  []int{2, 1, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			succ, pred := adjacency(tc.n, tc.edges)

			got := executionOrder(succ, pred)

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecutionOrderIsTotal(t *testing.T) {
	graphs := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"five node ring", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
		{"two tangled cycles", 4, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 1}}},
		{"dense fan", 6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 5}, {5, 1}}},
		{"isolated nodes", 3, nil},
	}

	for _, tg := range graphs {
		t.Run(tg.name, func(t *testing.T) {
			succ, pred := adjacency(tg.n, tg.edges)

			got := executionOrder(succ, pred)

			require.Len(t, got, tg.n, "every node must be ordered")
			seen := make(map[int]bool)
			for _, v := range got {
				require.False(t, seen[v], "node %d ordered twice", v)
				seen[v] = true
			}
		})
	}
}

func TestExecutionOrderIsDeterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}, {5, 3}}
	succ, pred := adjacency(6, edges)

	first := executionOrder(succ, pred)
	second := executionOrder(succ, pred)

	assert.Equal(t, first, second, "repeated runs over the same graph must agree")
}

func TestExecutionOrderRespectsAcyclicEdges(t *testing.T) {
	// A DAG needs no severing, so every edge must point forward in the order.
	edges := [][2]int{{0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 5}, {4, 5}, {1, 4}}
	succ, pred := adjacency(6, edges)

	got := executionOrder(succ, pred)

	pos := make(map[int]int, len(got))
	for i, v := range got {
		pos[v] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d->%d runs backwards", e[0], e[1])
	}
}

func TestExecutionOrderLeavesInputUntouched(t *testing.T) {
	succ, pred := adjacency(2, [][2]int{{0, 1}, {1, 0}})

	executionOrder(succ, pred)

	assert.Equal(t, [][]int{{1}, {0}}, succ, "severing must work on a copy")
	assert.Equal(t, [][]int{{1}, {0}}, pred)
}
