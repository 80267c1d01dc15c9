package graph

import (
	"context"
	"testing"

	"github.com/atheler/klang-sub000/internal/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWrapped assembles outer -> [composite: first -> second] -> sink and
// returns the pieces.
func buildWrapped(t *testing.T, r *block.Rack) (outer *block.Block, c *block.Composite, first, second, sink *block.Block) {
	t.Helper()

	outer = r.AddBlock("outer", "test", nil)
	outerOut := outer.AddValueOut("out")

	c = r.AddComposite("wrap")
	relayIn := c.AddValueIn("in", 0)
	relayOut := c.AddValueOut("out")

	first = r.AddBlock("first", "test", nil)
	second = r.AddBlock("second", "test", nil)
	require.NoError(t, relayIn.Connect(first.AddValueIn("in", 0)))
	require.NoError(t, first.AddValueOut("out").Connect(second.AddValueIn("in", 0)))
	require.NoError(t, second.AddValueOut("out").Connect(relayOut))

	sink = r.AddBlock("sink", "test", nil)
	require.NoError(t, outerOut.Connect(relayIn))
	require.NoError(t, relayOut.Connect(sink.AddValueIn("in", 0)))
	return outer, c, first, second, sink
}

func TestRefreshCompositeOrdersInterior(t *testing.T) {
	ctx := context.Background()
	r := block.New(0, 4)
	_, c, first, second, _ := buildWrapped(t, r)

	order := RefreshComposite(ctx, c)

	require.Len(t, order, 2)
	assert.Equal(t, first.ID(), order[0].ID())
	assert.Equal(t, second.ID(), order[1].ID())
	assert.Equal(t, order, c.Order(), "the refreshed order is installed on the composite")
}

func TestRefreshCompositeStaysInside(t *testing.T) {
	ctx := context.Background()
	r := block.New(0, 4)
	outer, c, _, _, sink := buildWrapped(t, r)

	order := RefreshComposite(ctx, c)

	for _, b := range order {
		assert.NotEqual(t, outer.ID(), b.ID(), "the outer feed must not enter the interior order")
		assert.NotEqual(t, sink.ID(), b.ID())
		assert.NotEqual(t, c.Block().ID(), b.ID(), "the composite never schedules itself")
	}
}

func TestOuterGraphSeesCompositeAsOneBlock(t *testing.T) {
	ctx := context.Background()
	r := block.New(0, 4)
	outer, c, first, second, sink := buildWrapped(t, r)

	g := Discover(ctx, []*block.Block{sink})

	require.Equal(t, 3, g.Len(), "outer discovery sees outer, composite, sink")
	for _, inner := range []*block.Block{first, second} {
		_, ok := g.Index(inner)
		assert.False(t, ok, "interior block %s leaked into the outer graph", inner.Name())
	}

	order := g.ExecutionOrder(ctx)
	require.Len(t, order, 3)
	assert.Equal(t, outer.ID(), order[0].ID())
	assert.Equal(t, c.Block().ID(), order[1].ID())
	assert.Equal(t, sink.ID(), order[2].ID())
}

func TestRefreshCompositeEmptyInterior(t *testing.T) {
	ctx := context.Background()
	r := block.New(0, 4)
	c := r.AddComposite("hollow")
	c.AddValueIn("in", 0)
	c.AddValueOut("out")

	order := RefreshComposite(ctx, c)

	assert.Empty(t, order, "a composite with unbound relays has nothing to run")
}
