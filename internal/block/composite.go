package block

// Composite is a block wrapping an internal sub-graph. Its boundary ports
// are relays: from the outside they look like ordinary inputs and outputs,
// from the inside they act as the interior's sources and sinks.
//
// A composite caches its own execution order and replays it on Update, so
// from the enclosing graph's point of view it is a single opaque block.
// The order is computed by graph.RefreshComposite and must be refreshed
// after the interior wiring changes.
type Composite struct {
	b     *Block
	order []*Block
}

// AddComposite creates an empty composite in the rack.
func (r *Rack) AddComposite(name string) *Composite {
	c := &Composite{}
	c.b = r.AddBlock(name, "composite", c)
	return c
}

func (b *Block) addRelay(name string, k Kind, input bool) *Port {
	return b.addPort(name, k, input)
}

// Block returns the block backing this composite.
func (c *Composite) Block() *Block { return c.b }

// AddValueIn exposes a value relay on the composite's input side. The
// fallback is read by the interior while the relay is unconnected.
func (c *Composite) AddValueIn(name string, fallback float64) *Port {
	p := c.b.addRelay(name, ValueRelay, true)
	p.SetValue(fallback)
	return p
}

// AddValueOut exposes a value relay on the composite's output side.
// Interior blocks connect their outputs into it; outside blocks read
// through it.
func (c *Composite) AddValueOut(name string) *Port {
	return c.b.addRelay(name, ValueRelay, false)
}

// AddMessageIn exposes a message relay on the composite's input side.
// Messages sent from outside pass straight through to interior queues.
func (c *Composite) AddMessageIn(name string) *Port {
	return c.b.addRelay(name, MessageRelay, true)
}

// AddMessageOut exposes a message relay on the composite's output side.
func (c *Composite) AddMessageOut(name string) *Port {
	return c.b.addRelay(name, MessageRelay, false)
}

// SetOrder installs the interior execution order.
func (c *Composite) SetOrder(blocks []*Block) { c.order = blocks }

// Order returns the cached interior execution order.
func (c *Composite) Order() []*Block { return c.order }

// Update runs the interior blocks in their cached order.
func (c *Composite) Update() {
	for _, b := range c.order {
		b.Update()
	}
}
