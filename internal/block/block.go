package block

import (
	"fmt"
	"sort"
)

// ID is a stable handle to a block within its Rack.
type ID int

// Updater is the behaviour attached to a block. Update is called once per
// tick, after every predecessor in the execution order has updated, and
// must read inputs and write outputs synchronously.
type Updater interface {
	Update()
}

// UpdateFunc adapts a plain function to the Updater interface.
type UpdateFunc func()

func (f UpdateFunc) Update() { f() }

// Block is a processing node owned by a Rack. It keeps ordered input and
// output port lists; the first port of each list is the primary one used
// by Pipe and Mix.
type Block struct {
	rack     *Rack
	id       ID
	name     string
	typeName string

	inputs  []PortID
	outputs []PortID

	updater Updater
}

// ID returns the block's handle within its rack.
func (b *Block) ID() ID { return b.id }

// Name returns the instance name given at creation.
func (b *Block) Name() string { return b.name }

// Type returns the block's registered type name, e.g. "osc".
func (b *Block) Type() string { return b.typeName }

// Rack returns the rack that owns this block.
func (b *Block) Rack() *Rack { return b.rack }

// Updater returns the behaviour attached to the block, or nil for passive
// blocks.
func (b *Block) Updater() Updater { return b.updater }

// Update runs the block's behaviour for one tick. Passive blocks are a
// no-op.
func (b *Block) Update() {
	if b.updater != nil {
		b.updater.Update()
	}
}

func (b *Block) addPort(name string, k Kind, input bool) *Port {
	p := b.rack.newPort(b.id, name, k)
	if input {
		b.inputs = append(b.inputs, p.id)
	} else {
		b.outputs = append(b.outputs, p.id)
	}
	return p
}

// AddValueIn creates a value input with a fallback read while the port is
// unconnected.
func (b *Block) AddValueIn(name string, fallback float64) *Port {
	p := b.addPort(name, ValueIn, true)
	p.SetValue(fallback)
	return p
}

// AddValueOut creates a value output backed by a zeroed buffer of the
// rack's buffer size. The owner typically grabs the buffer once via Signal
// and refills it in place each tick.
func (b *Block) AddValueOut(name string) *Port {
	p := b.addPort(name, ValueOut, false)
	p.value = make([]float64, b.rack.bufferSize)
	return p
}

// AddMessageIn creates a message input with its own bounded queue.
func (b *Block) AddMessageIn(name string) *Port {
	return b.addPort(name, MessageIn, true)
}

// AddMessageOut creates a message output.
func (b *Block) AddMessageOut(name string) *Port {
	return b.addPort(name, MessageOut, false)
}

// Inputs returns the block's input ports in creation order.
func (b *Block) Inputs() []*Port {
	out := make([]*Port, len(b.inputs))
	for i, id := range b.inputs {
		out[i] = b.rack.port(id)
	}
	return out
}

// Outputs returns the block's output ports in creation order.
func (b *Block) Outputs() []*Port {
	out := make([]*Port, len(b.outputs))
	for i, id := range b.outputs {
		out[i] = b.rack.port(id)
	}
	return out
}

// In returns the primary (first) input port.
func (b *Block) In() (*Port, error) {
	if len(b.inputs) == 0 {
		return nil, fmt.Errorf("block %q has no inputs: %w", b.name, ErrNoPort)
	}
	return b.rack.port(b.inputs[0]), nil
}

// Out returns the primary (first) output port.
func (b *Block) Out() (*Port, error) {
	if len(b.outputs) == 0 {
		return nil, fmt.Errorf("block %q has no outputs: %w", b.name, ErrNoPort)
	}
	return b.rack.port(b.outputs[0]), nil
}

// Input returns the input port with the given name.
func (b *Block) Input(name string) (*Port, error) {
	for _, id := range b.inputs {
		if p := b.rack.port(id); p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("block %q has no input %q: %w", b.name, name, ErrNoPort)
}

// Output returns the output port with the given name.
func (b *Block) Output(name string) (*Port, error) {
	for _, id := range b.outputs {
		if p := b.rack.port(id); p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("block %q has no output %q: %w", b.name, name, ErrNoPort)
}

// Successors returns the blocks fed by this block's outputs, deduplicated
// and sorted by handle. Self-connections are skipped, which keeps
// single-block feedback out of the graph edge set. Only the output list is
// scanned, so a composite reports its outward sinks and never leaks its
// interior.
func (b *Block) Successors() []*Block {
	return b.neighbors(b.outputs, func(p *Port) []ID {
		owners := make([]ID, len(p.sinks))
		for i, id := range p.sinks {
			owners[i] = b.rack.port(id).owner
		}
		return owners
	})
}

// Predecessors returns the blocks feeding this block's inputs,
// deduplicated and sorted by handle, with self-connections skipped.
func (b *Block) Predecessors() []*Block {
	return b.neighbors(b.inputs, func(p *Port) []ID {
		if p.source == NoPort {
			return nil
		}
		return []ID{b.rack.port(p.source).owner}
	})
}

func (b *Block) neighbors(ports []PortID, owners func(*Port) []ID) []*Block {
	seen := make(map[ID]bool)
	var out []*Block
	for _, pid := range ports {
		for _, owner := range owners(b.rack.port(pid)) {
			if owner == b.id || seen[owner] {
				continue
			}
			seen[owner] = true
			out = append(out, b.rack.Block(owner))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
