package block

import (
	"fmt"
	"iter"
)

// PortID is a stable handle to a port within its Rack.
type PortID int

// NoPort marks the absence of a port handle, e.g. an unconnected input.
const NoPort PortID = -1

// Kind classifies a port by family (value or message) and role (input,
// output, or relay). Relays sit on composite boundaries and behave as an
// input on one side and an output on the other.
type Kind uint8

const (
	ValueIn Kind = iota
	ValueOut
	ValueRelay
	MessageIn
	MessageOut
	MessageRelay
)

var kindNames = [...]string{
	ValueIn:      "value-input",
	ValueOut:     "value-output",
	ValueRelay:   "value-relay",
	MessageIn:    "message-input",
	MessageOut:   "message-output",
	MessageRelay: "message-relay",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsValue reports whether the port carries sampled values.
func (k Kind) IsValue() bool { return k <= ValueRelay }

// IsMessage reports whether the port carries discrete messages.
func (k Kind) IsMessage() bool { return k >= MessageIn }

// IsRelay reports whether the port forwards across a composite boundary.
func (k Kind) IsRelay() bool { return k == ValueRelay || k == MessageRelay }

// canFeed is the connection compatibility table, indexed source kind first.
// Outputs and relays feed inputs and relays of the same family; everything
// else is rejected.
var canFeed = [6][6]bool{
	ValueOut:     {ValueIn: true, ValueRelay: true},
	ValueRelay:   {ValueIn: true, ValueRelay: true},
	MessageOut:   {MessageIn: true, MessageRelay: true},
	MessageRelay: {MessageIn: true, MessageRelay: true},
}

func (k Kind) feeds(dst Kind) bool { return canFeed[k][dst] }

// messageQueueCap bounds the per-port message queue. When a queue is full
// the oldest message is dropped to make room for the newest.
const messageQueueCap = 50

// Port is one endpoint on a block. Value ports hold a slice of samples; a
// single-element slice acts as a scalar that broadcasts across a buffer.
// Message inputs additionally own a bounded FIFO queue filled by Send.
//
// Connections are directional: exactly one source may feed a port, while a
// source may fan out to any number of sinks.
type Port struct {
	rack  *Rack
	id    PortID
	owner ID
	name  string
	kind  Kind

	value []float64
	queue []Message

	source PortID
	sinks  []PortID
}

// Message is an opaque payload delivered through message ports.
type Message = any

// ID returns the port's handle within its rack.
func (p *Port) ID() PortID { return p.id }

// Name returns the port name, unique per block by convention.
func (p *Port) Name() string { return p.name }

// Kind returns the port's family and role.
func (p *Port) Kind() Kind { return p.kind }

// Owner returns the block this port belongs to.
func (p *Port) Owner() *Block { return p.rack.Block(p.owner) }

// String renders the port as "block.port" for diagnostics.
func (p *Port) String() string {
	return p.rack.Block(p.owner).name + "." + p.name
}

// Connected reports whether a source currently feeds this port.
func (p *Port) Connected() bool { return p.source != NoPort }

// Source returns the port feeding this one, or nil.
func (p *Port) Source() *Port {
	if p.source == NoPort {
		return nil
	}
	return p.rack.port(p.source)
}

// Sinks returns the ports this one feeds, in connection order.
func (p *Port) Sinks() []*Port {
	out := make([]*Port, len(p.sinks))
	for i, id := range p.sinks {
		out[i] = p.rack.port(id)
	}
	return out
}

// Connect wires this port into dst. The receiver acts as the source, so it
// must be an output or relay compatible with dst's kind, and dst must not
// already have a source. On success the connection is visible symmetrically
// from both ends; on failure nothing changes.
func (p *Port) Connect(dst *Port) error {
	if !p.kind.feeds(dst.kind) {
		return fmt.Errorf("cannot connect %s (%s) to %s (%s): %w",
			p, p.kind, dst, dst.kind, ErrIncompatibleConnection)
	}
	if dst.source != NoPort {
		return fmt.Errorf("cannot connect %s to %s: %w", p, dst, ErrAlreadyConnected)
	}
	dst.source = p.id
	p.sinks = append(p.sinks, dst.id)
	return nil
}

// Disconnect removes the connection from this port to dst. Both endpoints
// are updated together, and dst becomes free to accept a new source.
func (p *Port) Disconnect(dst *Port) error {
	if dst.source != p.id {
		return fmt.Errorf("cannot disconnect %s from %s: %w", p, dst, ErrNotConnected)
	}
	dst.source = NoPort
	for i, id := range p.sinks {
		if id == dst.id {
			p.sinks = append(p.sinks[:i], p.sinks[i+1:]...)
			break
		}
	}
	return nil
}

// Signal returns the samples currently visible at this port. Connected
// ports follow their source, chaining through relays; unconnected ports
// fall back to their own stored value.
func (p *Port) Signal() []float64 {
	if p.source != NoPort {
		return p.rack.port(p.source).Signal()
	}
	return p.value
}

// Value returns the first visible sample, or 0 when the port holds nothing.
func (p *Port) Value() float64 {
	s := p.Signal()
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// At returns the i-th visible sample. Scalars broadcast across every index
// and reads past the end of a buffer yield 0.
func (p *Port) At(i int) float64 {
	s := p.Signal()
	switch {
	case len(s) == 1:
		return s[0]
	case i < len(s):
		return s[i]
	default:
		return 0
	}
}

// SetValue stores a scalar on the port, reusing the slot when possible.
func (p *Port) SetValue(v float64) {
	if len(p.value) == 1 {
		p.value[0] = v
		return
	}
	p.value = []float64{v}
}

// SetSignal replaces the port's stored samples with buf. The port keeps a
// reference, so the owner may refill buf in place on later updates.
func (p *Port) SetSignal(buf []float64) { p.value = buf }

// Send pushes m to every connected receiver. Message relays forward to
// their own sinks, so a payload crosses composite boundaries in one call.
// Sending from a value port is a programming error.
func (p *Port) Send(m Message) {
	if !p.kind.IsMessage() {
		panic(fmt.Sprintf("block: Send on %s port %s", p.kind, p))
	}
	for _, id := range p.sinks {
		p.rack.port(id).deliver(m)
	}
}

func (p *Port) deliver(m Message) {
	if p.kind == MessageRelay {
		for _, id := range p.sinks {
			p.rack.port(id).deliver(m)
		}
		return
	}
	p.queue = append(p.queue, m)
	if len(p.queue) > messageQueueCap {
		p.queue = p.queue[1:]
	}
}

// Pending returns the number of queued messages.
func (p *Port) Pending() int { return len(p.queue) }

// Receive drains the port's queue lazily, oldest first. The sequence ends
// when the queue is empty at the moment of the next pull, so messages sent
// mid-iteration are still observed.
func (p *Port) Receive() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for len(p.queue) > 0 {
			m := p.queue[0]
			p.queue = p.queue[1:]
			if !yield(m) {
				return
			}
		}
	}
}
