package block

// Defaults applied by New when given non-positive settings.
const (
	DefaultSampleRate = 44100
	DefaultBufferSize = 64
)

// Rack is the arena owning every block and port of one signal graph. All
// handles handed out by a rack stay valid for its lifetime; nothing is
// ever removed. Sample rate and buffer size are fixed at creation so that
// blocks can size their internal state once.
//
// A rack is not safe for concurrent use. Topology changes must not overlap
// with a running tick.
type Rack struct {
	sampleRate float64
	bufferSize int

	blocks []*Block
	ports  []*Port
}

// New creates an empty rack.
func New(sampleRate float64, bufferSize int) *Rack {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Rack{sampleRate: sampleRate, bufferSize: bufferSize}
}

// SampleRate returns the rack-wide sample rate in Hz.
func (r *Rack) SampleRate() float64 { return r.sampleRate }

// BufferSize returns the number of samples produced per tick.
func (r *Rack) BufferSize() int { return r.bufferSize }

// AddBlock creates a block with the given instance name, type name, and
// behaviour. A nil updater makes a passive block.
func (r *Rack) AddBlock(name, typeName string, u Updater) *Block {
	b := &Block{
		rack:     r,
		id:       ID(len(r.blocks)),
		name:     name,
		typeName: typeName,
		updater:  u,
	}
	r.blocks = append(r.blocks, b)
	return b
}

// Block resolves a handle. Handles are dense indices, so an out-of-range
// handle is a programming error and panics.
func (r *Rack) Block(id ID) *Block { return r.blocks[id] }

// Blocks returns every block in creation order. The slice is shared;
// callers must not modify it.
func (r *Rack) Blocks() []*Block { return r.blocks }

func (r *Rack) newPort(owner ID, name string, k Kind) *Port {
	p := &Port{
		rack:   r,
		id:     PortID(len(r.ports)),
		owner:  owner,
		name:   name,
		kind:   k,
		source: NoPort,
	}
	r.ports = append(r.ports, p)
	return p
}

func (r *Rack) port(id PortID) *Port { return r.ports[id] }
