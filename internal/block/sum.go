package block

import "fmt"

// sum adds every value input sample-wise onto its output buffer. Inputs
// may be added after creation, so Update re-reads the port list each tick.
type sum struct {
	b   *Block
	out *Port
}

func (s *sum) Update() {
	buf := s.out.Signal()
	ins := s.b.Inputs()
	for i := range buf {
		var acc float64
		for _, in := range ins {
			acc += in.At(i)
		}
		buf[i] = acc
	}
}

// NewSum creates a summing block with the given number of value inputs,
// named in1, in2, and so on. Unconnected inputs contribute 0.
func NewSum(r *Rack, name string, inputs int) *Block {
	s := &sum{}
	s.b = r.AddBlock(name, "sum", s)
	s.out = s.b.AddValueOut("out")
	for i := 0; i < inputs; i++ {
		s.b.AddValueIn(fmt.Sprintf("in%d", i+1), 0)
	}
	return s.b
}

// Pipe connects from's primary output to to's primary input and returns
// to, so calls chain left to right along a signal path.
func Pipe(from, to *Block) (*Block, error) {
	out, err := from.Out()
	if err != nil {
		return nil, err
	}
	in, err := to.In()
	if err != nil {
		return nil, err
	}
	if err := out.Connect(in); err != nil {
		return nil, err
	}
	return to, nil
}

// Mix creates a summing block and feeds every source's primary output into
// it. The sum is returned for further piping.
func Mix(r *Rack, name string, sources ...*Block) (*Block, error) {
	return MixInto(NewSum(r, name, 0), sources...)
}

// MixInto feeds every source's primary output into sink, reusing free
// value inputs and growing the input list when none are left. It returns
// sink. The usual sink is a block made by NewSum, but any block whose
// inputs add together works.
func MixInto(sink *Block, sources ...*Block) (*Block, error) {
	for _, src := range sources {
		out, err := src.Out()
		if err != nil {
			return nil, err
		}
		if err := out.Connect(sink.freeValueIn()); err != nil {
			return nil, err
		}
	}
	return sink, nil
}

func (b *Block) freeValueIn() *Port {
	for _, id := range b.inputs {
		if p := b.rack.port(id); p.kind == ValueIn && p.source == NoPort {
			return p
		}
	}
	return b.AddValueIn(fmt.Sprintf("in%d", len(b.inputs)+1), 0)
}
