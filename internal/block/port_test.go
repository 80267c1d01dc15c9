package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// portOfKind creates a fresh block owning a single port of the given kind.
func portOfKind(r *Rack, name string, k Kind) *Port {
	b := r.AddBlock(name, "test", nil)
	switch k {
	case ValueIn:
		return b.AddValueIn("p", 0)
	case ValueOut:
		return b.AddValueOut("p")
	case MessageIn:
		return b.AddMessageIn("p")
	case MessageOut:
		return b.AddMessageOut("p")
	default:
		return b.addRelay("p", k, true)
	}
}

func TestConnectCompatibility(t *testing.T) {
	testCases := []struct {
		src, dst Kind
		ok       bool
	}{
		{ValueOut, ValueIn, true},
		{ValueOut, ValueRelay, true},
		{ValueRelay, ValueIn, true},
		{ValueRelay, ValueRelay, true},
		{MessageOut, MessageIn, true},
		{MessageOut, MessageRelay, true},
		{MessageRelay, MessageIn, true},
		{MessageRelay, MessageRelay, true},
		{ValueOut, MessageIn, false},
		{ValueOut, ValueOut, false},
		{ValueIn, ValueIn, false},
		{ValueIn, ValueOut, false},
		{MessageOut, ValueIn, false},
		{MessageOut, ValueRelay, false},
		{MessageIn, MessageOut, false},
		{MessageRelay, ValueRelay, false},
	}

	for _, tc := range testCases {
		t.Run(tc.src.String()+"_to_"+tc.dst.String(), func(t *testing.T) {
			r := New(0, 0)
			src := portOfKind(r, "a", tc.src)
			dst := portOfKind(r, "b", tc.dst)

			err := src.Connect(dst)

			if tc.ok {
				require.NoError(t, err)
				assert.True(t, dst.Connected())
				require.NotNil(t, dst.Source())
				assert.Equal(t, src.ID(), dst.Source().ID())
			} else {
				require.ErrorIs(t, err, ErrIncompatibleConnection)
				assert.False(t, dst.Connected())
			}
		})
	}
}

func TestConnectSingleSource(t *testing.T) {
	r := New(0, 0)
	first := portOfKind(r, "first", ValueOut)
	second := portOfKind(r, "second", ValueOut)
	in := portOfKind(r, "sink", ValueIn)

	require.NoError(t, first.Connect(in))

	err := second.Connect(in)
	require.ErrorIs(t, err, ErrAlreadyConnected)
	assert.Equal(t, first.ID(), in.Source().ID(), "failed connect must not disturb the existing source")

	require.NoError(t, first.Disconnect(in))
	assert.False(t, in.Connected())
	assert.Empty(t, first.Sinks())

	require.NoError(t, second.Connect(in), "input must be reusable after disconnect")
}

func TestDisconnectRequiresConnection(t *testing.T) {
	r := New(0, 0)
	out := portOfKind(r, "a", ValueOut)
	other := portOfKind(r, "b", ValueOut)
	in := portOfKind(r, "c", ValueIn)

	require.ErrorIs(t, out.Disconnect(in), ErrNotConnected)

	require.NoError(t, out.Connect(in))
	require.ErrorIs(t, other.Disconnect(in), ErrNotConnected, "only the actual source may disconnect")
	assert.True(t, in.Connected())
}

func TestOutputFanOut(t *testing.T) {
	r := New(0, 0)
	out := portOfKind(r, "src", ValueOut)

	sinks := []*Port{
		portOfKind(r, "s1", ValueIn),
		portOfKind(r, "s2", ValueIn),
		portOfKind(r, "s3", ValueIn),
	}
	for _, s := range sinks {
		require.NoError(t, out.Connect(s))
	}

	require.Len(t, out.Sinks(), 3)
	for i, s := range out.Sinks() {
		assert.Equal(t, sinks[i].ID(), s.ID(), "sinks keep connection order")
	}
}

func TestValueFallbackAndResolution(t *testing.T) {
	r := New(0, 4)
	b := r.AddBlock("osc", "test", nil)
	freq := b.AddValueIn("frequency", 440)

	assert.Equal(t, 440.0, freq.Value(), "unconnected input reads its fallback")

	src := r.AddBlock("lfo", "test", nil)
	out := src.AddValueOut("out")
	out.SetValue(2.5)
	require.NoError(t, out.Connect(freq))

	assert.Equal(t, 2.5, freq.Value(), "connected input follows its source")

	require.NoError(t, out.Disconnect(freq))
	assert.Equal(t, 440.0, freq.Value(), "fallback survives a connect/disconnect cycle")
}

func TestValueResolutionThroughRelayChain(t *testing.T) {
	r := New(0, 4)
	out := portOfKind(r, "src", ValueOut)
	relay1 := portOfKind(r, "r1", ValueRelay)
	relay2 := portOfKind(r, "r2", ValueRelay)
	in := portOfKind(r, "dst", ValueIn)

	require.NoError(t, out.Connect(relay1))
	require.NoError(t, relay1.Connect(relay2))
	require.NoError(t, relay2.Connect(in))

	out.SetValue(7)
	assert.Equal(t, 7.0, in.Value(), "values chain through relays to the origin")
}

func TestAtBroadcastsScalars(t *testing.T) {
	r := New(0, 4)
	p := portOfKind(r, "a", ValueOut)

	p.SetValue(3)
	assert.Equal(t, 3.0, p.At(0))
	assert.Equal(t, 3.0, p.At(17), "a scalar extends across any index")

	p.SetSignal([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.0, p.At(1))
	assert.Equal(t, 0.0, p.At(9), "reads past a buffer yield silence")
}

func TestMessageQueueDropsOldest(t *testing.T) {
	r := New(0, 0)
	out := portOfKind(r, "src", MessageOut)
	in := portOfKind(r, "dst", MessageIn)
	require.NoError(t, out.Connect(in))

	for i := 0; i < messageQueueCap+5; i++ {
		out.Send(i)
	}

	require.Equal(t, messageQueueCap, in.Pending())

	var got []Message
	for m := range in.Receive() {
		got = append(got, m)
	}
	require.Len(t, got, messageQueueCap)
	assert.Equal(t, 5, got[0], "overflow drops the oldest messages first")
	assert.Equal(t, messageQueueCap+4, got[len(got)-1])
	assert.Zero(t, in.Pending())
}

func TestReceiveIsLazy(t *testing.T) {
	r := New(0, 0)
	out := portOfKind(r, "src", MessageOut)
	in := portOfKind(r, "dst", MessageIn)
	require.NoError(t, out.Connect(in))

	for i := 0; i < 5; i++ {
		out.Send(i)
	}

	var got []Message
	for m := range in.Receive() {
		got = append(got, m)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []Message{0, 1}, got)
	assert.Equal(t, 3, in.Pending(), "breaking out of Receive leaves the rest queued")
}

func TestSendFansOutAndCrossesRelays(t *testing.T) {
	r := New(0, 0)
	out := portOfKind(r, "src", MessageOut)
	relay := portOfKind(r, "relay", MessageRelay)
	direct := portOfKind(r, "direct", MessageIn)
	beyond := portOfKind(r, "beyond", MessageIn)

	require.NoError(t, out.Connect(direct))
	require.NoError(t, out.Connect(relay))
	require.NoError(t, relay.Connect(beyond))

	out.Send("ping")

	assert.Equal(t, 1, direct.Pending())
	assert.Equal(t, 1, beyond.Pending(), "relays forward instead of queueing")
	for m := range beyond.Receive() {
		assert.Equal(t, "ping", m)
	}
}

func TestSelfConnectionIsLegal(t *testing.T) {
	r := New(0, 4)
	b := r.AddBlock("fb", "test", nil)
	in := b.AddValueIn("in", 0)
	out := b.AddValueOut("out")

	require.NoError(t, out.Connect(in), "a block may feed itself")
	out.SetValue(1.5)
	assert.Equal(t, 1.5, in.Value())
}
