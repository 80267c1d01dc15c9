package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheler/klang-sub000/internal/block"
)

func noopFactory(ctx context.Context, rack *block.Rack, name string, args Args) (*block.Block, error) {
	return rack.AddBlock(name, "noop", nil), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.RegisterBlock(&RegisteredBlock{Type: "osc", New: noopFactory})

	def, err := r.Lookup("osc")
	require.NoError(t, err)
	assert.Equal(t, "osc", def.Type)
	require.NotNil(t, def.New)
}

func TestRegistry_LookupUnknownType(t *testing.T) {
	r := New()

	_, err := r.Lookup("teleporter")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBlockType)
	assert.Contains(t, err.Error(), "teleporter")
}

func TestRegistry_RegisterPanics(t *testing.T) {
	testCases := []struct {
		name string
		def  *RegisteredBlock
	}{
		{name: "empty type", def: &RegisteredBlock{Type: "", New: noopFactory}},
		{name: "nil factory", def: &RegisteredBlock{Type: "osc", New: nil}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			require.Panics(t, func() { r.RegisterBlock(tc.def) })
		})
	}
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := New()
	r.RegisterBlock(&RegisteredBlock{Type: "osc", New: noopFactory})

	require.Panics(t, func() {
		r.RegisterBlock(&RegisteredBlock{Type: "osc", New: noopFactory})
	})
}

func TestRegistry_TypesAreSorted(t *testing.T) {
	r := New()
	for _, name := range []string{"gain", "osc", "clip", "delay"} {
		r.RegisterBlock(&RegisteredBlock{Type: name, New: noopFactory})
	}

	assert.Equal(t, []string{"clip", "delay", "gain", "osc"}, r.Types())
}
