package config

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/atheler/klang-sub000/internal/portaddr"
)

// Model is the unified, format-agnostic representation of a loaded patch.
type Model struct {
	Patch *Patch
}

// Patch describes a signal graph declaratively: which block instances
// exist and how their ports are wired together.
type Patch struct {
	Blocks []*BlockDef
	Wires  []*WireDef
}

// BlockDef is the format-agnostic representation of one block instance.
// Arguments are fully evaluated at load time; patches carry constants,
// runtime values flow through wires instead.
type BlockDef struct {
	Type      string
	Name      string
	Arguments map[string]cty.Value
}

// WireDef is the format-agnostic representation of one connection, from a
// source endpoint to a destination endpoint. Endpoints without a port
// segment address the block's primary port.
type WireDef struct {
	From portaddr.Addr
	To   portaddr.Addr
}
