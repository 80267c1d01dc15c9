package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/atheler/klang-sub000/internal/block"
)

// ErrUnknownBlockType is returned when a patch declares a block type no
// module has registered.
var ErrUnknownBlockType = fmt.Errorf("unknown block type")

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds one block instance inside the given rack. The returned
// block owns its ports; args carry the evaluated patch arguments.
type Factory func(ctx context.Context, rack *block.Rack, name string, args Args) (*block.Block, error)

// RegisteredBlock holds the compiled Go parts of one block type.
type RegisteredBlock struct {
	Type        string
	Description string
	New         Factory
}

// Registry holds all registered block factories for a single application
// instance.
type Registry struct {
	factories map[string]*RegisteredBlock
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]*RegisteredBlock),
	}
}

// RegisterBlock registers a block type factory.
func (r *Registry) RegisterBlock(def *RegisteredBlock) {
	if def.Type == "" {
		panic("block type must not be empty")
	}
	if def.New == nil {
		panic(fmt.Sprintf("block type '%s' registered without a factory", def.Type))
	}
	if _, exists := r.factories[def.Type]; exists {
		panic(fmt.Sprintf("block type '%s' already registered", def.Type))
	}
	slog.Debug("Registering block type.", "type", def.Type)
	r.factories[def.Type] = def
}

// Lookup returns the registered factory for a block type.
func (r *Registry) Lookup(blockType string) (*RegisteredBlock, error) {
	def, ok := r.factories[blockType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, blockType)
	}
	return def, nil
}

// Types returns all registered block type names in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
