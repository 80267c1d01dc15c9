// Package fx provides time-based effect blocks.
package fx

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the effect block types with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "delay",
		Description: "Ring-buffer delay line with a feedback input.",
		New:         newDelay,
	})
}
