// Package bus provides the boundary blocks that carry signals into and out
// of a rack: an externally fed input and a frame-capturing output.
package bus

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the bus block types with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "input",
		Description: "Source block whose buffer is injected from outside the rack.",
		New:         newInput,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "output",
		Description: "Sink block whose captured frame the driving loop reads.",
		New:         newOutput,
	})
}
