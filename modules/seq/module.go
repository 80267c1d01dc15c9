// Package seq provides the event blocks: a step trigger source and a
// message-gated envelope.
package seq

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sequencing block types with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "trigger",
		Description: "Emits a message every interval, cycling through the step values.",
		New:         newTrigger,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "envelope",
		Description: "Attack/release envelope retriggered by incoming messages.",
		New:         newEnvelope,
	})
}
