// Package level provides the amplitude blocks: gain, mix, and clip.
package level

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the level block types with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "gain",
		Description: "Multiplies the signal by the gain input.",
		New:         newGain,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "mix",
		Description: "Sums any number of inputs.",
		New:         newMix,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "clip",
		Description: "Hard-limits the signal to a range.",
		New:         newClip,
	})
}
