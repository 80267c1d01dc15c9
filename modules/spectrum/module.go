// Package spectrum provides a block that watches a signal in the frequency
// domain.
package spectrum

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the spectrum block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "spectrum",
		Description: "Windowed FFT analyzer reporting bin magnitudes and the dominant frequency.",
		New:         newSpectrum,
	})
}
