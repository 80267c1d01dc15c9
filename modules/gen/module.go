// Package gen provides the signal source blocks: oscillator, noise,
// constants, and environment-sourced values.
package gen

import (
	"github.com/atheler/klang-sub000/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the generator block types with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "osc",
		Description: "Phase-accumulator oscillator with sine, square, saw, and triangle shapes.",
		New:         newOsc,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "noise",
		Description: "White noise source.",
		New:         newNoise,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "constant",
		Description: "Fixed scalar source.",
		New:         newConstant,
	})
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "env",
		Description: "Scalar source read from an environment variable.",
		New:         newEnv,
	})
}
