// Package print provides the 'print' block, which periodically logs a
// summary of the signal flowing through it. It is the quickest way to see
// what a patch is doing without rendering a file.
package print

import "github.com/atheler/klang-sub000/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the print block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock(&registry.RegisteredBlock{
		Type:        "print",
		Description: "Logs min, max, and last sample of its input every interval seconds.",
		New:         newPrint,
	})
}
