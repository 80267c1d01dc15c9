// Package registry provides the central "glue" for the module system.
//
// The Registry stores mappings between the block type names used in patch
// files (e.g. "osc", "gain") and the compiled Go factories that build those
// blocks. Module packages register themselves at application startup via the
// Module interface; the patch builder then looks up each declared block type
// and invokes its factory with the evaluated arguments.
package registry
