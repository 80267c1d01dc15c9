package config

import "context"

// Loader is the interface for a format-specific patch loader.
type Loader interface {
	// Load reads patch definitions from the given paths, which may be
	// single files or directories, and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
