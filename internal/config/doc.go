// Package config defines the format-agnostic patch model for the
// application, along with the Loader interface for reading it from
// various sources.
//
// The `config.Model` is the single source of truth for the `patch`
// package, which assembles a rack from it. Concrete loaders, such as the
// HCL one, live in separate packages.
package config
