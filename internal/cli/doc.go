// Package cli parses command-line flags into the app configuration and
// owns process-level concerns like usage text and exit codes. Everything
// downstream of it works with a validated app.Config and never sees argv.
package cli
