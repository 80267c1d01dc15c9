// Package hcl implements the config.Loader interface for HCL patch files.
//
// A patch file declares block instances and the wires between their ports:
//
//	block "osc" "lfo" {
//	  arguments {
//	    frequency = 0.5
//	  }
//	}
//
//	wire {
//	  from = "lfo"
//	  to   = "vca.gain"
//	}
//
// The loader parses any number of files or directories, evaluates argument
// expressions down to constant values, and translates everything into the
// format-agnostic model in the config package. Nothing HCL-specific escapes
// this package.
package hcl
