// Package portaddr parses the textual port addresses used by patch wires.
// An address names a block instance and optionally one of its ports,
// separated by a dot: "lfo" or "lfo.out". Without a port segment the
// block's primary port is meant.
package portaddr

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex validates one address segment, e.g. `lfo` or `out_2`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Addr is the structured form of a wire endpoint.
type Addr struct {
	Block string
	Port  string // empty selects the primary port
}

// Parse creates an Addr from its canonical string representation.
func Parse(raw string) (Addr, error) {
	if raw == "" {
		return Addr{}, fmt.Errorf("address cannot be empty")
	}

	segments := strings.Split(raw, ".")
	if len(segments) > 2 {
		return Addr{}, fmt.Errorf("address %q has too many segments, want block or block.port", raw)
	}
	for _, s := range segments {
		if !segmentRegex.MatchString(s) {
			return Addr{}, fmt.Errorf("invalid address segment %q in %q", s, raw)
		}
	}

	addr := Addr{Block: segments[0]}
	if len(segments) == 2 {
		addr.Port = segments[1]
	}
	return addr, nil
}

// HasPort reports whether the address names an explicit port.
func (a Addr) HasPort() bool { return a.Port != "" }

// String renders the address in its canonical form.
func (a Addr) String() string {
	if a.Port == "" {
		return a.Block
	}
	return a.Block + "." + a.Port
}
