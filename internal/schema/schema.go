// Package schema holds the HCL-facing structures a patch file decodes
// into. They are translated into the format-agnostic config model by the
// hcl package and never escape the loading layer.
package schema

import "github.com/hashicorp/hcl/v2"

// BlockArgs represents the content of the 'arguments' block within a
// block declaration.
type BlockArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Block represents a `block` declaration from a patch file. It is an
// instance of a registered block type.
type Block struct {
	Type      string     `hcl:"block_type,label"`
	Name      string     `hcl:"instance_name,label"`
	Arguments *BlockArgs `hcl:"arguments,block"`
}

// Wire represents a `wire` declaration connecting two port addresses,
// written as "block" or "block.port".
type Wire struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// PatchFile represents the top-level structure of a patch file,
// containing all declared blocks and wires.
type PatchFile struct {
	Blocks []*Block `hcl:"block,block"`
	Wires  []*Wire  `hcl:"wire,block"`
	Body   hcl.Body `hcl:",remain"`
}
