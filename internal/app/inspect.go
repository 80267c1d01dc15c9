package app

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/atheler/klang-sub000/internal/engine"
	"github.com/atheler/klang-sub000/internal/patch"
)

// inspect prints the wired rack as a tree: every block in execution order
// with the connection state of each of its ports.
func (a *App) inspect(built *patch.Built, eng *engine.Engine) error {
	rack := built.Rack
	tree := treeprint.NewWithRoot(fmt.Sprintf("rack (%g Hz, %d samples/tick)", rack.SampleRate(), rack.BufferSize()))

	for i, blk := range eng.Order() {
		branch := tree.AddBranch(fmt.Sprintf("%d: %s (%s)", i, blk.Name(), blk.Type()))

		for _, p := range blk.Inputs() {
			if src := p.Source(); src != nil {
				branch.AddNode(fmt.Sprintf("%s <- %s", p.Name(), src))
			} else {
				branch.AddNode(fmt.Sprintf("%s (unconnected)", p.Name()))
			}
		}

		for _, p := range blk.Outputs() {
			sinks := p.Sinks()
			if len(sinks) == 0 {
				branch.AddNode(fmt.Sprintf("%s (unconnected)", p.Name()))
				continue
			}
			names := make([]string, len(sinks))
			for j, s := range sinks {
				names[j] = s.String()
			}
			branch.AddNode(fmt.Sprintf("%s -> %s", p.Name(), strings.Join(names, ", ")))
		}
	}

	_, err := fmt.Fprint(a.outW, tree.String())
	return err
}
