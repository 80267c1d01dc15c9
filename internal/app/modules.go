package app

import (
	"github.com/atheler/klang-sub000/internal/registry"
	"github.com/atheler/klang-sub000/modules/bus"
	"github.com/atheler/klang-sub000/modules/fx"
	"github.com/atheler/klang-sub000/modules/gen"
	"github.com/atheler/klang-sub000/modules/level"
	"github.com/atheler/klang-sub000/modules/print"
	"github.com/atheler/klang-sub000/modules/seq"
	"github.com/atheler/klang-sub000/modules/spectrum"
)

// coreModules is the definitive list of all block modules that are compiled
// into the klang binary.
var coreModules = []registry.Module{
	&bus.Module{},
	&fx.Module{},
	&gen.Module{},
	&level.Module{},
	&print.Module{},
	&seq.Module{},
	&spectrum.Module{},
}
