// Package api provides the HTTP API for the application
package api

import (
	"storydeck/internal/platform/clock"
	"storydeck/internal/platform/config"
	"storydeck/internal/platform/logger"
	phttp "storydeck/internal/platform/net/http"
	"storydeck/internal/platform/store"

	"storydeck/internal/modkit"
	"storydeck/internal/modkit/httpkit"
	"storydeck/internal/modkit/module"
	"storydeck/internal/modkit/swaggerkit"

	metamod "storydeck/internal/services/api/meta/module"
	storiesmod "storydeck/internal/services/stories/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Clock          clock.Clock
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Clock == nil {
		opt.Clock = clock.System()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Clock: opt.Clock,
		PG:    opt.Store.PG,
		CH:    opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		storiesmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
