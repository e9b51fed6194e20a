// Package api provides the HTTP API for the application
package api

import (
	"nadbot/internal/platform/config"
	perr "nadbot/internal/platform/errors"
	"nadbot/internal/platform/logger"
	phttp "nadbot/internal/platform/net/http"
	"nadbot/internal/platform/store"

	"nadbot/internal/modkit"
	"nadbot/internal/modkit/httpkit"
	"nadbot/internal/modkit/module"

	apptmod "nadbot/internal/services/appointments/module"
	inboxmod "nadbot/internal/services/inbox/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the appointments module first and extract its service port
	appointments := apptmod.New(deps)
	svc := module.MustPortsOf[apptmod.Ports](appointments).Service

	// Inject the appointments port into the inbox module
	inboxOpts := []modkit.Option{
		modkit.WithPorts(inboxmod.Ports{
			Appointments: svc,
		}),
	}
	// optional shared-token gate for the webhook, unset means open
	if tok := opt.Config.MayString("INBOX_TOKEN", ""); tok != "" {
		port := httpkit.NewPortFunc(func(raw string) (string, string, error) {
			if raw != tok {
				return "", "", perr.Unauthorizedf("bad inbox token")
			}
			return "webhook", "", nil
		})
		inboxOpts = append(inboxOpts, modkit.WithMiddlewares(httpkit.Auth(port)))
	}
	inbox := inboxmod.New(deps, inboxOpts...)

	mods := []module.Module{
		appointments, // include so its ports are registered for cross-module lookups
		inbox,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
