// Package module wires appointments into the app using modkit
package module

import (
	"net/http"

	modkit "nadbot/internal/modkit"
	"nadbot/internal/modkit/httpkit"

	arepo "nadbot/internal/services/appointments/repo"
	asvc "nadbot/internal/services/appointments/service"
)

// Module implements the appointments module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	svc asvc.Service
}

// New constructs the appointments module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("appointments"),
		modkit.WithPrefix("/appointments"),
	}, opts...)...)

	svc := asvc.New(deps.PG, arepo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Service: svc, Schedule: svc}
	return m
}

// MountRoutes is a no-op; appointments has no HTTP surface of its own
func (m *Module) MountRoutes(r httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
