// Package module wires the reminder service and exposes its ports
package module

import (
	modkit "nadbot/internal/modkit"
	"nadbot/internal/modkit/httpkit"

	adomain "nadbot/internal/services/appointments/domain"
	rdomain "nadbot/internal/services/reminder/domain"
	"nadbot/internal/services/reminder/service"
)

// Module defines the reminder module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// Ports exposes the reminder worker
type Ports struct {
	Worker rdomain.WorkerPort
}

// New constructs the reminder module. The schedule port comes from the
// appointments module, the sender defaults to the log sender when nil
func New(deps modkit.Deps, sched adomain.SchedulePort, sender rdomain.SenderPort) *Module {
	opts := FromConfig(deps.Cfg)
	if sender == nil {
		sender = service.LogSender{Log: deps.Log}
	}

	svc := service.New(deps, service.Config{
		Interval: opts.Interval,
		Horizon:  opts.Horizon,
	}, sched, sender)

	m := &Module{deps: deps}
	m.ports = Ports{Worker: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "reminder" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module config prefix (none for reminder)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes for reminder (worker service)
func (m *Module) MountRoutes(_ httpkit.Router) {}
