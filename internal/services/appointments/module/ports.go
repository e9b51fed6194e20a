package module

import (
	"nadbot/internal/services/appointments/domain"
)

// Ports exposes the service ports for cross-module usage
type Ports struct {
	Service  domain.ServicePort
	Schedule domain.SchedulePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
