package domain

import (
	"context"
	"time"
)

// ServicePort is the interface implemented by the appointments service
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Appointment, error)
	Get(ctx context.Context, chatID, id string) (Appointment, error)
	List(ctx context.Context, q ListQuery) ([]Appointment, error)
	Update(ctx context.Context, in UpdateInput) (Appointment, error)
	Delete(ctx context.Context, chatID, id string) error
}

// SchedulePort is the cross-chat surface the reminder worker uses;
// it deliberately bypasses chat scoping
type SchedulePort interface {
	ListDueBetween(ctx context.Context, from, until time.Time) ([]Appointment, error)
	MarkNotified(ctx context.Context, id string, leadIndex int) error
}
