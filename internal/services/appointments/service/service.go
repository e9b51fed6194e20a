// Package service contains appointment workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nadbot/internal/modkit/repokit"
	"nadbot/internal/platform/store"
	ptime "nadbot/internal/platform/time"
	"nadbot/internal/services/appointments/domain"
	"nadbot/internal/services/appointments/repo"
)

// Service is the public service port
type Service interface {
	domain.ServicePort
	domain.SchedulePort
}

// Svc implements the service port
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	now    func() time.Time
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("appointments service requires a TxRunner")
	}
	if binder == nil {
		panic("appointments service requires a repo binder")
	}
	return &Svc{db: db, binder: binder, now: time.Now}
}

// Create persists a new appointment under the owning chat's scope
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Appointment, error) {
	lead := in.LeadDays
	if len(lead) == 0 {
		lead = append([]int(nil), domain.DefaultLeadDays...)
	}

	now := s.now().UTC()
	a := domain.Appointment{
		ID:         uuid.NewString(),
		ChatID:     in.ChatID,
		Title:      in.Title,
		At:         in.At,
		Location:   in.Location,
		Building:   in.Building,
		Contact:    in.Contact,
		Phone:      in.Phone,
		Confidence: in.Confidence,
		LeadDays:   lead,
		Notified:   make([]bool, len(lead)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := store.RunInChat(ctx, s.db, in.ChatID, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).Insert(ctx, a)
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}

// Get returns one appointment owned by the chat
func (s *Svc) Get(ctx context.Context, chatID, id string) (domain.Appointment, error) {
	var a domain.Appointment
	err := store.RunInChat(ctx, s.db, chatID, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		a, err = s.binder.Bind(q).GetByID(ctx, chatID, id)
		return err
	})
	return a, err
}

// List returns the chat's appointments ordered by time
func (s *Svc) List(ctx context.Context, q domain.ListQuery) ([]domain.Appointment, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	var after *time.Time
	if q.UpcomingOnly {
		after = ptime.Ptr(s.now().UTC())
	}

	var out []domain.Appointment
	err := store.RunInChat(ctx, s.db, q.ChatID, func(ctx context.Context, qr store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(qr).ListByChat(ctx, q.ChatID, after, limit)
		return err
	})
	return out, err
}

// Update patches the mutable fields of an appointment
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Appointment, error) {
	var a domain.Appointment
	err := store.RunInChat(ctx, s.db, in.ChatID, func(ctx context.Context, q store.RowQuerier) error {
		r := s.binder.Bind(q)

		cur, err := r.GetByID(ctx, in.ChatID, in.ID)
		if err != nil {
			return err
		}
		if in.Title != nil {
			cur.Title = *in.Title
		}
		if in.At != nil {
			cur.At = *in.At
		}
		if in.Location != nil {
			cur.Location = *in.Location
		}
		if in.Building != nil {
			cur.Building = *in.Building
		}
		if in.Contact != nil {
			cur.Contact = *in.Contact
		}
		if in.Phone != nil {
			cur.Phone = *in.Phone
		}
		cur.UpdatedAt = s.now().UTC()

		if err := r.Update(ctx, cur); err != nil {
			return err
		}
		a = cur
		return nil
	})
	return a, err
}

// Delete removes an appointment owned by the chat
func (s *Svc) Delete(ctx context.Context, chatID, id string) error {
	return store.RunInChat(ctx, s.db, chatID, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).Delete(ctx, chatID, id)
	})
}

// ListDueBetween scans all chats for appointments inside the reminder
// horizon; reminder worker only
func (s *Svc) ListDueBetween(ctx context.Context, from, until time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := store.RunAsSuperadmin(ctx, s.db, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).ListDueBetween(ctx, from, until)
		return err
	})
	return out, err
}

// MarkNotified flips one lead-window flag; reminder worker only
func (s *Svc) MarkNotified(ctx context.Context, id string, leadIndex int) error {
	return store.RunAsSuperadmin(ctx, s.db, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).MarkNotified(ctx, id, leadIndex)
	})
}
