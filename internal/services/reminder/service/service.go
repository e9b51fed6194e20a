// Package service contains reminder workflows
package service

import (
	"context"
	"fmt"
	"time"

	modkit "nadbot/internal/modkit"

	"nadbot/internal/core/parser"
	adomain "nadbot/internal/services/appointments/domain"
	"nadbot/internal/services/reminder/domain"
)

// Config tunes the reminder loop
type Config struct {
	// Interval between sweeps
	Interval time.Duration
	// Horizon bounds how far ahead a sweep looks for due appointments
	Horizon time.Duration
}

// Svc implements the reminder worker
type Svc struct {
	deps   modkit.Deps
	config Config
	sched  adomain.SchedulePort
	sender domain.SenderPort
	now    func() time.Time
}

// New constructs the reminder service
func New(deps modkit.Deps, cfg Config, sched adomain.SchedulePort, sender domain.SenderPort) *Svc {
	if sched == nil {
		panic("reminder service requires the schedule port")
	}
	if sender == nil {
		panic("reminder service requires a sender port")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = 8 * 24 * time.Hour
	}
	return &Svc{
		deps:   deps,
		config: cfg,
		sched:  sched,
		sender: sender,
		now:    func() time.Time { return time.Now().In(parser.Bangkok()) },
	}
}

// Run sweeps once at startup and then on every tick until ctx ends
func (s *Svc) Run(ctx context.Context) error {
	t := time.NewTicker(s.config.Interval)
	defer t.Stop()

	if _, err := s.Sweep(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			sent, err := s.Sweep(ctx)
			if err != nil {
				return err
			}
			if sent > 0 {
				s.deps.Log.Info().Int("sent", sent).Msg("reminder sweep delivered")
			}
		}
	}
}

// Sweep scans the horizon once and delivers every due lead-window
// reminder, flipping its notified flag after a successful send
func (s *Svc) Sweep(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.sched.ListDueBetween(ctx, now, now.Add(s.config.Horizon))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, a := range due {
		daysLeft := a.DaysUntil(now)
		idx := a.LeadIndexDue(daysLeft)
		if idx < 0 {
			continue
		}

		msg := renderReminder(a, daysLeft)
		if err := s.sender.Send(ctx, a.ChatID, msg); err != nil {
			s.deps.Log.Warn().
				Str("appointment_id", a.ID).
				Str("chat_id", a.ChatID).
				Err(err).
				Msg("reminder send failed will retry next sweep")
			continue
		}
		if err := s.sched.MarkNotified(ctx, a.ID, idx); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func renderReminder(a adomain.Appointment, daysLeft int) string {
	var head string
	switch daysLeft {
	case 0:
		head = "⏰ แจ้งเตือนนัดหมาย!\n\n🚨 วันนี้คุณมีนัดหมาย"
	case 1:
		head = "⏰ แจ้งเตือนนัดหมาย!\n\n🚨 พรุ่งนี้คุณมีนัดหมาย"
	case 7:
		head = "🗓️ การแจ้งเตือนล่วงหน้า\n\n📅 คุณมีนัดหมายในอีก 1 สัปดาห์"
	default:
		head = fmt.Sprintf("🗓️ การแจ้งเตือนล่วงหน้า\n\n📅 คุณมีนัดหมายในอีก %d วัน", daysLeft)
	}

	out := head + "\n🏥 " + a.Title
	out += "\n\n📅 วันที่: " + a.At.In(parser.Bangkok()).Format("02/01/2006 15:04")
	if a.Location != "" {
		out += "\n🏢 สถานที่: " + a.Location
	}
	if a.Building != "" {
		out += "\n🔖 แผนก: " + a.Building
	}
	if a.Contact != "" {
		out += "\n👤 " + a.Contact
	}
	if daysLeft <= 1 {
		out += "\n\n✅ อย่าลืมเตรียมเอกสาร\n✅ ไปให้ทันเวลา"
	}
	return out
}
