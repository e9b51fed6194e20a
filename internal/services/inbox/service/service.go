// Package service turns chat messages into stored appointments
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nadbot/internal/core/parser"
	adomain "nadbot/internal/services/appointments/domain"
	"nadbot/internal/services/inbox/domain"
)

// Service is the public service port
type Service interface {
	Handle(ctx context.Context, in domain.IncomingMessage) (domain.Reply, error)
	List(ctx context.Context, in domain.ListInput) ([]adomain.Appointment, error)
	Edit(ctx context.Context, in domain.EditInput) (domain.Reply, error)
	Delete(ctx context.Context, in domain.DeleteInput) (domain.Reply, error)
}

// Svc implements the service port
type Svc struct {
	parser *parser.Parser
	appts  adomain.ServicePort
	now    func() time.Time
}

// New constructs the service
func New(p *parser.Parser, appts adomain.ServicePort) *Svc {
	if p == nil {
		panic("inbox service requires a parser")
	}
	if appts == nil {
		panic("inbox service requires the appointments port")
	}
	return &Svc{
		parser: p,
		appts:  appts,
		now:    func() time.Time { return time.Now().In(parser.Bangkok()) },
	}
}

// Handle parses one message and persists it when it carries appointment
// intent. Messages without intent get an empty reply so the transport
// can stay silent
func (s *Svc) Handle(ctx context.Context, in domain.IncomingMessage) (domain.Reply, error) {
	parsed := s.parser.Parse(in.Text, s.now())

	// labeled forms are deliberate appointment payloads, free text needs
	// a command keyword before we commit anything
	intent := parsed.Mode != parser.ModeHeuristic || s.parser.IsCommand(in.Text)
	if !intent {
		return domain.Reply{Confidence: parsed.Confidence}, nil
	}

	a, err := s.appts.Create(ctx, adomain.CreateInput{
		ChatID:     in.ChatID,
		Title:      parsed.Title,
		At:         parsed.When,
		Location:   parsed.Location,
		Building:   parsed.Building,
		Contact:    parsed.Contact,
		Phone:      parsed.Phone,
		Confidence: parsed.Confidence,
	})
	if err != nil {
		return domain.Reply{}, err
	}

	return domain.Reply{
		Text:          renderSaved(a),
		Saved:         true,
		AppointmentID: a.ID,
		Mode:          string(parsed.Mode),
		Confidence:    parsed.Confidence,
	}, nil
}

// List returns the chat's appointments
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]adomain.Appointment, error) {
	return s.appts.List(ctx, adomain.ListQuery{
		ChatID:       in.ChatID,
		UpcomingOnly: in.UpcomingOnly,
		Limit:        in.Limit,
	})
}

// Edit patches one appointment and answers with the updated summary
func (s *Svc) Edit(ctx context.Context, in domain.EditInput) (domain.Reply, error) {
	a, err := s.appts.Update(ctx, adomain.UpdateInput{
		ID:       in.ID,
		ChatID:   in.ChatID,
		Title:    in.Title,
		At:       in.At,
		Location: in.Location,
		Building: in.Building,
		Contact:  in.Contact,
		Phone:    in.Phone,
	})
	if err != nil {
		return domain.Reply{}, err
	}
	return domain.Reply{
		Text:          "✏️ แก้ไขนัดหมายแล้ว\n" + renderSummary(a),
		Saved:         true,
		AppointmentID: a.ID,
	}, nil
}

// Delete removes one appointment and confirms
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Reply, error) {
	if err := s.appts.Delete(ctx, in.ChatID, in.ID); err != nil {
		return domain.Reply{}, err
	}
	return domain.Reply{
		Text:          "🗑️ ลบนัดหมายแล้ว",
		AppointmentID: in.ID,
	}, nil
}

func renderSaved(a adomain.Appointment) string {
	return "✅ บันทึกนัดหมายแล้ว\n" + renderSummary(a)
}

func renderSummary(a adomain.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📌 %s\n", a.Title)
	fmt.Fprintf(&b, "📅 %s น.", a.At.In(parser.Bangkok()).Format("02/01/2006 เวลา 15:04"))
	if a.Location != "" {
		fmt.Fprintf(&b, "\n📍 %s", a.Location)
		if a.Building != "" {
			fmt.Fprintf(&b, " (%s)", a.Building)
		}
	} else if a.Building != "" {
		fmt.Fprintf(&b, "\n📍 %s", a.Building)
	}
	if a.Contact != "" {
		fmt.Fprintf(&b, "\n👤 %s", a.Contact)
	}
	if a.Phone != "" {
		fmt.Fprintf(&b, "\n📞 %s", a.Phone)
	}
	return b.String()
}
