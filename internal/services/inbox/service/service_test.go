package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"nadbot/internal/core/lexicon"
	"nadbot/internal/core/parser"
	adomain "nadbot/internal/services/appointments/domain"
	"nadbot/internal/services/inbox/domain"
)

type fakeAppointments struct {
	created []adomain.CreateInput
	listed  []adomain.ListQuery
	updated []adomain.UpdateInput
	deleted []string
}

func (f *fakeAppointments) Create(_ context.Context, in adomain.CreateInput) (adomain.Appointment, error) {
	f.created = append(f.created, in)
	return adomain.Appointment{
		ID:         "apt-1",
		ChatID:     in.ChatID,
		Title:      in.Title,
		At:         in.At,
		Location:   in.Location,
		Building:   in.Building,
		Contact:    in.Contact,
		Phone:      in.Phone,
		Confidence: in.Confidence,
	}, nil
}

func (f *fakeAppointments) Get(context.Context, string, string) (adomain.Appointment, error) {
	return adomain.Appointment{}, nil
}

func (f *fakeAppointments) List(_ context.Context, q adomain.ListQuery) ([]adomain.Appointment, error) {
	f.listed = append(f.listed, q)
	return nil, nil
}

func (f *fakeAppointments) Update(_ context.Context, in adomain.UpdateInput) (adomain.Appointment, error) {
	f.updated = append(f.updated, in)
	a := adomain.Appointment{ID: in.ID, ChatID: in.ChatID, Title: "ตรวจฟัน", At: time.Date(2025, 10, 8, 15, 0, 0, 0, time.FixedZone("ICT", 7*60*60))}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.At != nil {
		a.At = *in.At
	}
	return a, nil
}

func (f *fakeAppointments) Delete(_ context.Context, chatID, id string) error {
	f.deleted = append(f.deleted, chatID+"/"+id)
	return nil
}

func newTestSvc(t *testing.T) (*Svc, *fakeAppointments) {
	t.Helper()
	fake := &fakeAppointments{}
	s := New(parser.New(lexicon.MustLoad()), fake)
	ict := time.FixedZone("ICT", 7*60*60)
	s.now = func() time.Time { return time.Date(2025, 10, 6, 12, 0, 0, 0, ict) }
	return s, fake
}

func TestHandle_CommandMessageSaves(t *testing.T) {
	s, fake := newTestSvc(t)

	rep, err := s.Handle(context.Background(), domain.IncomingMessage{
		ChatID: "chat-1",
		Text:   "เพิ่มนัด ประชุมทีม พรุ่งนี้ 10 โมง",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !rep.Saved {
		t.Fatalf("expected saved reply, got %+v", rep)
	}
	if rep.AppointmentID != "apt-1" {
		t.Fatalf("appointment id = %q", rep.AppointmentID)
	}
	if len(fake.created) != 1 {
		t.Fatalf("created %d appointments", len(fake.created))
	}
	in := fake.created[0]
	if in.ChatID != "chat-1" {
		t.Fatalf("chat id = %q", in.ChatID)
	}
	if in.At.Day() != 7 || in.At.Hour() != 10 {
		t.Fatalf("when = %v", in.At)
	}
	if !strings.Contains(rep.Text, "ประชุมทีม") {
		t.Fatalf("reply missing title: %q", rep.Text)
	}
	if !strings.Contains(rep.Text, "07/10/2025") {
		t.Fatalf("reply missing date: %q", rep.Text)
	}
}

func TestHandle_PlainChatterIgnored(t *testing.T) {
	s, fake := newTestSvc(t)

	rep, err := s.Handle(context.Background(), domain.IncomingMessage{
		ChatID: "chat-1",
		Text:   "สวัสดีครับ วันนี้อากาศดีมาก",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if rep.Saved {
		t.Fatalf("chatter should not be saved: %+v", rep)
	}
	if len(fake.created) != 0 {
		t.Fatalf("created %d appointments from chatter", len(fake.created))
	}
}

func TestHandle_StructuredSavesWithoutCommandWord(t *testing.T) {
	s, fake := newTestSvc(t)

	rep, err := s.Handle(context.Background(), domain.IncomingMessage{
		ChatID: "chat-2",
		Text:   "ชื่อนัดหมาย: ตรวจสุขภาพประจำปี\nวันเวลา: 15/12/2025 10:00\nโรงพยาบาล: ราชวิถี",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !rep.Saved {
		t.Fatalf("structured payload should be saved: %+v", rep)
	}
	if rep.Mode != string(parser.ModeStructured) {
		t.Fatalf("mode = %q", rep.Mode)
	}
	if len(fake.created) != 1 || fake.created[0].Title != "ตรวจสุขภาพประจำปี" {
		t.Fatalf("created = %+v", fake.created)
	}
}

func TestList_PassesQueryThrough(t *testing.T) {
	s, fake := newTestSvc(t)

	_, err := s.List(context.Background(), domain.ListInput{
		ChatID:       "chat-3",
		UpcomingOnly: true,
		Limit:        10,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(fake.listed) != 1 {
		t.Fatalf("listed %d times", len(fake.listed))
	}
	q := fake.listed[0]
	if q.ChatID != "chat-3" || !q.UpcomingOnly || q.Limit != 10 {
		t.Fatalf("query = %+v", q)
	}
}

func TestEdit_PatchesAndConfirms(t *testing.T) {
	s, fake := newTestSvc(t)

	title := "ตรวจสุขภาพ"
	rep, err := s.Edit(context.Background(), domain.EditInput{
		ChatID: "chat-1",
		ID:     "apt-1",
		Title:  &title,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if len(fake.updated) != 1 {
		t.Fatalf("updated %d appointments", len(fake.updated))
	}
	in := fake.updated[0]
	if in.ID != "apt-1" || in.ChatID != "chat-1" {
		t.Fatalf("update input = %+v", in)
	}
	if in.Title == nil || *in.Title != title {
		t.Fatalf("title patch = %v", in.Title)
	}
	if in.At != nil || in.Location != nil {
		t.Fatalf("unrequested fields patched: %+v", in)
	}
	if !strings.Contains(rep.Text, "แก้ไขนัดหมายแล้ว") || !strings.Contains(rep.Text, title) {
		t.Fatalf("reply = %q", rep.Text)
	}
	if rep.AppointmentID != "apt-1" {
		t.Fatalf("appointment id = %q", rep.AppointmentID)
	}
}

func TestDelete_Confirms(t *testing.T) {
	s, fake := newTestSvc(t)

	rep, err := s.Delete(context.Background(), domain.DeleteInput{ChatID: "chat-1", ID: "apt-9"})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != "chat-1/apt-9" {
		t.Fatalf("deleted = %v", fake.deleted)
	}
	if !strings.Contains(rep.Text, "ลบนัดหมายแล้ว") {
		t.Fatalf("reply = %q", rep.Text)
	}
	if rep.Saved {
		t.Fatalf("delete reply must not report saved")
	}
}

func TestRenderSaved(t *testing.T) {
	ict := time.FixedZone("ICT", 7*60*60)
	a := adomain.Appointment{
		Title:    "พบแพทย์",
		At:       time.Date(2025, 12, 15, 10, 0, 0, 0, ict),
		Location: "โรงพยาบาลราชวิถี",
		Building: "อาคาร 2 ชั้น 3",
		Contact:  "หมอสมชาย",
		Phone:    "02-123-4567",
	}
	got := renderSaved(a)
	for _, want := range []string{
		"พบแพทย์",
		"15/12/2025",
		"10:00",
		"โรงพยาบาลราชวิถี",
		"อาคาร 2 ชั้น 3",
		"หมอสมชาย",
		"02-123-4567",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("renderSaved missing %q in:\n%s", want, got)
		}
	}
}
