package extract

import (
	"testing"

	"nadbot/internal/core/lexicon"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(lexicon.MustLoad())
}

func TestTimes_Table(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		in   string
		cat  Category
		hour int
		min  int
	}{
		{"formal colon", "นัดหมอ 14:30 น.", TimeFormal, 14, 30},
		{"formal dot", "เจอกัน 9.05", TimeFormal, 9, 5},
		{"formal เวลา prefix", "เวลา 10:00 ที่บ้าน", TimeFormal, 10, 0},
		{"formal นาฬิกา", "14 นาฬิกา 30", TimeFormal, 14, 30},
		{"spoken morning", "10 โมงเช้า", TimeSpoken, 10, 0},
		{"spoken afternoon prefix", "บ่าย 3 โมง", TimeSpoken, 15, 0},
		{"spoken afternoon joined", "บ่าย3โมง", TimeSpoken, 15, 0},
		{"spoken evening", "4 โมงเย็น", TimeSpoken, 16, 0},
		{"spoken evening keeps late hour", "17 โมง", TimeSpoken, 17, 0},
		{"spoken night count", "3 ทุ่ม", TimeSpoken, 21, 0},
		{"spoken night count wraps", "6 ทุ่มครึ่ง", TimeSpoken, 0, 30},
		{"spoken half", "บ่าย 2 โมงครึ่ง", TimeSpoken, 14, 30},
		{"period only", "นัดตอนเช้า", TimeSpoken, 6, 0},
		{"period late", "เจอตอนดึก", TimeSpoken, 21, 0},
		{"expression one tum", "หนึ่งทุ่ม", TimeExpression, 19, 0},
		{"expression half beats plain", "บ่ายสองครึ่ง", TimeExpression, 14, 30},
		{"expression four evening", "สี่โมงเย็น", TimeExpression, 16, 0},
		{"expression midnight", "เที่ยงคืน", TimeExpression, 0, 0},
		{"expression noon", "กินข้าวเที่ยง", TimeExpression, 12, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := e.Times(tc.in)
			if len(got) == 0 {
				t.Fatalf("Times(%q) found nothing", tc.in)
			}
			s := got[0]
			if s.Category != tc.cat {
				t.Fatalf("Times(%q) category = %q, want %q", tc.in, s.Category, tc.cat)
			}
			if s.Clock == nil || s.Clock.Hour != tc.hour || s.Clock.Minute != tc.min {
				t.Fatalf("Times(%q) clock = %+v, want %02d:%02d", tc.in, s.Clock, tc.hour, tc.min)
			}
		})
	}
}

func TestTimes_EmptyAndNoMatch(t *testing.T) {
	e := newTestExtractor(t)
	if got := e.Times(""); got != nil {
		t.Fatalf("Times(\"\") = %v, want nil", got)
	}
	if got := e.Times("ไม่มีอะไรเลย"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestTimes_NoOverlapWithinKind(t *testing.T) {
	e := newTestExtractor(t)
	// เที่ยงคืน contains เที่ยง; only the longer idiom may win
	got := e.Times("นัดเที่ยงคืนนะ")
	if len(got) != 1 {
		t.Fatalf("expected exactly one span, got %d: %v", len(got), got)
	}
	if got[0].Text != "เที่ยงคืน" || got[0].Clock.Hour != 0 {
		t.Fatalf("unexpected winner: %+v", got[0])
	}

	// a phone-looking 14:30 must not double-report via spoken tier
	got = e.Times("บ่าย 2 โมงครึ่ง")
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if overlaps(got[i].Start, got[i].End, got[j].Start, got[j].End) {
				t.Fatalf("overlapping time spans: %+v and %+v", got[i], got[j])
			}
		}
	}
}

func TestTimes_InvalidClockDiscarded(t *testing.T) {
	e := newTestExtractor(t)
	got := e.Times("99:99")
	for _, s := range got {
		if s.Category == TimeFormal {
			t.Fatalf("out-of-range clock should be discarded, got %+v", s)
		}
	}
}
