package parser

import (
	"time"

	"nadbot/internal/core/extract"
)

// resolve combines the date and time candidate lists into one concrete
// timestamp. Date precedence: explicit day+month wins outright, then a
// weekday mention, then a relative-day word, then today. Time precedence
// follows the extractor tiers, a formal hh:mm beats spoken counting beats
// a fixed idiom, with position breaking ties inside a tier; absent any
// time the 09:00 default applies. A composed instant already in the past
// on a different calendar day advances a week; explicit dates are taken
// as deliberate and never move
func (p *Parser) resolve(dates, times []extract.Span, now time.Time) time.Time {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	explicit := false
	switch s := pickDate(dates); {
	case s == nil:
	case s.Category == extract.DateExplicit:
		day = time.Date(s.Date.Year, time.Month(s.Date.Month), s.Date.Day, 0, 0, 0, 0, now.Location())
		explicit = true
	case s.Category == extract.DateWeekday:
		day = day.AddDate(0, 0, weekdayOffset(mondayIndex(now.Weekday()), s.Date.Weekday, s.Date.Modifier))
	case s.Category == extract.DateRelative:
		day = day.AddDate(0, 0, s.Date.Offset)
	}

	clock := extract.Clock{Hour: 9}
	if s := pickTime(times); s != nil {
		clock = *s.Clock
	}

	when := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, now.Location())
	if !explicit && when.Before(now) && !sameDay(when, now) {
		when = when.AddDate(0, 0, 7)
	}
	return when
}

// pickDate returns the strongest date candidate by category precedence,
// position breaking ties within a category
func pickDate(dates []extract.Span) *extract.Span {
	for _, cat := range []extract.Category{extract.DateExplicit, extract.DateWeekday, extract.DateRelative} {
		for i := range dates {
			if dates[i].Category == cat {
				return &dates[i]
			}
		}
	}
	return nil
}

// pickTime returns the strongest time candidate by tier precedence,
// position breaking ties within a tier
func pickTime(times []extract.Span) *extract.Span {
	for _, cat := range []extract.Category{extract.TimeFormal, extract.TimeSpoken, extract.TimeExpression} {
		for i := range times {
			if times[i].Category == cat && times[i].Clock != nil {
				return &times[i]
			}
		}
	}
	return nil
}

// mondayIndex maps Go's Sunday-based weekday to the Monday=0 convention
// the lexicon uses
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// weekdayOffset returns the signed day count from today to the mentioned
// weekday. "next" always lands in the following week, "this" rolls forward
// when the day has passed, no modifier picks the nearest future occurrence
// including today, "last" is the previous week's occurrence
func weekdayOffset(today, target int, modifier string) int {
	diff := target - today
	switch modifier {
	case "next":
		if diff <= 0 {
			diff += 7
		}
		return diff + 7
	case "last":
		if diff < 0 {
			diff += 7
		}
		return diff - 7
	default: // "" and "this"
		if diff < 0 {
			diff += 7
		}
		return diff
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
