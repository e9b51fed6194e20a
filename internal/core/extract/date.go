package extract

import (
	"strings"
	"time"
)

// Dates returns calendar candidates: relative-day words, weekday names with
// an optional modifier, and explicit day+month(+year) forms. now anchors the
// absent-year default for explicit dates. Calendar-invalid candidates are
// dropped silently
func (e *Extractor) Dates(text string, now time.Time) []Span {
	if text == "" {
		return nil
	}
	var out claimed

	// explicit day + month name + optional year claims first: its day digits
	// and month text must not leak into weekday or relative matching
	for _, m := range e.reExplicit.FindAllStringSubmatchIndex(text, -1) {
		sp, ok := e.explicitDate(text, m, now)
		if !ok {
			continue
		}
		if !out.free(sp.Start, sp.End) {
			continue
		}
		out = append(out, sp)
	}

	// relative-day words, longest first so มะรืนนี้ beats มะรืน and
	// มะเมื่อวาน beats เมื่อวาน
	for _, key := range e.lex.RelativeDayKeys {
		from := 0
		for {
			i := strings.Index(text[from:], key)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(key)
			from = end
			if !out.free(start, end) {
				continue
			}
			off := e.lex.RelativeDays[key]
			out = append(out, Span{
				Kind: KindDate, Category: DateRelative,
				Text: key, Start: start, End: end,
				Date: &DateParts{Offset: off},
			})
		}
	}

	// weekday names with optional modifier
	for _, m := range e.reWeekday.FindAllStringSubmatchIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		name := text[m[2]:m[3]]
		wd, ok := e.lex.Weekdays[name]
		if !ok {
			continue
		}
		mod := ""
		if m[4] >= 0 {
			if v, ok2 := e.lex.WeekdayModifiers[text[m[4]:m[5]]]; ok2 {
				mod = string(v)
			}
		}
		out = append(out, Span{
			Kind: KindDate, Category: DateWeekday,
			Text: text[m[0]:m[1]], Start: m[0], End: m[1],
			Date: &DateParts{Weekday: wd, Modifier: mod},
		})
	}

	return byStart(out)
}

// explicitDate resolves one day+month(+year) match. A year immediately
// followed by ':' or '.' is a clock reading, not a year, so it is dropped
// and the span shortened. 2-digit years live in the 2000s; years >= 2400
// are Buddhist Era and convert by -543; an absent year defaults to the
// current year, rolling to next year when the date has already passed
func (e *Extractor) explicitDate(text string, m []int, now time.Time) (Span, bool) {
	day, ok := atoiAt(text, m[2], m[3])
	if !ok {
		return Span{}, false
	}
	month, ok := e.lex.Months[text[m[4]:m[5]]]
	if !ok {
		return Span{}, false
	}

	end := m[1]
	year := 0
	hasYear := false
	if m[6] >= 0 {
		if next := m[7]; next < len(text) && (text[next] == ':' || text[next] == '.') {
			// trailing time like "15:30" mistaken for a year; give it back
			end = m[5]
		} else if v, ok2 := atoiAt(text, m[6], m[7]); ok2 {
			year = v
			hasYear = true
		}
	}

	if hasYear {
		if year < 100 {
			year += 2000
		}
		if year >= 2400 {
			year -= 543
		}
	} else {
		year = now.Year()
		if month < int(now.Month()) || (month == int(now.Month()) && day < now.Day()) {
			year++
		}
	}

	// calendar validation via round-trip
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return Span{}, false
	}

	return Span{
		Kind: KindDate, Category: DateExplicit,
		Text: text[m[0]:end], Start: m[0], End: end,
		Date: &DateParts{Day: day, Month: month, Year: year},
	}, true
}
