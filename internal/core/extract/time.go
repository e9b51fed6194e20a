package extract

import "strings"

// Times returns clock candidates in three tiers: formal, spoken, expression.
// Earlier tiers claim their byte ranges so later tiers cannot double-report
// the same text. Invalid clock values are discarded silently
func (e *Extractor) Times(text string) []Span {
	if text == "" {
		return nil
	}
	var out claimed

	// 1 formal hour:minute
	for _, re := range e.reFormal {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			h, ok := atoiAt(text, m[2], m[3])
			if !ok {
				continue
			}
			mi := 0
			if m[4] >= 0 {
				if v, ok2 := atoiAt(text, m[4], m[5]); ok2 {
					mi = v
				}
			}
			if h > 23 || mi > 59 {
				continue
			}
			if !out.free(m[0], m[1]) {
				continue
			}
			out = append(out, Span{
				Kind: KindTime, Category: TimeFormal,
				Text: text[m[0]:m[1]], Start: m[0], End: m[1],
				Clock: &Clock{Hour: h, Minute: mi},
			})
		}
	}

	// 2 spoken hour counting with qualifier corrections
	for _, re := range e.reSpoken {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if !out.free(m[0], m[1]) {
				continue
			}
			start, end := m[0], m[1]
			matched := text[start:end]
			h, ok := atoiAt(text, m[2], m[3])
			if !ok {
				continue
			}
			// a บ่าย qualifier just before the digits belongs to this
			// mention, claim it so nothing else reports it
			if !strings.Contains(matched, "บ่าย") {
				for _, pre := range []string{"บ่าย ", "บ่าย"} {
					if strings.HasSuffix(text[:start], pre) && out.free(start-len(pre), end) {
						start -= len(pre)
						matched = text[start:end]
						break
					}
				}
			}
			c, ok := e.spokenClock(text, matched, start, h)
			if !ok {
				continue
			}
			out = append(out, Span{
				Kind: KindTime, Category: TimeSpoken,
				Text: matched, Start: start, End: end,
				Clock: c,
			})
		}
	}

	// bare period words ตอนเช้า ตอนบ่าย map to the period's start hour
	for _, m := range e.rePeriod.FindAllStringSubmatchIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		period := text[m[2]:m[3]]
		start, ok := e.lex.PeriodStarts[period]
		if !ok {
			continue
		}
		out = append(out, Span{
			Kind: KindTime, Category: TimeSpoken,
			Text: text[m[0]:m[1]], Start: m[0], End: m[1],
			Clock: &Clock{Hour: start},
		})
	}

	// 3 fixed expressions, longest first so บ่ายสองครึ่ง beats บ่ายสอง
	for _, ex := range e.lex.Expressions {
		from := 0
		for {
			i := strings.Index(text[from:], ex.Text)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(ex.Text)
			from = end
			if !out.free(start, end) {
				continue
			}
			out = append(out, Span{
				Kind: KindTime, Category: TimeExpression,
				Text: ex.Text, Start: start, End: end,
				Clock: &Clock{Hour: ex.Hour, Minute: ex.Minute},
			})
		}
	}

	return byStart(out)
}

// spokenClock corrects a raw spoken hour using the qualifier attached to the
// match or present just before it: บ่าย pushes h<=12 into the afternoon,
// เย็น pushes h<=7, ทุ่ม adds the nightly offset, เช้า folds h>12 back.
// Results wrap modulo 24
func (e *Extractor) spokenClock(text, matched string, start, h int) (*Clock, bool) {
	minute := 0
	if strings.Contains(matched, "ครึ่ง") {
		minute = 30
	}

	// window just before the match catches "บ่าย 3 โมง" forms where the
	// qualifier precedes the captured digits
	lo := start - len("บ่าย ")
	if lo < 0 {
		lo = 0
	}
	before := text[lo:start]

	switch {
	case strings.Contains(matched, "บ่าย") || strings.Contains(before, "บ่าย"):
		if h <= 12 {
			h += 12
		}
	case strings.Contains(matched, "เย็น"):
		if h <= 7 {
			h += 12
		}
	case strings.Contains(matched, "ทุ่ม"):
		h += 18
	case strings.Contains(matched, "เช้า"):
		if h > 12 {
			h -= 12
		}
	}

	h = ((h % 24) + 24) % 24
	return &Clock{Hour: h, Minute: minute}, true
}

// atoiAt parses text[i:j] as a small non-negative integer; j<0 or empty fails
func atoiAt(text string, i, j int) (int, bool) {
	if i < 0 || j < 0 || i >= j {
		return 0, false
	}
	n := 0
	for _, c := range []byte(text[i:j]) {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
