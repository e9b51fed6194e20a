package parser

import "strings"

// contactNoise marks a capture that is really a place or time, not a person
var contactNoise = []string{
	"ร้าน", "ห้าง", "ตึก", "อาคาร", "ชั้น", "แผนก", "ห้อง",
	"สนาม", "โรงเรียน", "โรงพยาบาล", "โมง", "นาที",
}

// contactPerson pulls the companion name that follows a กับ marker. The run
// after the marker stops at the first locative preposition, time word,
// weekday, relative-day word or digit. When the strict run comes up empty a
// single cleaned token is taken instead. Captures that contain facility
// vocabulary are discarded rather than reported wrongly
func (p *Parser) contactPerson(text string) string {
	i := strings.Index(text, "กับ")
	if i < 0 {
		return ""
	}
	rest := strings.TrimSpace(text[i+len("กับ"):])
	if rest == "" {
		return ""
	}

	name := strings.TrimSpace(rest[:p.personCut(rest)])
	if name == "" {
		// fallback: the immediate token with trailing junk trimmed
		name = strings.TrimRight(strings.Fields(rest)[0], ".,!?:;\"'")
	}
	for _, w := range contactNoise {
		if strings.Contains(name, w) {
			return ""
		}
	}
	return name
}

// personCut returns the byte offset in rest where the name run ends
func (p *Parser) personCut(rest string) int {
	cut := len(rest)
	scan := func(marker string) {
		if j := strings.Index(rest, marker); j >= 0 && j < cut {
			cut = j
		}
	}
	for _, m := range []string{
		"ที่", "ณ ", "เวลา", "ตอน", "โมง", "ทุ่ม", "น.",
		"บ่าย", "เช้า", "เย็น", "ค่ำ", "ดึก", "สาย",
	} {
		scan(m)
	}
	for _, k := range p.lex.RelativeDayKeys {
		scan(k)
	}
	for _, w := range p.lex.WeekdayKeys {
		scan("วัน" + w)
		scan(w)
	}
	if j := strings.IndexAny(rest, "0123456789"); j >= 0 && j < cut {
		cut = j
	}
	return cut
}
