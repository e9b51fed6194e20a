package parser

import (
	"regexp"
	"strings"
	"time"
)

// structuredConfidence reflects that labeled input leaves almost nothing to
// guess; template input is one notch below it
const (
	structuredConfidence = 0.95
	templateConfidence   = 0.90
)

var (
	reFieldTitle    = fieldPattern("ชื่อนัดหมาย")
	reFieldWhen     = fieldPattern("วันเวลา")
	reFieldDoctor   = fieldPattern("แพทย์")
	reFieldHospital = fieldPattern("โรงพยาบาล")
	reFieldDept     = fieldPattern("แผนก")
)

func fieldPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(label + `:\s*["']?([^"'` + "\r\n" + `]+)["']?`)
}

// structured datetime layouts, most common first
var whenLayouts = []string{
	"2/1/2006 15:04",
	"2/1/2006 15.04",
	"2006-1-2 15:04",
	"2006-1-2 15.04",
	"2-1-2006 15:04",
	"2-1-2006 15.04",
	"2 January 2006 15:04",
	"2 January 2006 15.04",
}

// thaiMonthNames maps full Thai month names to the English forms the
// reference layouts use
var thaiMonthNames = map[string]string{
	"มกราคม": "January", "กุมภาพันธ์": "February", "มีนาคม": "March",
	"เมษายน": "April", "พฤษภาคม": "May", "มิถุนายน": "June",
	"กรกฎาคม": "July", "สิงหาคม": "August", "กันยายน": "September",
	"ตุลาคม": "October", "พฤศจิกายน": "November", "ธันวาคม": "December",
}

// parseStructured handles the labeled key-value grammar:
//
//	ชื่อนัดหมาย: "ตรวจสุขภาพประจำปี"
//	วันเวลา: "08/10/2025 15:00"
//	แพทย์: "นพ. สมชาย"
//	โรงพยาบาล: "ศิริราช"
//	แผนก: "อายุรกรรม"
//
// Any subset of labels may appear but a parseable วันเวลา is mandatory;
// without it the stage declines and the cascade moves on
func (p *Parser) parseStructured(text string, now time.Time) (ParsedAppointment, bool) {
	if !strings.Contains(text, "ชื่อนัดหมาย:") && !strings.Contains(text, "วันเวลา:") {
		return ParsedAppointment{}, false
	}

	whenStr := fieldValue(reFieldWhen, text)
	if whenStr == "" {
		return ParsedAppointment{}, false
	}
	when, ok := parseWhen(whenStr, now.Location())
	if !ok {
		return ParsedAppointment{}, false
	}

	out := ParsedAppointment{
		Mode:       ModeStructured,
		Title:      fieldValue(reFieldTitle, text),
		When:       when,
		Contact:    fieldValue(reFieldDoctor, text),
		Building:   fieldValue(reFieldDept, text),
		Confidence: structuredConfidence,
	}
	if h := fieldValue(reFieldHospital, text); h != "" {
		out.Location = "โรงพยาบาล" + h
	}
	if out.Title == "" {
		out.Title = DefaultTitle
	}
	return out, true
}

func fieldValue(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseWhen tries each reference layout after translating Thai month names.
// Buddhist Era years are shifted to the common era before parsing so the
// layouts stay simple
func parseWhen(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for th, en := range thaiMonthNames {
		s = strings.ReplaceAll(s, th, en)
	}
	for _, layout := range whenLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if t.Year() >= 2400 {
			t = t.AddDate(-543, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}
