package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reTmplDateNum  = regexp.MustCompile(`วันที่\s*([0-9]{1,2})[/\-]([0-9]{1,2})[/\-]([0-9]{4})`)
	reTmplDateThai = regexp.MustCompile(`วันที่\s*([0-9]{1,2})\s*([\x{0E01}-\x{0E5B}]+)\s*([0-9]{4})`)
	reTmplTime     = regexp.MustCompile(`เวลา\s*([0-9]{1,2})[.:]([0-9]{2})`)
	reTmplHospital = regexp.MustCompile(`โรงพยาบาล\s*([^\s]+(?:\s+[^\s]+)*?)(?:\s+แผนก|\s*$)`)
	reTmplDept     = regexp.MustCompile(`แผนก\s*([^\s]+(?:\s+[^\s]+)*?)(?:\s+(?:ตรวจ|ปรึกษา|นัด|พบ)|$)`)
	reTmplDoctor   = regexp.MustCompile(`พบ\s*(.+)$`)
	reTmplAfterDep = regexp.MustCompile(`^.*?แผนก\s*[^\s]+(?:\s+[^\s]+)*?\s+`)
)

// parseTemplate handles the fixed narrative form
//
//	วันที่ 1 ตุลาคม 2025 เวลา 13.00 โรงพยาบาลศิริราช แผนก กุมารเวชกรรม
//	นัดติดตามพัฒนาการ พบ พญ. เนตรวิมล
//
// All five anchor words (วันที่ เวลา โรงพยาบาล แผนก พบ) must be present or
// the stage declines; anything looser and the hospital capture swallows the
// activity text, which the heuristic tier handles better
func (p *Parser) parseTemplate(text string) (ParsedAppointment, bool) {
	for _, anchor := range []string{"วันที่", "เวลา", "โรงพยาบาล", "แผนก", "พบ"} {
		if !strings.Contains(text, anchor) {
			return ParsedAppointment{}, false
		}
	}

	day, month, year, ok := p.templateDate(text)
	if !ok {
		return ParsedAppointment{}, false
	}

	tm := reTmplTime.FindStringSubmatch(text)
	if tm == nil {
		return ParsedAppointment{}, false
	}
	hour, _ := strconv.Atoi(tm[1])
	minute, _ := strconv.Atoi(tm[2])

	if year >= 2400 {
		year -= 543
	}
	when := time.Date(year, time.Month(month), day, hour, minute, 0, 0, bangkok)
	if when.Day() != day || when.Month() != time.Month(month) ||
		hour > 23 || minute > 59 {
		return ParsedAppointment{}, false
	}

	out := ParsedAppointment{
		Mode:       ModeTemplate,
		When:       when,
		Confidence: templateConfidence,
	}
	if m := reTmplHospital.FindStringSubmatch(text); m != nil {
		out.Location = "โรงพยาบาล" + strings.TrimSpace(m[1])
	}
	if m := reTmplDept.FindStringSubmatch(text); m != nil {
		out.Building = strings.TrimSpace(m[1])
	}
	if m := reTmplDoctor.FindStringSubmatch(text); m != nil {
		out.Contact = strings.TrimSpace(m[1])
	}
	out.Title = templateTitle(text)
	return out, true
}

var bangkok = mustLoadBangkok()

// Bangkok returns the zone appointment times are anchored to
func Bangkok() *time.Location { return bangkok }

func mustLoadBangkok() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

func (p *Parser) templateDate(text string) (day, month, year int, ok bool) {
	if m := reTmplDateNum.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		return day, month, year, month >= 1 && month <= 12
	}
	m := reTmplDateThai.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[3])
	month, found := p.lex.Months[m[2]]
	if !found {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// templateTitle is the free text between the department name and the
// meeting-with marker
func templateTitle(text string) string {
	rest := reTmplAfterDep.ReplaceAllString(text, "")
	if i := strings.Index(rest, "พบ"); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return DefaultTitle
	}
	return rest
}
