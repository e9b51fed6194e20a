package parser

import (
	"regexp"
	"strings"

	"nadbot/internal/core/classify"
	"nadbot/internal/core/extract"
)

var (
	reTrailingTime    = regexp.MustCompile(`(?:บ่าย|เช้า|เย็น|ค่ำ|[0-9]{1,2}[:.]?[0-9]{0,2}|โมง|นาที|นาฬิกา).*$`)
	reTrailingWeekday = regexp.MustCompile(`(?:จันทร์|อังคาร|พุธ|พฤหัสบดี|พฤหัส|ศุกร์|เสาร์|อาทิตย์).*$`)
)

// place splits the location candidates into a venue and a building or
// department qualifier. A building-qualified candidate never doubles as the
// venue. Medical context prefers a hospital candidate over a general one
func (p *Parser) place(locs []extract.Span, ctx classify.Context) (location, building string) {
	var pick, hospital *extract.Span
	for i := range locs {
		s := &locs[i]
		if s.Category == extract.LocBuilding {
			// digits are load-bearing in floor qualifiers, skip the time cleanup
			if building == "" {
				building = strings.TrimSpace(strings.TrimPrefix(s.Text, "ที่"))
			}
			continue
		}
		if s.Category != extract.LocHospital && p.lex.IsBuildingTerm(s.Text) {
			continue
		}
		if pick == nil {
			pick = s
		}
		if hospital == nil && s.Category == extract.LocHospital {
			hospital = s
		}
	}
	if ctx.Medical() && hospital != nil && (pick == nil || pick.Category == extract.LocGeneral) {
		pick = hospital
	}
	if pick != nil {
		// gazetteer and capitalized names are tightly bounded already and may
		// legitimately end in digits (Terminal 21)
		if pick.Category == extract.LocVenue {
			location = strings.TrimSpace(pick.Text)
		} else {
			location = p.cleanPlace(pick.Text)
		}
	}
	return location, building
}

// cleanPlace strips the trailing time words, weekday names and contact
// markers that loosely bounded venue patterns tend to swallow
func (p *Parser) cleanPlace(s string) string {
	s = strings.TrimSpace(reTrailingTime.ReplaceAllString(s, ""))
	if i := strings.Index(s, "กับ"); i >= 0 {
		s = s[:i]
	}
	s = reTrailingWeekday.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
