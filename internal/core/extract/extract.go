package extract

import (
	"regexp"

	"nadbot/internal/core/lexicon"
)

// Extractor compiles its patterns once and is safe for concurrent use
type Extractor struct {
	lex *lexicon.Pack

	// time
	reFormal []*regexp.Regexp
	reSpoken []*regexp.Regexp
	rePeriod *regexp.Regexp

	// date
	reWeekday  *regexp.Regexp
	reExplicit *regexp.Regexp

	// location
	reGeneralPrefixed *regexp.Regexp
	reConnector       *regexp.Regexp
	reMall            []*regexp.Regexp
	reSpecific        []*regexp.Regexp
	reBuilding        []*regexp.Regexp
	reEnglishConn     *regexp.Regexp
	reVenue           *regexp.Regexp
}

const thai = `\x{0E00}-\x{0E7F}`

// New builds an Extractor over the given lexicon
func New(lex *lexicon.Pack) *Extractor {
	e := &Extractor{lex: lex}

	e.reFormal = []*regexp.Regexp{
		regexp.MustCompile(`เวลา\s*([0-9]{1,2})[:.]([0-9]{2})`),
		regexp.MustCompile(`([0-9]{1,2})[:.]([0-9]{2})\s*น?\.?`),
		regexp.MustCompile(`([0-9]{1,2})\s*นาฬิกา\s*([0-9]{2})?`),
	}
	e.reSpoken = []*regexp.Regexp{
		regexp.MustCompile(`([0-9]{1,2})\s*โมง(เช้า|เย็น|ตรง)?(ครึ่ง)?`),
		regexp.MustCompile(`บ่าย\s*([0-9]{1,2})(ครึ่ง)?`),
		regexp.MustCompile(`([0-9]{1,2})\s*ทุ่ม(ครึ่ง)?`),
	}
	e.rePeriod = regexp.MustCompile(`ตอน(เช้า|สาย|เที่ยง|บ่าย|เย็น|ค่ำ|ดึก)`)

	e.reWeekday = regexp.MustCompile(
		`(?:วัน)?(จันทร์|อังคาร|พุธ|พฤหัสบดี|พฤหัส|ศุกร์|เสาร์|อาทิตย์)(นี้|หน้า|ถัดไป|ที่แล้ว)?`)

	// month alternation, longest names first so ม.ค. beats มค and มกราคม beats มกรา
	monthAlt := ""
	for i, k := range lex.MonthKeys {
		if i > 0 {
			monthAlt += "|"
		}
		monthAlt += regexp.QuoteMeta(k)
	}
	e.reExplicit = regexp.MustCompile(
		`(?:วันที่\s*)?([0-9]{1,2})\s+(` + monthAlt + `)(?:\s*([0-9]{2,4}))?`)

	venueAlt := ""
	for _, g := range lex.GeneralVenues {
		if venueAlt != "" {
			venueAlt += "|"
		}
		venueAlt += regexp.QuoteMeta(g)
	}
	e.reGeneralPrefixed = regexp.MustCompile(`ที่(?:` + venueAlt + `)[0-9A-Za-z_` + thai + `]*`)
	e.reConnector = regexp.MustCompile(`(?:ที่|ณ|ใน|ไป)\s+([^\s,.]+)`)
	e.reMall = []*regexp.Regexp{
		regexp.MustCompile(`เซ็นทรัล[^\s]*`),
		regexp.MustCompile(`สยาม[^\s]*`),
		regexp.MustCompile(`เอ็มบีเค`),
		regexp.MustCompile(`[^\s]*ห้าง[^\s]*`),
		regexp.MustCompile(`[^\s]*พลาซ่า[^\s]*`),
		regexp.MustCompile(`[^\s]*มอลล์[^\s]*`),
	}
	e.reSpecific = []*regexp.Regexp{
		regexp.MustCompile(`(?:ที่)?สนามบิน([0-9A-Za-z_` + thai + `]*)`),
		regexp.MustCompile(`(?:ที่)?โรงพยาบาล([0-9A-Za-z_` + thai + `]*)`),
		regexp.MustCompile(`คลินิก([0-9A-Za-z_` + thai + `]*)`),
	}
	e.reBuilding = []*regexp.Regexp{
		regexp.MustCompile(`(?:ที่)?อาคาร[0-9A-Za-z_` + thai + `]*`),
		regexp.MustCompile(`(?:ที่)?ชั้น[0-9]+`),
		regexp.MustCompile(`(?:ที่)?แผนก[0-9A-Za-z_` + thai + `]+`),
		regexp.MustCompile(`(?:ที่)?ห้อง[0-9A-Za-z_` + thai + `]+`),
		regexp.MustCompile(`(?:ที่)?ตึก[0-9A-Za-z_` + thai + `]*`),
		regexp.MustCompile(`(?:ที่)?โซน[0-9A-Za-z_` + thai + `]*`),
		regexp.MustCompile(`(?:ที่)?ฝ่าย[0-9A-Za-z_` + thai + `]+`),
		regexp.MustCompile(`(?:ที่)?สำนักงาน[0-9A-Za-z_` + thai + `]*`),
		regexp.MustCompile(`(?:ที่)?ศูนย์[0-9A-Za-z_` + thai + `]+`),
	}
	e.reEnglishConn = regexp.MustCompile(
		`\b(?:at|in)\s+([A-Z][A-Za-z0-9&\-]*(?:\s+[A-Z][A-Za-z0-9&\-]*){0,4})`)

	venues := ""
	for _, v := range lex.Venues {
		if venues != "" {
			venues += "|"
		}
		venues += regexp.QuoteMeta(v)
	}
	e.reVenue = regexp.MustCompile(venues)

	return e
}

// Lexicon returns the pack the extractor was built over
func (e *Extractor) Lexicon() *lexicon.Pack { return e.lex }
