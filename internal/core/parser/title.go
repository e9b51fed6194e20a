package parser

import (
	"regexp"
	"strings"

	"nadbot/internal/core/extract"
)

var (
	reWithToken    = regexp.MustCompile(`กับ[^\s]*`)
	reTrailingLoc  = regexp.MustCompile(`\s*(?:ที่|ณ|ใน|ไป)[^\s]*\s*$`)
	reEnglishTail  = regexp.MustCompile(`\s+(?:at|in|to)\s+.*$`)
	rePunct        = regexp.MustCompile(`[,.!?:;"'#()\[\]]+`)
	reSpaceRun     = regexp.MustCompile(`\s+`)
	reRelativeWord = regexp.MustCompile(`(?:มะเมื่อวาน|เมื่อวานนี้|เมื่อวาน|มะรืนนี้|มะรืน|พรุ่งนี้|วันนี้)`)
	reWeekdayWord  = regexp.MustCompile(`(?:วัน)?(?:จันทร์|อังคาร|พุธ|พฤหัสบดี|พฤหัส|ศุกร์|เสาร์|อาทิตย์)(?:นี้|หน้า|ถัดไป|ที่แล้ว)?`)
)

// title derives the activity description as the complement of everything the
// extractors claimed. Claimed byte ranges are blanked in one pass over the
// normalized text, which sidesteps the offset drift that repeated substring
// removal invites; non-span artifacts (command phrases, field labels, the
// contact marker, stray connectors and punctuation) are then stripped by
// pattern. An empty residual falls back to the generic placeholder
func (p *Parser) title(text string, spans ...[]extract.Span) string {
	s := blankSpans(text, spans)

	for _, c := range p.lex.Commands {
		s = removeFold(s, c)
	}
	s = reWeekdayWord.ReplaceAllString(s, " ")
	s = reRelativeWord.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "วันที่", " ")
	s = strings.ReplaceAll(s, "เวลา", " ")
	s = reWithToken.ReplaceAllString(s, " ")
	s = reTrailingLoc.ReplaceAllString(s, " ")
	s = reEnglishTail.ReplaceAllString(s, " ")
	s = rePunct.ReplaceAllString(s, " ")
	s = strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))

	if s == "" {
		return DefaultTitle
	}
	return s
}

// blankSpans replaces every claimed byte range with spaces, preserving the
// length and offsets of the untouched remainder
func blankSpans(text string, spanLists [][]extract.Span) string {
	b := []byte(text)
	for _, spans := range spanLists {
		for _, sp := range spans {
			start, end := sp.Start, sp.End
			if start < 0 {
				start = 0
			}
			if end > len(b) {
				end = len(b)
			}
			for i := start; i < end; i++ {
				b[i] = ' '
			}
		}
	}
	return string(b)
}

// Tokens segments text with the parser's configured tokenizer. The heuristic
// stage records the segmentation in its diagnostics; callers that
// keyword-match over titles can use this instead of re-segmenting themselves
func (p *Parser) Tokens(text string) []string {
	return p.tok.Tokens(text)
}

// containsFold reports a case-insensitive substring match. Thai has no case,
// this matters only for the English command forms
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// removeFold blanks every case-insensitive occurrence of sub in s
func removeFold(s, sub string) string {
	lower := strings.ToLower(s)
	sub = strings.ToLower(sub)
	for {
		i := strings.Index(lower, sub)
		if i < 0 {
			return s
		}
		s = s[:i] + " " + s[i+len(sub):]
		lower = lower[:i] + " " + lower[i+len(sub):]
	}
}
