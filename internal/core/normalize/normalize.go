// Package normalize provides the deterministic text normalizer used by the extractors
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove zero-width and format chars, strip decorative pictographs
// 4 Width fold fullwidth to ASCII
// 5 Thai numeral folding ๐..๙ -> 0..9
// 6 Abbreviation expansion at word boundaries eg พน. -> พรุ่งนี้ รพ. -> โรงพยาบาล
// 7 Collapse whitespace to single spaces and trim
//
// Latin case is preserved: capitalized venue names are a location signal
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		// combining marks stay, Thai vowels and tone marks are Mn
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			runes.Remove(runes.In(unicode.So)), // strip pictographs and decorative symbols
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// expansions maps dotted shorthand to its full form
// each target contains no dotted shorthand itself, which keeps Normalize idempotent
var expansions = []struct{ abbr, full string }{
	{"พน.", "พรุ่งนี้"},
	{"มรน.", "มะรืนนี้"},
	{"รพ.", "โรงพยาบาล"},
	{"รร.", "โรงเรียน"},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 fold Thai digits
	ns = foldThaiDigits(ns)

	// 6 expand shorthand
	ns = expandAbbrev(ns)

	// 7 collapse whitespace and trim
	ns = collapseSpaces(ns)

	return ns
}

// foldThaiDigits maps ๐..๙ (U+0E50..U+0E59) to ASCII digits
func foldThaiDigits(s string) string {
	if !hasThaiDigit(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '๐' && r <= '๙' {
			b.WriteRune('0' + (r - '๐'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasThaiDigit(s string) bool {
	for _, r := range s {
		if r >= '๐' && r <= '๙' {
			return true
		}
	}
	return false
}

// expandAbbrev replaces dotted shorthand with its full form
// a hit requires the rune before the shorthand to not be a Thai consonant,
// so longer tokens that merely end with the same bytes stay intact
func expandAbbrev(s string) string {
	for _, e := range expansions {
		if !strings.Contains(s, e.abbr) {
			continue
		}
		var b strings.Builder
		b.Grow(len(s) + 16)
		rest := s
		for {
			i := strings.Index(rest, e.abbr)
			if i < 0 {
				b.WriteString(rest)
				break
			}
			var prev rune
			for _, r := range rest[:i] {
				prev = r
			}
			b.WriteString(rest[:i])
			if isThaiConsonant(prev) {
				b.WriteString(e.abbr)
			} else {
				b.WriteString(e.full)
			}
			rest = rest[i+len(e.abbr):]
		}
		s = b.String()
	}
	return s
}

func isThaiConsonant(r rune) bool {
	return r >= 0x0E01 && r <= 0x0E2E
}

// collapseSpaces converts whitespace runs, newlines included, to a single
// ASCII space and trims the ends. The labeled-form grammar reads its lines
// before normalization, so nothing downstream needs the breaks
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS {
			b.WriteByte(' ')
			inWS = false
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), " ")
}
