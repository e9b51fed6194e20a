package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize strips control characters before text enters the pipeline or
// storage: NUL and the other ASCII controls (keeping \n \r \t), DEL, the
// C1 range U+0080..U+009F, and invalid UTF-8 bytes. Clean input comes
// back as-is without allocating
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	i := cleanPrefix(s)
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if keepRune(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// cleanPrefix returns the byte offset of the first rune Sanitize would
// drop, or len(s) when there is none
func cleanPrefix(s string) int {
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			if !keepRune(rune(c)) {
				return i
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		if !keepRune(r) {
			return i
		}
		i += size
	}
	return len(s)
}

func keepRune(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r < 0x20 || r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}
