package parser

import "unicode"

// Tokenizer segments text into word-ish units. Thai carries no spaces
// between words, so the default implementation can only split on script and
// character-class boundaries; a dictionary-based segmenter can be plugged in
// via WithTokenizer without touching the pipeline
type Tokenizer interface {
	Tokens(text string) []string
}

// ScriptTokenizer splits on transitions between Thai runs, Latin runs and
// digit runs, dropping whitespace and anything else
type ScriptTokenizer struct{}

type runeClass int

const (
	classOther runeClass = iota
	classThai
	classLatin
	classDigit
)

func classOf(r rune) runeClass {
	switch {
	case r >= 0x0E00 && r <= 0x0E7F:
		return classThai
	case unicode.IsLetter(r):
		return classLatin
	case r >= '0' && r <= '9':
		return classDigit
	default:
		return classOther
	}
}

// DictTokenizer refines Thai script runs with greedy longest-match against a
// known vocabulary. Stretches with no dictionary hit come out as one token,
// the same shape ScriptTokenizer would give. Latin and digit runs pass
// through untouched
type DictTokenizer struct {
	words  map[string]struct{}
	maxLen int // longest dictionary entry, in runes
}

// NewDictTokenizer builds a tokenizer over the given word list
func NewDictTokenizer(words []string) *DictTokenizer {
	d := &DictTokenizer{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		d.words[w] = struct{}{}
		if n := len([]rune(w)); n > d.maxLen {
			d.maxLen = n
		}
	}
	return d
}

// Tokens implements Tokenizer
func (d *DictTokenizer) Tokens(text string) []string {
	var out []string
	for _, run := range (ScriptTokenizer{}).Tokens(text) {
		r := []rune(run)
		if len(r) == 0 || classOf(r[0]) != classThai {
			out = append(out, run)
			continue
		}
		out = append(out, d.segment(r)...)
	}
	return out
}

func (d *DictTokenizer) segment(run []rune) []string {
	var out []string
	pending := -1 // start of an unmatched stretch
	i := 0
	for i < len(run) {
		matched := 0
		limit := len(run) - i
		if limit > d.maxLen {
			limit = d.maxLen
		}
		for n := limit; n > 0; n-- {
			if _, ok := d.words[string(run[i:i+n])]; ok {
				matched = n
				break
			}
		}
		if matched == 0 {
			if pending < 0 {
				pending = i
			}
			i++
			continue
		}
		if pending >= 0 {
			out = append(out, string(run[pending:i]))
			pending = -1
		}
		out = append(out, string(run[i:i+matched]))
		i += matched
	}
	if pending >= 0 {
		out = append(out, string(run[pending:]))
	}
	return out
}

// Tokens implements Tokenizer
func (ScriptTokenizer) Tokens(text string) []string {
	var out []string
	start := -1
	prev := classOther
	for i, r := range text {
		c := classOf(r)
		if c != prev {
			if start >= 0 && prev != classOther {
				out = append(out, text[start:i])
			}
			start = i
			prev = c
		}
	}
	if start >= 0 && prev != classOther {
		out = append(out, text[start:])
	}
	return out
}
