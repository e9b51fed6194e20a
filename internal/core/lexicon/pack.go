// Package lexicon loads the embedded Thai appointment lexicon.
// It holds the vocabulary tables the extractors and resolver share:
// relative days, weekdays, months, time expressions, domain keywords,
// venue names and phone groupings
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed lexicon.json
var embedded []byte

// Modifier qualifies a weekday mention
type Modifier string

const (
	// ModNone means the weekday carried no qualifier
	ModNone Modifier = ""
	// ModThis is the "this week" qualifier
	ModThis Modifier = "this"
	// ModNext is the "next week" qualifier
	ModNext Modifier = "next"
	// ModLast is the "last week" qualifier
	ModLast Modifier = "last"
)

type rawPack struct {
	Version          int               `json:"version"`
	Commands         []string          `json:"commands"`
	RelativeDays     map[string]int    `json:"relative_days"`
	Weekdays         map[string]int    `json:"weekdays"`
	WeekdayModifiers map[string]string `json:"weekday_modifiers"`
	Months           map[string]int    `json:"months"`
	PeriodStarts     map[string]int    `json:"period_starts"`
	Expressions      map[string]string `json:"expressions"`
	MedicalKeywords  []string          `json:"medical_keywords"`
	BusinessKeywords []string          `json:"business_keywords"`
	BuildingTerms    []string          `json:"building_terms"`
	GeneralVenues    []string          `json:"general_venues"`
	Venues           []string          `json:"venues"`
	PhonePatterns    []string          `json:"phone_patterns"`
}

// Expression is a fixed idiom mapping straight to a clock value
type Expression struct {
	Text   string
	Hour   int
	Minute int
}

// Pack is the compiled lexicon
type Pack struct {
	Version int

	// Commands, longest first, stripped from the front of a message
	Commands []string

	RelativeDays map[string]int
	// RelativeDayKeys is longest-first so มะรืนนี้ wins over มะรืน
	RelativeDayKeys []string

	Weekdays map[string]int // จันทร์=0 .. อาทิตย์=6
	// WeekdayKeys is longest-first so พฤหัสบดี wins over พฤหัส
	WeekdayKeys []string

	WeekdayModifiers map[string]Modifier
	// ModifierKeys is longest-first so ที่แล้ว wins over นี้
	ModifierKeys []string

	Months map[string]int
	// MonthKeys is longest-first so มกราคม wins over มกรา
	MonthKeys []string

	PeriodStarts map[string]int

	// Expressions, longest first, so บ่ายสองครึ่ง wins over บ่ายสอง
	Expressions []Expression

	MedicalKeywords  []string
	BusinessKeywords []string
	BuildingTerms    []string
	GeneralVenues    []string
	Venues           []string

	Phones []*regexp.Regexp
}

// Load returns the compiled pack from the embedded lexicon.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:          rp.Version,
		Commands:         longestFirst(rp.Commands),
		RelativeDays:     rp.RelativeDays,
		RelativeDayKeys:  longestFirst(keys(rp.RelativeDays)),
		Weekdays:         rp.Weekdays,
		WeekdayKeys:      longestFirst(keys(rp.Weekdays)),
		WeekdayModifiers: make(map[string]Modifier, len(rp.WeekdayModifiers)),
		ModifierKeys:     longestFirst(keys(rp.WeekdayModifiers)),
		Months:           rp.Months,
		MonthKeys:        longestFirst(keys(rp.Months)),
		PeriodStarts:     rp.PeriodStarts,
		MedicalKeywords:  rp.MedicalKeywords,
		BusinessKeywords: rp.BusinessKeywords,
		BuildingTerms:    rp.BuildingTerms,
		GeneralVenues:    rp.GeneralVenues,
		Venues:           rp.Venues,
	}

	for k, v := range rp.WeekdayModifiers {
		switch Modifier(v) {
		case ModThis, ModNext, ModLast:
			p.WeekdayModifiers[k] = Modifier(v)
		default:
			return nil, fmt.Errorf("lexicon: unknown weekday modifier %q for %q", v, k)
		}
	}

	for k, v := range rp.Weekdays {
		if v < 0 || v > 6 {
			return nil, fmt.Errorf("lexicon: weekday %q out of range: %d", k, v)
		}
	}
	for k, v := range rp.Months {
		if v < 1 || v > 12 {
			return nil, fmt.Errorf("lexicon: month %q out of range: %d", k, v)
		}
	}
	for k, v := range rp.PeriodStarts {
		if v < 0 || v > 23 {
			return nil, fmt.Errorf("lexicon: period %q start hour out of range: %d", k, v)
		}
	}

	for text, hm := range rp.Expressions {
		var h, m int
		if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
			return nil, fmt.Errorf("lexicon: expression %q: bad clock %q: %w", text, hm, err)
		}
		if h < 0 || h > 23 || m < 0 || m > 59 {
			return nil, fmt.Errorf("lexicon: expression %q: clock %q out of range", text, hm)
		}
		p.Expressions = append(p.Expressions, Expression{Text: text, Hour: h, Minute: m})
	}
	sort.Slice(p.Expressions, func(i, j int) bool {
		if len(p.Expressions[i].Text) != len(p.Expressions[j].Text) {
			return len(p.Expressions[i].Text) > len(p.Expressions[j].Text)
		}
		return p.Expressions[i].Text < p.Expressions[j].Text
	})

	for _, pat := range rp.PhonePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile phone pattern %q: %w", pat, err)
		}
		p.Phones = append(p.Phones, re)
	}

	return p, nil
}

// MustLoad panics on a broken embedded lexicon. For mains and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Vocabulary returns every surface form the pack knows about, deduplicated.
// Dictionary-backed segmenters seed their word list from this
func (p *Pack) Vocabulary() []string {
	seen := make(map[string]struct{}, 256)
	var out []string
	add := func(ss ...string) {
		for _, s := range ss {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	add(p.Commands...)
	add(p.RelativeDayKeys...)
	add(p.WeekdayKeys...)
	add(p.ModifierKeys...)
	add(p.MonthKeys...)
	for k := range p.PeriodStarts {
		add(k)
	}
	for _, e := range p.Expressions {
		add(e.Text)
	}
	add(p.MedicalKeywords...)
	add(p.BusinessKeywords...)
	add(p.BuildingTerms...)
	add(p.GeneralVenues...)
	add(p.Venues...)
	return out
}

// IsBuildingTerm reports whether s contains any building/department vocabulary
func (p *Pack) IsBuildingTerm(s string) bool {
	for _, t := range p.BuildingTerms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func longestFirst(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
