// Package parser turns one chat message plus a reference instant into a
// ParsedAppointment. Three stages run in order: a labeled key-value grammar,
// a fixed narrative template, then the full heuristic pipeline. Exactly one
// stage commits; the earlier stages decline cleanly when their anchors are
// missing. The whole package is stateless between calls, "now" is always an
// explicit argument
package parser

import (
	"time"

	"nadbot/internal/core/classify"
	"nadbot/internal/core/extract"
	"nadbot/internal/core/lexicon"
	"nadbot/internal/core/normalize"
)

// Mode names the stage that produced a result
type Mode string

const (
	// ModeStructured is the labeled key-value grammar
	ModeStructured Mode = "structured"
	// ModeTemplate is the fixed narrative sentence template
	ModeTemplate Mode = "template"
	// ModeHeuristic is the full extraction pipeline
	ModeHeuristic Mode = "heuristic"
)

// DefaultTitle is used when nothing describable survives title extraction
const DefaultTitle = "นัดหมาย"

// Diagnostics carries the raw candidate lists for tests and debugging.
// Downstream consumers read the ParsedAppointment fields, never this
type Diagnostics struct {
	Normalized string
	Tokens     []string
	Times      []extract.Span
	Dates      []extract.Span
	Locations  []extract.Span
	Phones     []extract.Span
}

// ParsedAppointment is the output record of one extraction call
type ParsedAppointment struct {
	Mode       Mode
	Title      string
	When       time.Time
	Location   string
	Building   string
	Contact    string
	Phone      string
	Confidence float64
	Context    classify.Context

	Diag Diagnostics
}

// Parser is safe for concurrent use; all state is compiled patterns
type Parser struct {
	lex  *lexicon.Pack
	norm *normalize.Normalizer
	ex   *extract.Extractor
	cls  *classify.Classifier
	tok  Tokenizer
}

// Option customizes a Parser
type Option func(*Parser)

// WithTokenizer swaps the word segmenter used for residual-text cleanup
func WithTokenizer(t Tokenizer) Option {
	return func(p *Parser) { p.tok = t }
}

// New builds a Parser over the given lexicon
func New(lex *lexicon.Pack, opts ...Option) *Parser {
	p := &Parser{
		lex:  lex,
		norm: normalize.New(),
		ex:   extract.New(lex),
		cls:  classify.New(lex),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tok == nil {
		p.tok = ScriptTokenizer{}
	}
	return p
}

// Parse extracts an appointment from text relative to now.
// It never errors; a sparse low-confidence result is a valid outcome
func (p *Parser) Parse(text string, now time.Time) ParsedAppointment {
	text = normalize.Sanitize(text)
	if r, ok := p.parseStructured(text, now); ok {
		return r
	}
	if r, ok := p.parseTemplate(text); ok {
		return r
	}
	return p.parseHeuristic(text, now)
}

// IsCommand reports whether text opens with an add-appointment intent phrase
func (p *Parser) IsCommand(text string) bool {
	text = p.norm.Normalize(text)
	for _, c := range p.lex.Commands {
		if containsFold(text, c) {
			return true
		}
	}
	return false
}

func (p *Parser) parseHeuristic(raw string, now time.Time) ParsedAppointment {
	text := p.norm.Normalize(raw)

	times := p.ex.Times(text)
	dates := p.ex.Dates(text, now)
	locs := p.ex.Locations(text)
	phones := p.ex.Phones(text)
	ctx := p.cls.Classify(text)

	out := ParsedAppointment{
		Mode:    ModeHeuristic,
		When:    p.resolve(dates, times, now),
		Context: ctx,
		Diag: Diagnostics{
			Normalized: text,
			Tokens:     p.tok.Tokens(text),
			Times:      times,
			Dates:      dates,
			Locations:  locs,
			Phones:     phones,
		},
	}
	out.Location, out.Building = p.place(locs, ctx)
	out.Contact = p.contactPerson(text)
	out.Title = p.title(text, times, dates, locs, phones)
	if len(phones) > 0 {
		out.Phone = phones[0].Text
	}
	out.Confidence = p.confidence(times, dates, locs, phones, out.Contact, ctx)
	return out
}
