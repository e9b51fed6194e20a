// Package classify scores normalized text against domain keyword sets.
// The winning domain biases location preference downstream; it never
// rejects candidates on its own
package classify

import (
	"strings"

	"nadbot/internal/core/lexicon"
)

// Domain is the coarse subject area of a message
type Domain string

const (
	// DomainMedical covers clinical mentions: doctor titles, treatments, facilities
	DomainMedical Domain = "medical"
	// DomainBusiness covers meeting and office vocabulary
	DomainBusiness Domain = "business"
	// DomainGeneral is everything else, including ties
	DomainGeneral Domain = "general"
)

// Context is the classification of one message. Computed once, immutable
type Context struct {
	Domain       Domain
	MedicalHits  int
	BusinessHits int
}

// Medical reports whether the medical domain won
func (c Context) Medical() bool { return c.Domain == DomainMedical }

// Classifier counts keyword occurrences from the shared lexicon
type Classifier struct {
	lex *lexicon.Pack
}

// New builds a Classifier over the given lexicon
func New(lex *lexicon.Pack) *Classifier {
	return &Classifier{lex: lex}
}

// Classify returns the domain context for normalized text.
// Higher hit count wins; ties and zero hits fall to general
func (c *Classifier) Classify(text string) Context {
	ctx := Context{Domain: DomainGeneral}
	if text == "" {
		return ctx
	}
	for _, k := range c.lex.MedicalKeywords {
		ctx.MedicalHits += strings.Count(text, k)
	}
	for _, k := range c.lex.BusinessKeywords {
		ctx.BusinessHits += strings.Count(text, k)
	}
	switch {
	case ctx.MedicalHits > ctx.BusinessHits:
		ctx.Domain = DomainMedical
	case ctx.BusinessHits > ctx.MedicalHits:
		ctx.Domain = DomainBusiness
	}
	return ctx
}
