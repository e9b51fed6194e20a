package parser

import (
	"nadbot/internal/core/classify"
	"nadbot/internal/core/extract"
)

// Score weights. Time dominates because a clock value is the hardest signal
// to fake, then date, location, phone
const (
	wTimeFormal     = 0.40
	wTimeExpression = 0.35
	wTimeSpoken     = 0.30

	wDateExplicit = 0.25
	wDateRelative = 0.25
	wDateWeekday  = 0.20

	wLocSpecific = 0.20
	wLocHospital = 0.18
	wLocGeneral  = 0.15

	wPhone = 0.15

	wDomainBonus   = 0.05
	wCompleteThree = 0.10
	wCompleteTwo   = 0.05
)

// confidence folds everything found into one deterministic score in [0,1].
// Each kind contributes its best category weight, plus a flat bonus for a
// recognized domain and a completeness bonus over the four kinds
func (p *Parser) confidence(times, dates, locs, phones []extract.Span, contact string, ctx classify.Context) float64 {
	var score float64

	best := func(spans []extract.Span, weight func(extract.Category) float64) float64 {
		var w float64
		for _, s := range spans {
			if v := weight(s.Category); v > w {
				w = v
			}
		}
		return w
	}

	score += best(times, func(c extract.Category) float64 {
		switch c {
		case extract.TimeFormal:
			return wTimeFormal
		case extract.TimeExpression:
			return wTimeExpression
		default:
			return wTimeSpoken
		}
	})
	score += best(dates, func(c extract.Category) float64 {
		switch c {
		case extract.DateExplicit:
			return wDateExplicit
		case extract.DateRelative:
			return wDateRelative
		default:
			return wDateWeekday
		}
	})
	score += best(locs, func(c extract.Category) float64 {
		switch c {
		case extract.LocSpecific:
			return wLocSpecific
		case extract.LocHospital:
			return wLocHospital
		default:
			return wLocGeneral
		}
	})
	if len(phones) > 0 {
		score += wPhone
	}

	if ctx.Domain != classify.DomainGeneral {
		score += wDomainBonus
	}

	found := 0
	for _, ok := range []bool{
		len(times) > 0,
		len(dates) > 0,
		len(locs) > 0,
		len(phones) > 0 || contact != "",
	} {
		if ok {
			found++
		}
	}
	switch {
	case found >= 3:
		score += wCompleteThree
	case found >= 2:
		score += wCompleteTwo
	}

	if score > 1 {
		score = 1
	}
	return score
}
