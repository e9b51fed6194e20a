// Package extract holds the candidate extractors that run over normalized text.
// Each extractor is side-effect-free and returns spans; no extractor ever errors,
// text with nothing in it yields an empty slice
package extract

import "sort"

// Kind is the candidate family a span belongs to
type Kind string

const (
	// KindTime marks a clock candidate
	KindTime Kind = "time"
	// KindDate marks a calendar candidate
	KindDate Kind = "date"
	// KindLocation marks a venue candidate
	KindLocation Kind = "location"
	// KindContact marks a phone candidate
	KindContact Kind = "contact"
)

// Category is the subtype tag within a kind
type Category string

const (
	// TimeFormal is numeric hour:minute, optionally with a trailing น. marker
	TimeFormal Category = "formal"
	// TimeSpoken is colloquial hour counting (โมง บ่าย ทุ่ม) with qualifiers
	TimeSpoken Category = "spoken"
	// TimeExpression is a fixed idiom mapping straight to a clock value
	TimeExpression Category = "expression"

	// DateRelative is a relative-day word (วันนี้ พรุ่งนี้ ...)
	DateRelative Category = "relative"
	// DateWeekday is a weekday name with an optional modifier
	DateWeekday Category = "weekday"
	// DateExplicit is day + month name + optional year
	DateExplicit Category = "explicit"

	// LocSpecific is a named non-medical facility (airport etc)
	LocSpecific Category = "specific"
	// LocHospital is a medical facility
	LocHospital Category = "hospital"
	// LocBuilding is a building/floor/department qualifier
	LocBuilding Category = "building"
	// LocGeneral is any other locative-preposition phrase
	LocGeneral Category = "general"
	// LocVenue is a capitalized foreign name or gazetteer hit
	LocVenue Category = "venue"

	// ContactPhone is a digit-grouped phone number
	ContactPhone Category = "phone"
)

// Clock is a parsed time-of-day value
type Clock struct {
	Hour   int
	Minute int
}

// DateParts is a parsed calendar value; exactly one of the three shapes is
// populated depending on the category: Offset for relative, Weekday+Modifier
// for weekday, Day/Month/Year for explicit
type DateParts struct {
	Day   int
	Month int
	Year  int

	Offset int // signed days from now

	Weekday  int    // 0=Monday .. 6=Sunday
	Modifier string // "", "this", "next", "last"
}

// Span is one candidate: its byte range over the normalized text,
// the exact matched text, and the kind-specific parsed value
type Span struct {
	Kind     Kind
	Category Category
	Text     string
	Start    int
	End      int

	Clock *Clock
	Date  *DateParts
}

// overlaps reports whether [aStart,aEnd) intersects [bStart,bEnd)
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// claimed tracks byte ranges already taken by an earlier, higher-priority span
type claimed []Span

func (c claimed) free(start, end int) bool {
	for _, s := range c {
		if overlaps(start, end, s.Start, s.End) {
			return false
		}
	}
	return true
}

// byStart orders spans by position for deterministic output
func byStart(spans []Span) []Span {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	return spans
}
